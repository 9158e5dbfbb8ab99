package stubplatform

import (
	"time"

	"github.com/google/uuid"

	"flightdeck/internal/hook"
	"flightdeck/internal/stage"
)

// Scenario is a scripted run of a task: hooks become visible as wall-clock
// time advances past their offsets, imitating a backend whose feed grows
// between polls.
type Scenario struct {
	Task      scriptedTask
	StartedAt time.Time
	Hooks     []scriptedHook
	StageDoc  func(elapsed time.Duration) stage.StatusDoc
}

type scriptedTask struct {
	ID        string
	Title     string
	SessionID string
	ProjectID string
	IssueID   string
}

type scriptedHook struct {
	Offset time.Duration
	Event  hook.Event
}

// DefaultScenario scripts a small deployment followed by an agent session.
func DefaultScenario(taskID string) *Scenario {
	now := time.Now()
	s := &Scenario{
		Task: scriptedTask{
			ID:        taskID,
			Title:     "Resolve issue #42",
			SessionID: "sess-" + taskID,
			ProjectID: "proj-1",
			IssueID:   "issue-42",
		},
		StartedAt: now,
	}
	s.addDeployHook(0, "Clone repo", "running", "Cloning repository")
	s.addDeployHook(2*time.Second, "Clone repo", "COMPLETED", "Clone completed")
	s.addDeployHook(3*time.Second, "Install dependencies", "running", "Installing packages")
	s.addDeployHook(8*time.Second, "Install dependencies", "COMPLETED", "Install completed successfully")
	s.addDeployHook(9*time.Second, "Start dev server", "running", "Booting server")
	s.addQueryHook(12*time.Second, "AssistantMessage", "", "", "Looking at the failing test first.")
	s.addToolHook(14*time.Second, "bash", "go test ./...")
	s.addQueryHook(20*time.Second, "ResultMessage", "", "", "Run finished")
	s.StageDoc = func(elapsed time.Duration) stage.StatusDoc {
		doc := stage.StatusDoc{
			CurrentStage: stage.Deployment,
			Stages:       map[stage.ID]stage.Record{},
		}
		if elapsed > 10*time.Second {
			doc.CurrentStage = stage.Planning
			doc.Stages[stage.Deployment] = stage.Record{Complete: true}
		}
		if elapsed > 15*time.Second {
			doc.CurrentStage = stage.Implementation
			doc.Stages[stage.Planning] = stage.Record{Complete: true}
		}
		return doc
	}
	return s
}

// addDeployHook appends a deployment-phase status hook.
func (s *Scenario) addDeployHook(offset time.Duration, stepName, status, message string) {
	s.Hooks = append(s.Hooks, scriptedHook{
		Offset: offset,
		Event: hook.Event{
			ID:       uuid.NewString(),
			HookType: hook.TypeStatus,
			Phase:    hook.PhaseDeployment,
			Status:   status,
			Message:  message,
			Data:     map[string]any{"step_name": stepName},
		},
	})
}

// addQueryHook appends an agent-session message hook.
func (s *Scenario) addQueryHook(offset time.Duration, messageType, contentType, toolName, message string) {
	data := map[string]any{"message_type": messageType}
	if contentType != "" {
		data["content_type"] = contentType
	}
	if toolName != "" {
		data["tool_name"] = toolName
	}
	s.Hooks = append(s.Hooks, scriptedHook{
		Offset: offset,
		Event: hook.Event{
			ID:       uuid.NewString(),
			HookType: hook.TypeQuery,
			Message:  message,
			Data:     data,
		},
	})
}

// addToolHook appends a tool-use hook.
func (s *Scenario) addToolHook(offset time.Duration, toolName, input string) {
	s.Hooks = append(s.Hooks, scriptedHook{
		Offset: offset,
		Event: hook.Event{
			ID:       uuid.NewString(),
			HookType: hook.TypeQuery,
			Data: map[string]any{
				"content_type": "tool_use",
				"tool_name":    toolName,
				"tool_input":   input,
			},
		},
	})
}

// visibleHooks returns the hooks whose offsets have elapsed, stamped with
// received_at times derived from the scenario start.
func (s *Scenario) visibleHooks(now time.Time, limit int) []hook.Event {
	elapsed := now.Sub(s.StartedAt)
	var out []hook.Event
	for _, scripted := range s.Hooks {
		if scripted.Offset > elapsed {
			continue
		}
		evt := scripted.Event
		evt.ReceivedAt = s.StartedAt.Add(scripted.Offset)
		out = append(out, evt)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// deploymentStatus derives the scripted deployment state from elapsed time.
func (s *Scenario) deploymentStatus(now time.Time) string {
	elapsed := now.Sub(s.StartedAt)
	switch {
	case elapsed < 1*time.Second:
		return "pending"
	case elapsed < 10*time.Second:
		return "deploying"
	default:
		return "deployed"
	}
}
