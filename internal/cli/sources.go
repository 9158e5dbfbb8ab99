package cli

import (
	"context"
	"sync"
	"time"

	"flightdeck/internal/config"
	"flightdeck/internal/hook"
	"flightdeck/internal/platform"
	"flightdeck/internal/poll"
	"flightdeck/internal/stage"
	"flightdeck/internal/ui/live"
)

// taskIntervalFallback paces the task document feed; it is glue for
// cadence selection, not one of the product's own hook feeds.
const taskIntervalFallback = 5 * time.Second

// feed tracks the latest task and stage facts that cadence and source
// selection depend on. Fetchers write it, interval funcs read it.
type feed struct {
	mu      sync.Mutex
	client  *platform.Client
	cadence poll.Cadence
	limit   int

	task         platform.TaskInfo
	currentStage stage.ID
}

// newFeed builds the shared feed state for one watched task.
func newFeed(cfg config.Config, client *platform.Client, taskID string) *feed {
	return &feed{
		client:  client,
		cadence: cadenceFromConfig(cfg),
		limit:   cfg.Polling.Limit,
		task:    platform.TaskInfo{ID: taskID},
	}
}

// sources returns the poll sources for the watch pipeline.
func (f *feed) sources() []poll.Source {
	return []poll.Source{
		{Key: live.SourceTask, Interval: func() time.Duration { return taskIntervalFallback }, Fetch: f.fetchTask},
		{Key: live.SourceHooks, Interval: f.hookInterval, Fetch: f.fetchHooks},
		{Key: live.SourceStages, Interval: f.stageInterval, Fetch: f.fetchStages},
	}
}

// fetchTask refreshes the task document and records it for cadence
// selection.
func (f *feed) fetchTask(ctx context.Context) (any, error) {
	info, err := f.client.Task(ctx, f.taskID())
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.task = info
	f.mu.Unlock()
	return info, nil
}

// fetchHooks fetches whichever hook feed the current stage points at: the
// chat session during planning and implementation, the deployment feed
// otherwise.
func (f *feed) fetchHooks(ctx context.Context) (any, error) {
	f.mu.Lock()
	useSession := f.sessionStage()
	sessionID := f.task.SessionID
	taskID := f.task.ID
	limit := f.limit
	f.mu.Unlock()

	var snap hook.Snapshot
	var err error
	if useSession && sessionID != "" {
		snap, err = f.client.SessionHooks(ctx, sessionID, limit)
	} else {
		snap, err = f.client.TaskHooks(ctx, taskID, limit)
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// fetchStages refreshes the stage document and records the current stage
// for hook-source selection.
func (f *feed) fetchStages(ctx context.Context) (any, error) {
	f.mu.Lock()
	projectID := f.task.ProjectID
	issueID := f.task.IssueID
	f.mu.Unlock()
	doc, err := f.client.StageStatus(ctx, projectID, issueID)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.currentStage = doc.CurrentStage
	f.mu.Unlock()
	return doc, nil
}

// hookInterval selects the hook cadence from the latest task and stage
// facts.
func (f *feed) hookInterval() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sessionStage() {
		return f.cadence.SessionHookInterval(f.task.SessionID)
	}
	return f.cadence.DeploymentHookInterval(f.task.DeploymentStatus)
}

// stageInterval selects the stage-document cadence.
func (f *feed) stageInterval() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cadence.StageStatusInterval(f.task.IssueID)
}

// sessionStage reports whether the current stage reads the chat feed.
// Callers must hold the mutex.
func (f *feed) sessionStage() bool {
	return f.currentStage == stage.Planning || f.currentStage == stage.Implementation
}

// taskID returns the watched task id.
func (f *feed) taskID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.task.ID
}
