package step

import (
	"testing"
	"time"

	"flightdeck/internal/hook"
)

func at(sec int) time.Time {
	return time.Date(2026, 3, 14, 9, 0, sec, 0, time.UTC)
}

func deployHook(id string, sec int, stepName, status string) hook.Event {
	return hook.Event{
		ID:         id,
		HookType:   "deploy",
		Status:     status,
		ReceivedAt: at(sec),
		Data:       map[string]any{"step_name": stepName},
	}
}

func TestFoldMergesByLabelInFirstSeenOrder(t *testing.T) {
	events := []hook.Event{
		deployHook("1", 1, "Clone repo", "RUNNING"),
		deployHook("2", 2, "Install deps", "RUNNING"),
		deployHook("3", 3, "Clone repo", "COMPLETED"),
	}

	steps := Fold(events, Options{})

	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Name != "Clone repo" || steps[1].Name != "Install deps" {
		t.Fatalf("expected first-seen order, got %q then %q", steps[0].Name, steps[1].Name)
	}
	if len(steps[0].Hooks) != 2 {
		t.Fatalf("expected merged step to hold 2 hooks, got %d", len(steps[0].Hooks))
	}
	if steps[0].StartTime != at(1) {
		t.Fatalf("expected start time of first member, got %v", steps[0].StartTime)
	}
}

func TestFoldRetainsEveryEvent(t *testing.T) {
	events := []hook.Event{
		deployHook("1", 1, "Build", "RUNNING"),
		deployHook("2", 2, "Build", "RUNNING"),
		deployHook("3", 3, "Test", "RUNNING"),
	}

	steps := Fold(events, Options{})

	total := 0
	for _, s := range steps {
		total += len(s.Hooks)
	}
	if total != len(events) {
		t.Fatalf("expected %d hooks across steps, got %d", len(events), total)
	}
}

func TestFoldIsDeterministic(t *testing.T) {
	events := []hook.Event{
		deployHook("1", 1, "Build", "RUNNING"),
		deployHook("2", 2, "Test", "RUNNING"),
		deployHook("3", 3, "Build", "COMPLETED"),
	}

	first := Fold(events, Options{})
	second := Fold(events, Options{})

	if len(first) != len(second) {
		t.Fatalf("fold count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Status != second[i].Status {
			t.Fatalf("step %d differs between folds: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestFoldIsolatesStatusAndQueryHooks(t *testing.T) {
	events := []hook.Event{
		{ID: "s1", HookType: hook.TypeStatus, Message: "Waking agent", ReceivedAt: at(1)},
		{ID: "s2", HookType: hook.TypeStatus, Message: "Waking agent", ReceivedAt: at(2)},
		{ID: "q1", HookType: hook.TypeQuery, ReceivedAt: at(3), Data: map[string]any{"message_type": "AssistantMessage"}},
		{ID: "q2", HookType: hook.TypeQuery, ReceivedAt: at(4), Data: map[string]any{"message_type": "AssistantMessage"}},
	}

	steps := Fold(events, Options{SplitStatusAndQuery: true})

	if len(steps) != 4 {
		t.Fatalf("expected one step per hook, got %d", len(steps))
	}
	for _, s := range steps {
		if len(s.Hooks) != 1 {
			t.Fatalf("isolated step %q holds %d hooks", s.Name, len(s.Hooks))
		}
	}
	if steps[0].Name != "Waking agent · 09:00:01" {
		t.Fatalf("expected wall-clock suffix, got %q", steps[0].Name)
	}
	if steps[0].ID == steps[1].ID {
		t.Fatalf("isolated steps share a key: %q", steps[0].ID)
	}
}

func TestFoldStatusHooksMergeWithoutIsolation(t *testing.T) {
	events := []hook.Event{
		{ID: "s1", HookType: hook.TypeStatus, Message: "Waking agent", ReceivedAt: at(1)},
		{ID: "s2", HookType: hook.TypeStatus, Message: "Waking agent", ReceivedAt: at(2)},
	}

	steps := Fold(events, Options{})

	if len(steps) != 1 || len(steps[0].Hooks) != 2 {
		t.Fatalf("expected same-labeled status hooks to merge, got %+v", steps)
	}
}

func TestFoldIsolationLeavesDeployHooksMerged(t *testing.T) {
	events := []hook.Event{
		deployHook("1", 1, "Build", "RUNNING"),
		deployHook("2", 2, "Build", "COMPLETED"),
	}

	steps := Fold(events, Options{SplitStatusAndQuery: true})

	if len(steps) != 1 {
		t.Fatalf("expected deploy hooks to keep merging, got %d steps", len(steps))
	}
}

func TestFoldAccumulatesMetrics(t *testing.T) {
	events := []hook.Event{
		{ID: "1", HookType: hook.TypeQuery, ReceivedAt: at(1), Data: map[string]any{
			"message_type": "AssistantMessage", "duration_ms": float64(500), "total_cost_usd": 0.01,
		}},
		{ID: "2", HookType: hook.TypeQuery, ReceivedAt: at(2), Data: map[string]any{
			"message_type": "AssistantMessage", "duration_ms": float64(1500), "total_cost_usd": 0.02,
		}},
	}

	steps := Fold(events, Options{})

	if len(steps) != 1 {
		t.Fatalf("expected one merged step, got %d", len(steps))
	}
	if steps[0].TotalDuration != 2*time.Second {
		t.Fatalf("expected 2s total duration, got %v", steps[0].TotalDuration)
	}
	if diff := steps[0].TotalCost - 0.03; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected 0.03 total cost, got %v", steps[0].TotalCost)
	}
}

func TestBuildNormalizesBeforeFolding(t *testing.T) {
	events := []hook.Event{
		deployHook("2", 2, "Install deps", "RUNNING"),
		deployHook("1", 1, "Clone repo", "RUNNING"),
	}

	steps := Build(events, Options{})

	if steps[0].Name != "Clone repo" {
		t.Fatalf("expected time order to decide step order, got %q first", steps[0].Name)
	}
}
