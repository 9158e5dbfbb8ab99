package live

import (
	"strings"
	"testing"

	"flightdeck/internal/hook"
	"flightdeck/internal/stage"
)

func TestRowsForState(t *testing.T) {
	state := NewState("task-1", Options{})
	state = Reduce(state, hooksEvent(
		deployHook("1", 1, "Build", "RUNNING"),
		deployHook("2", 2, "Build", "COMPLETED"),
	))

	rows := rowsForState(state)

	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0][0] != "Build" || rows[0][1] != "completed" || rows[0][2] != "2" {
		t.Fatalf("unexpected row: %v", rows[0])
	}
	if rows[0][3] != "1s" {
		t.Fatalf("expected wall-clock duration, got %q", rows[0][3])
	}
}

func TestDurationCellPrefersPayloadDurations(t *testing.T) {
	state := NewState("task-1", Options{})
	evt := hook.Event{ID: "1", HookType: hook.TypeQuery, ReceivedAt: at(1), Data: map[string]any{
		"message_type": "AssistantMessage",
		"duration_ms":  float64(90000),
	}}
	state = Reduce(state, hooksEvent(evt))

	rows := rowsForState(state)

	if rows[0][3] != "1m 30s" {
		t.Fatalf("expected summed payload duration, got %q", rows[0][3])
	}
}

func TestRenderFooterStates(t *testing.T) {
	state := NewState("task-1", Options{})
	if got := renderFooter(state, true); got != "Waiting for jobs…" {
		t.Fatalf("expected waiting placeholder, got %q", got)
	}

	state.LastError = "connection refused"
	got := renderFooter(state, true)
	if !strings.Contains(got, "showing last snapshot") || !strings.Contains(got, "connection refused") {
		t.Fatalf("expected error footer, got %q", got)
	}

	state.LastError = ""
	state = Reduce(state, hooksEvent(deployHook("1", 1, "Build", "RUNNING")))
	if got := renderFooter(state, true); !strings.Contains(got, "q: quit") {
		t.Fatalf("expected help footer, got %q", got)
	}
}

func TestRenderStageLadderMarksSelection(t *testing.T) {
	state := NewState("task-1", Options{})
	state = Reduce(state, Event{Kind: EventStageDoc, Source: SourceStages, Stages: stage.StatusDoc{CurrentStage: stage.Planning}})

	got := renderStageLadder(state, true)

	if !strings.Contains(got, "[◉ Planning]") {
		t.Fatalf("expected selected active stage bracketed, got %q", got)
	}
	if !strings.Contains(got, "20%") {
		t.Fatalf("expected aggregate progress, got %q", got)
	}
}

func TestRenderDetailShowsSummaryAndChips(t *testing.T) {
	state := NewState("task-1", Options{})
	evt := hook.Event{
		ID:         "1",
		HookType:   hook.TypeStatus,
		Status:     "RUNNING",
		Message:    "Cloning repository",
		ReceivedAt: at(1),
	}
	state = Reduce(state, hooksEvent(evt))

	got := renderDetail(state, 0, true)

	if !strings.Contains(got, "Cloning repository") || !strings.Contains(got, "Status: RUNNING") {
		t.Fatalf("unexpected detail line: %q", got)
	}
	if renderDetail(state, 5, true) != "" {
		t.Fatalf("out-of-range cursor should render empty")
	}
}

func TestRenderHeader(t *testing.T) {
	state := NewState("task-1", Options{})
	state.Task.Title = "Fix login flow"
	state.Task.DeploymentStatus = "deploying"
	state.LastUpdate = at(10)

	got := renderHeader(state, at(13), true)

	for _, want := range []string{"task-1", "Fix login flow", "Deploy: deploying", "Updated 3s ago"} {
		if !strings.Contains(got, want) {
			t.Fatalf("header missing %q: %q", want, got)
		}
	}
}
