package step

import (
	"testing"

	"flightdeck/internal/hook"
)

func TestFinalizeClosesRunningStepWhenSuccessorBegins(t *testing.T) {
	events := []hook.Event{
		deployHook("1", 1, "Build", "RUNNING"),
		deployHook("2", 5, "Test", "RUNNING"),
	}

	steps := Finalize(Fold(events, Options{}))

	if steps[0].Status != StatusCompleted {
		t.Fatalf("expected predecessor closed, got %q", steps[0].Status)
	}
	if steps[0].EndTime != at(5) {
		t.Fatalf("expected successor's start time borrowed, got %v", steps[0].EndTime)
	}
	if steps[1].Status != StatusRunning {
		t.Fatalf("last step should stay running, got %q", steps[1].Status)
	}
}

func TestFinalizeKeepsExplicitEndTime(t *testing.T) {
	events := []hook.Event{
		deployHook("1", 1, "Build", "RUNNING"),
		deployHook("2", 2, "Build", "ERROR"),
		deployHook("3", 5, "Test", "RUNNING"),
	}

	steps := Finalize(Fold(events, Options{}))

	if steps[0].Status != StatusError {
		t.Fatalf("finalize must not rewrite terminal steps, got %q", steps[0].Status)
	}
	if steps[0].EndTime != at(2) {
		t.Fatalf("explicit end time rewritten to %v", steps[0].EndTime)
	}
}

func TestFinalizeLastStepExemptEvenWhenSingle(t *testing.T) {
	events := []hook.Event{
		deployHook("1", 1, "Build", "RUNNING"),
	}

	steps := Finalize(Fold(events, Options{}))

	if steps[0].Status != StatusRunning {
		t.Fatalf("sole step should stay running, got %q", steps[0].Status)
	}
}

func TestFinalizeEmptyInput(t *testing.T) {
	if got := Finalize(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %v", got)
	}
	if got := Build(nil, Options{}); len(got) != 0 {
		t.Fatalf("expected empty build, got %v", got)
	}
}
