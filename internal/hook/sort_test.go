package hook

import (
	"testing"
	"time"
)

func at(sec int) time.Time {
	return time.Date(2026, 3, 14, 9, 0, sec, 0, time.UTC)
}

func TestNormalizeSortsByReceivedAt(t *testing.T) {
	events := []Event{
		{ID: "c", ReceivedAt: at(3)},
		{ID: "a", ReceivedAt: at(1)},
		{ID: "b", ReceivedAt: at(2)},
	}

	got := Normalize(events)

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, got[i].ID)
		}
	}
	if events[0].ID != "c" {
		t.Fatalf("expected input slice untouched, got %q first", events[0].ID)
	}
}

func TestNormalizeBreaksTiesByID(t *testing.T) {
	events := []Event{
		{ID: "z", ReceivedAt: at(1)},
		{ID: "a", ReceivedAt: at(1)},
	}

	got := Normalize(events)

	if got[0].ID != "a" || got[1].ID != "z" {
		t.Fatalf("expected id tie-break, got %q then %q", got[0].ID, got[1].ID)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	events := []Event{
		{ID: "b", ReceivedAt: at(2)},
		{ID: "a", ReceivedAt: at(1)},
	}

	once := Normalize(events)
	twice := Normalize(once)

	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("position %d changed on re-normalize: %q vs %q", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilterPhase(t *testing.T) {
	events := []Event{
		{ID: "a", Phase: PhaseInitialization},
		{ID: "b", Phase: PhaseDeployment},
		{ID: "c"},
	}

	if got := FilterPhase(events, ""); len(got) != 3 {
		t.Fatalf("empty phase should keep all events, got %d", len(got))
	}
	got := FilterPhase(events, PhaseDeployment)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only event b, got %v", got)
	}
}
