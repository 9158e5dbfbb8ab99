package step

import (
	"time"

	"flightdeck/internal/hook"
)

// Status is the rollup state of a step.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Step is a derived grouping of one or more hook events representing one
// logical unit of work. Steps are rebuilt wholesale from each snapshot;
// nothing here survives across polls.
type Step struct {
	ID        string
	Name      string
	Hooks     []hook.Event
	Status    Status
	StartTime time.Time
	// EndTime is zero while the step is still open. Once set by the first
	// completing or erroring member it is never overwritten.
	EndTime time.Time
	// TotalDuration is the sum of member duration_ms figures. Zero means
	// no duration data was present, letting views omit the tile.
	TotalDuration time.Duration
	// TotalCost is the summed member cost in USD, zero when absent.
	TotalCost float64
}

// Options selects the grouping policy for a fold.
type Options struct {
	// SplitStatusAndQuery gives every status and query hook its own
	// singleton step instead of merging by label. Status pings and
	// fine-grained agent events are one-shot, not multi-event phases;
	// merging unrelated "Assistant" occurrences would be wrong.
	SplitStatusAndQuery bool
}

// Terminal reports whether the step has reached a final state.
func (s Step) Terminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusError
}
