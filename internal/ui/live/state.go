package live

import (
	"time"

	"flightdeck/internal/hook"
	"flightdeck/internal/platform"
	"flightdeck/internal/stage"
	"flightdeck/internal/step"
)

// Options configures the grouping and filter behavior of the live view.
type Options struct {
	// SplitStatusAndQuery enables singleton grouping for status and query
	// hooks.
	SplitStatusAndQuery bool
	// ShowPhaseFilter enables the all/initialization/deployment filter.
	ShowPhaseFilter bool
}

// State captures the live view state for one watched task. It is rebuilt
// by pure reduction; the poller owns no view state and the view owns no
// backend truth.
type State struct {
	Options Options

	Task  platform.TaskInfo
	Hooks []hook.Event
	Steps []step.Step

	Nav          []stage.NavItem
	Progress     int
	CurrentStage stage.ID

	// SelectedStage auto-follows the active stage until the user picks
	// one manually; ManualNav records that one-shot suppression.
	SelectedStage stage.ID
	ManualNav     bool

	// PhaseFilter is "" (all), "initialization", or "deployment".
	PhaseFilter string

	LastError  string
	LastUpdate time.Time
}

// NewState builds the initial state for a task id.
func NewState(taskID string, opts Options) State {
	return State{
		Options: opts,
		Task:    platform.TaskInfo{ID: taskID},
	}
}

// Waiting reports whether no snapshot has arrived yet; callers render a
// waiting placeholder, not an error.
func (s State) Waiting() bool {
	return len(s.Hooks) == 0 && len(s.Nav) == 0
}
