package live

import (
	"flightdeck/internal/hook"
	"flightdeck/internal/stage"
	"flightdeck/internal/step"
)

// Reduce applies a UI event to the view state. Hook snapshots are refolded
// wholesale: the step list is recomputed, never patched, so repeated polls
// of a growing feed stay stable and cannot leave stale partial steps.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventTask:
		state.Task = event.Task
	case EventHooks:
		state.Hooks = event.Snapshot.Hooks
		state = rebuildSteps(state)
		state.LastError = ""
	case EventStageDoc:
		state = applyStageDoc(state, event.Stages)
		state.LastError = ""
	case EventFetchError:
		state.LastError = event.Err
		return state
	}
	if !event.At.IsZero() {
		state.LastUpdate = event.At
	}
	return state
}

// rebuildSteps refolds the retained hook list under the current phase
// filter and grouping options.
func rebuildSteps(state State) State {
	events := state.Hooks
	if state.Options.ShowPhaseFilter {
		events = hook.FilterPhase(events, state.PhaseFilter)
	}
	state.Steps = step.Build(events, step.Options{
		SplitStatusAndQuery: state.Options.SplitStatusAndQuery,
	})
	return state
}

// applyStageDoc projects a stage document and follows the active stage
// unless the user has taken over navigation.
func applyStageDoc(state State, doc stage.StatusDoc) State {
	state.Nav = stage.Project(doc)
	state.Progress = stage.Progress(state.Nav)
	state.CurrentStage = doc.CurrentStage
	if !state.ManualNav {
		if active := stage.Active(state.Nav); active != "" {
			state.SelectedStage = active
		}
	}
	return state
}

// SelectStage records a manual stage pick and suppresses auto-navigation
// for the rest of the session. Blocked stages cannot be selected.
func SelectStage(state State, id stage.ID) State {
	for _, item := range state.Nav {
		if item.ID == id {
			if item.Disabled {
				return state
			}
			break
		}
	}
	state.SelectedStage = id
	state.ManualNav = true
	return state
}

// ShiftStage moves the manual stage selection by delta within the fixed
// order, skipping nothing; blocked targets are rejected by SelectStage.
func ShiftStage(state State, delta int) State {
	index := stage.Index(state.SelectedStage)
	if index < 0 {
		index = 0
	}
	index += delta
	if index < 0 || index >= len(stage.Order) {
		return state
	}
	return SelectStage(state, stage.Order[index])
}

// CyclePhaseFilter rotates the phase filter through all, initialization,
// and deployment, refolding the step list.
func CyclePhaseFilter(state State) State {
	if !state.Options.ShowPhaseFilter {
		return state
	}
	switch state.PhaseFilter {
	case "":
		state.PhaseFilter = hook.PhaseInitialization
	case hook.PhaseInitialization:
		state.PhaseFilter = hook.PhaseDeployment
	default:
		state.PhaseFilter = ""
	}
	return rebuildSteps(state)
}
