package step

import (
	"time"

	"flightdeck/internal/classify"
	"flightdeck/internal/hook"
)

// Fold groups an ordered event stream into steps, preserving first-seen
// key order. Every event is retained; same-labeled events merge into one
// step unless isolation is requested for their hook type. The fold is
// pure: running it twice on the same input yields identical output.
func Fold(events []hook.Event, opts Options) []Step {
	var order []string
	groups := map[string]*Step{}

	for _, evt := range events {
		key, name := groupKey(evt, opts)
		grp, ok := groups[key]
		if !ok {
			grp = &Step{
				ID:        key,
				Name:      name,
				Status:    StatusRunning,
				StartTime: evt.ReceivedAt,
			}
			groups[key] = grp
			order = append(order, key)
		}
		grp.Hooks = append(grp.Hooks, evt)
		applyMember(grp, evt)
	}

	steps := make([]Step, 0, len(order))
	for _, key := range order {
		steps = append(steps, *groups[key])
	}
	return steps
}

// groupKey resolves the group key and display name for an event. In
// isolation mode status and query hooks key on their own id and carry a
// wall-clock suffix to stay human-distinguishable.
func groupKey(evt hook.Event, opts Options) (key, name string) {
	label := classify.StepLabel(evt)
	if opts.SplitStatusAndQuery && isolated(evt.HookType) {
		return evt.ID, label + " · " + evt.ReceivedAt.Format("15:04:05")
	}
	return label, label
}

// isolated reports whether a hook type is never merged by label.
func isolated(hookType string) bool {
	return hookType == hook.TypeStatus || hookType == hook.TypeQuery
}

// applyMember folds one event into its step: status rollup first, then
// duration and cost accumulation.
func applyMember(s *Step, evt hook.Event) {
	rollup(s, evt)
	m := hook.EventMetrics(evt)
	if m.DurationMS > 0 {
		s.TotalDuration += time.Duration(m.DurationMS * float64(time.Millisecond))
	}
	if m.CostUSD > 0 {
		s.TotalCost += m.CostUSD
	}
}
