package step

import "flightdeck/internal/hook"

// Build runs the full reconstruction for one snapshot: normalize the event
// order, fold into steps, then finalize. This is what views call on every
// poll; the result wholly replaces the previous step list.
func Build(events []hook.Event, opts Options) []Step {
	return Finalize(Fold(hook.Normalize(events), opts))
}
