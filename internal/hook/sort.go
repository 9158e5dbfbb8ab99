package hook

import "sort"

// Normalize returns a copy of events sorted by received_at ascending with
// id as tie-break. The backend feed is assumed time-ordered but that
// assumption is enforced here rather than trusted: every consumer folds
// over the normalized order.
func Normalize(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ReceivedAt.Equal(out[j].ReceivedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].ReceivedAt.Before(out[j].ReceivedAt)
	})
	return out
}

// FilterPhase keeps only events from the given macro-phase. An empty phase
// keeps everything.
func FilterPhase(events []Event, phase string) []Event {
	if phase == "" {
		return events
	}
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Phase == phase {
			out = append(out, e)
		}
	}
	return out
}
