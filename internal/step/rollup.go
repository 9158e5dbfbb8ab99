package step

import (
	"strings"

	"flightdeck/internal/hook"
)

// errorStatuses are the backend status tokens that flag a failed member.
// Matching is deliberately case-sensitive: lowercase "error" strings show
// up in informational payloads that are not failures.
var errorStatuses = map[string]bool{
	"ERROR":  true,
	"FAILED": true,
}

// completedStatuses are the status tokens that flag a finished member.
// The backend emits both spellings.
var completedStatuses = map[string]bool{
	"COMPLETED": true,
	"completed": true,
}

// completionPhrases are message substrings accepted as completion signals.
var completionPhrases = []string{"completed", "succeeded", "successfully", "✓"}

// rollup folds one member's status into the step. Error is sticky and wins
// over completed; completed is sticky against running. EndTime is set by
// the first terminal member and never overwritten.
func rollup(s *Step, evt hook.Event) {
	if s.Status != StatusError && memberError(evt) {
		s.Status = StatusError
		if s.EndTime.IsZero() {
			s.EndTime = evt.ReceivedAt
		}
		return
	}
	if s.Status == StatusRunning || s.Status == StatusPending {
		if memberCompleted(evt) {
			s.Status = StatusCompleted
			if s.EndTime.IsZero() {
				s.EndTime = evt.ReceivedAt
			}
		}
	}
}

// memberError reports whether an event flags its step as failed.
func memberError(evt hook.Event) bool {
	if errorStatuses[evt.Status] {
		return true
	}
	return hook.Truthy(evt.Data["error"])
}

// memberCompleted reports whether an event flags its step as finished.
// An explicit is_complete from the backend is authoritative; otherwise the
// status token and message phrasing are inspected.
func memberCompleted(evt hook.Event) bool {
	if evt.Complete() {
		return true
	}
	if completedStatuses[evt.Status] {
		return true
	}
	for _, phrase := range completionPhrases {
		if strings.Contains(evt.Message, phrase) {
			return true
		}
	}
	return false
}
