package step

// Finalize closes out stale running steps: a later step having begun is
// taken as proof the former step ended, even without an explicit terminal
// event. The last step is exempt and may stay running indefinitely, being
// the work currently in progress.
//
// This is a heuristic compensating for backends that do not always emit
// completion events. If the backend grows an explicit step-closed signal,
// that signal should take precedence and this pass become the fallback.
func Finalize(steps []Step) []Step {
	for i := 0; i+1 < len(steps); i++ {
		if steps[i].Status != StatusRunning {
			continue
		}
		if len(steps[i+1].Hooks) == 0 {
			continue
		}
		steps[i].Status = StatusCompleted
		if steps[i].EndTime.IsZero() {
			steps[i].EndTime = steps[i+1].StartTime
		}
	}
	return steps
}
