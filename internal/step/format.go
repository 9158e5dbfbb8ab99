package step

import (
	"fmt"
	"time"
)

// inProgress is shown for steps with no completed duration yet.
const inProgress = "In progress…"

// FormatDuration renders the wall-clock duration of a step. Open steps and
// steps with no time bounds show an in-progress marker rather than "0s".
func FormatDuration(s Step) string {
	if s.EndTime.IsZero() || s.StartTime.IsZero() {
		return inProgress
	}
	return formatDelta(s.EndTime.Sub(s.StartTime))
}

// formatDelta renders a duration as "Ns" under a minute and "Mm Ss" above.
func formatDelta(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d.Round(time.Second) / time.Second)
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// FormatCost renders a summed step cost, empty when no cost was recorded.
func FormatCost(s Step) string {
	if s.TotalCost <= 0 {
		return ""
	}
	return fmt.Sprintf("$%.4f", s.TotalCost)
}
