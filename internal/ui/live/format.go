package live

import (
	"flightdeck/internal/stage"
	"flightdeck/internal/step"
)

// durationCell renders a step's duration column, preferring summed
// payload durations over the wall-clock delta when present.
func durationCell(s step.Step) string {
	if s.TotalDuration > 0 {
		return step.FormatDuration(step.Step{
			StartTime: s.StartTime,
			EndTime:   s.StartTime.Add(s.TotalDuration),
		})
	}
	return step.FormatDuration(s)
}

// costCell renders a step's cost column, empty when no cost was recorded.
func costCell(s step.Step) string {
	return step.FormatCost(s)
}

// stageGlyph returns the ladder marker for a stage status.
func stageGlyph(status stage.Status) string {
	switch status {
	case stage.StatusComplete:
		return "●"
	case stage.StatusActive:
		return "◉"
	case stage.StatusBlocked:
		return "✕"
	default:
		return "○"
	}
}

// stageColor returns the ladder color for a stage status.
func stageColor(status stage.Status) string {
	switch status {
	case stage.StatusComplete:
		return "42"
	case stage.StatusActive:
		return "33"
	case stage.StatusBlocked:
		return "196"
	default:
		return "240"
	}
}
