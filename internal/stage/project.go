package stage

import "math"

// Project maps a backend status document onto the fixed stage sequence.
// The projection never fails: an unknown or missing current_stage leaves
// every non-complete stage upcoming rather than raising.
func Project(doc StatusDoc) []NavItem {
	current := Index(doc.CurrentStage)
	items := make([]NavItem, 0, len(Order))
	for i, id := range Order {
		rec := doc.Stages[id]
		item := NavItem{
			ID:          id,
			Label:       Label(id),
			StartedAt:   rec.StartedAt,
			CompletedAt: rec.CompletedAt,
		}
		if id == Handoff {
			item.Status = handoffStatus(doc)
		} else {
			item.Status = stageStatus(doc, rec, i, current)
		}
		item.Disabled = item.Status == StatusBlocked
		item.Progress = stageProgress(id, item.Status)
		if i == current {
			item.RetryCount = doc.RetryCount
			item.Error = doc.ErrorMessage
		}
		items = append(items, item)
	}
	return items
}

// stageStatus derives the state of one of the first four stages from its
// index relative to the current stage. An explicit complete flag on the
// stage's own record always wins.
func stageStatus(doc StatusDoc, rec Record, index, current int) Status {
	if rec.Complete {
		return StatusComplete
	}
	switch {
	case current >= 0 && index < current:
		return StatusComplete
	case index == current:
		if doc.ErrorMessage != "" {
			return StatusBlocked
		}
		return StatusActive
	default:
		return StatusUpcoming
	}
}

// handoffStatus derives the terminal stage's state: complete once the
// resolution reached a terminal state or a PR exists, active once testing
// is done, otherwise blocked. Testing gates it.
func handoffStatus(doc StatusDoc) Status {
	if terminalResolutions[doc.ResolutionStatus] || doc.PRNumber != nil {
		return StatusComplete
	}
	if doc.Stages[Testing].Complete {
		return StatusActive
	}
	return StatusBlocked
}

// stageProgress returns the coarse display progress for a stage. These are
// progress-bar widths, not measurements.
func stageProgress(id ID, status Status) int {
	switch status {
	case StatusComplete:
		return 100
	case StatusActive:
		if id == Deployment {
			return 35
		}
		return 55
	default:
		return 0
	}
}

// Progress returns the aggregate workflow progress percentage: the share
// of stages projected complete.
func Progress(items []NavItem) int {
	if len(items) == 0 {
		return 0
	}
	complete := 0
	for _, item := range items {
		if item.Status == StatusComplete {
			complete++
		}
	}
	return int(math.Round(100 * float64(complete) / float64(len(items))))
}

// Active returns the stage currently projected active, or "" when none is.
func Active(items []NavItem) ID {
	for _, item := range items {
		if item.Status == StatusActive {
			return item.ID
		}
	}
	return ""
}
