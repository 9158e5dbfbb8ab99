package cucumber

import (
	"fmt"

	"flightdeck/internal/stage"
)

func (s *featureState) theCurrentStageIs(id string) error {
	s.doc.CurrentStage = stage.ID(id)
	return nil
}

func (s *featureState) stageIsRecordedComplete(id string) error {
	s.doc.Stages[stage.ID(id)] = stage.Record{Complete: true}
	return nil
}

func (s *featureState) theStageErrorMessageIs(message string) error {
	s.doc.ErrorMessage = message
	return nil
}

func (s *featureState) theResolutionStatusIs(status string) error {
	s.doc.ResolutionStatus = status
	return nil
}

func (s *featureState) theStageLadderIsProjected() error {
	s.nav = stage.Project(s.doc)
	return nil
}

func (s *featureState) stageShowsAs(id, status string) error {
	for _, item := range s.nav {
		if item.ID == stage.ID(id) {
			if string(item.Status) != status {
				return fmt.Errorf("stage %q shows as %q, expected %q", id, item.Status, status)
			}
			return nil
		}
	}
	return fmt.Errorf("stage %q not in projection", id)
}

func (s *featureState) theWorkflowProgressIs(percent int) error {
	if got := stage.Progress(s.nav); got != percent {
		return fmt.Errorf("workflow progress is %d%%, expected %d%%", got, percent)
	}
	return nil
}
