package cucumber

import (
	"context"
	"time"

	"github.com/cucumber/godog"

	"flightdeck/internal/hook"
	"flightdeck/internal/stage"
	"flightdeck/internal/step"
)

// featureState accumulates the givens of one scenario and the results of
// its when-steps.
type featureState struct {
	hooks   []hook.Event
	options step.Options
	steps   []step.Step

	doc stage.StatusDoc
	nav []stage.NavItem

	baseTime time.Time
	nextID   int
}

func (s *featureState) reset() {
	*s = featureState{
		baseTime: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		doc:      stage.StatusDoc{Stages: map[stage.ID]stage.Record{}},
	}
}

// InitializeScenario wires the step definitions for the feature suite.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^these hook events:$`, state.theseHookEvents)
	ctx.Step(`^singleton grouping for status and query hooks$`, state.singletonGrouping)
	ctx.Step(`^the step log is rebuilt$`, state.theStepLogIsRebuilt)
	ctx.Step(`^the step log is rebuilt again from the same events$`, state.theStepLogIsRebuiltAgain)
	ctx.Step(`^the step log contains (\d+) steps?$`, state.theStepLogContainsSteps)
	ctx.Step(`^step "([^"]+)" has status "([^"]+)"$`, state.stepHasStatus)
	ctx.Step(`^step "([^"]+)" holds (\d+) events?$`, state.stepHoldsEvents)
	ctx.Step(`^step (\d+) is named "([^"]+)"$`, state.stepAtPositionIsNamed)
	ctx.Step(`^every step holds exactly one event$`, state.everyStepHoldsOneEvent)

	ctx.Step(`^the current workflow stage is "([^"]+)"$`, state.theCurrentStageIs)
	ctx.Step(`^stage "([^"]+)" is recorded complete$`, state.stageIsRecordedComplete)
	ctx.Step(`^the stage error message is "([^"]+)"$`, state.theStageErrorMessageIs)
	ctx.Step(`^the issue resolution status is "([^"]+)"$`, state.theResolutionStatusIs)
	ctx.Step(`^the stage ladder is projected$`, state.theStageLadderIsProjected)
	ctx.Step(`^stage "([^"]+)" shows as "([^"]+)"$`, state.stageShowsAs)
	ctx.Step(`^the workflow progress is (\d+)%$`, state.theWorkflowProgressIs)
}
