package dashserver

import (
	"time"

	"flightdeck/internal/stage"
	"flightdeck/internal/step"
	"flightdeck/internal/ui/live"
)

// StepView is the JSON shape of one folded step.
type StepView struct {
	ID            string     `json:"id"`
	StepName      string     `json:"stepName"`
	HookCount     int        `json:"hookCount"`
	Status        string     `json:"status"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	TotalDuration *float64   `json:"totalDuration,omitempty"`
	TotalCost     *float64   `json:"totalCost,omitempty"`
}

// StageView is the JSON shape of one stage nav descriptor.
type StageView struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Disabled    bool       `json:"disabled,omitempty"`
}

// StepsResponse is the /api/steps payload.
type StepsResponse struct {
	TaskID   string     `json:"task_id"`
	Steps    []StepView `json:"steps"`
	Updated  *time.Time `json:"updated,omitempty"`
	FetchErr string     `json:"fetch_error,omitempty"`
}

// StagesResponse is the /api/stages payload.
type StagesResponse struct {
	TaskID   string      `json:"task_id"`
	Stages   []StageView `json:"stages"`
	Progress int         `json:"progress"`
}

// stepsResponse converts view state into the steps payload.
func stepsResponse(state live.State) StepsResponse {
	resp := StepsResponse{
		TaskID:   state.Task.ID,
		Steps:    make([]StepView, 0, len(state.Steps)),
		FetchErr: state.LastError,
	}
	if !state.LastUpdate.IsZero() {
		updated := state.LastUpdate
		resp.Updated = &updated
	}
	for _, s := range state.Steps {
		resp.Steps = append(resp.Steps, stepView(s))
	}
	return resp
}

// stepView converts one step into its JSON shape.
func stepView(s step.Step) StepView {
	view := StepView{
		ID:        s.ID,
		StepName:  s.Name,
		HookCount: len(s.Hooks),
		Status:    string(s.Status),
		StartTime: s.StartTime,
	}
	if !s.EndTime.IsZero() {
		end := s.EndTime
		view.EndTime = &end
	}
	if s.TotalDuration > 0 {
		ms := float64(s.TotalDuration) / float64(time.Millisecond)
		view.TotalDuration = &ms
	}
	if s.TotalCost > 0 {
		cost := s.TotalCost
		view.TotalCost = &cost
	}
	return view
}

// stagesResponse converts view state into the stages payload.
func stagesResponse(state live.State) StagesResponse {
	resp := StagesResponse{
		TaskID:   state.Task.ID,
		Stages:   make([]StageView, 0, len(state.Nav)),
		Progress: state.Progress,
	}
	for _, item := range state.Nav {
		resp.Stages = append(resp.Stages, stageView(item))
	}
	return resp
}

// stageView converts one nav item into its JSON shape.
func stageView(item stage.NavItem) StageView {
	return StageView{
		ID:          string(item.ID),
		Label:       item.Label,
		Status:      string(item.Status),
		Progress:    item.Progress,
		StartedAt:   item.StartedAt,
		CompletedAt: item.CompletedAt,
		Disabled:    item.Disabled,
	}
}
