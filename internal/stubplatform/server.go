package stubplatform

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"flightdeck/internal/hook"
	"flightdeck/internal/stage"
)

// Server is a scripted stand-in for the platform backend, used for local
// development and integration tests. It serves the same endpoints the real
// backend does, with data advancing on the wall clock.
type Server struct {
	scenario *Scenario
	now      func() time.Time
}

// NewServer builds a stub server around a scenario.
func NewServer(scenario *Scenario) *Server {
	return &Server{scenario: scenario, now: time.Now}
}

// Handler returns the echo handler serving the stub API.
func (s *Server) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.GET("/v1/tasks/:task", s.handleTask)
	e.GET("/v1/tasks/:task/hooks", s.handleTaskHooks)
	e.GET("/v1/sessions/:session/hooks", s.handleSessionHooks)
	e.GET("/v1/projects/:project/issues/:issue/stages", s.handleStages)
	e.POST("/v1/projects/:project/issues/:issue/stages/:stage/retry", s.handleRetry)
	return e
}

// taskResponse is the stub's task document.
type taskResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	DeploymentStatus string `json:"deployment_status"`
	SessionID        string `json:"session_id"`
	ProjectID        string `json:"project_id"`
	IssueID          string `json:"issue_id"`
}

// handleTask serves the task document.
func (s *Server) handleTask(c echo.Context) error {
	if c.Param("task") != s.scenario.Task.ID {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "task not found"})
	}
	return c.JSON(http.StatusOK, taskResponse{
		ID:               s.scenario.Task.ID,
		Title:            s.scenario.Task.Title,
		DeploymentStatus: s.scenario.deploymentStatus(s.now()),
		SessionID:        s.scenario.Task.SessionID,
		ProjectID:        s.scenario.Task.ProjectID,
		IssueID:          s.scenario.Task.IssueID,
	})
}

// handleTaskHooks serves the deployment hook feed.
func (s *Server) handleTaskHooks(c echo.Context) error {
	if c.Param("task") != s.scenario.Task.ID {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "task not found"})
	}
	return s.serveHooks(c, func(evt hook.Event) bool { return evt.Phase != "" })
}

// handleSessionHooks serves the agent session hook feed.
func (s *Server) handleSessionHooks(c echo.Context) error {
	if c.Param("session") != s.scenario.Task.SessionID {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return s.serveHooks(c, func(evt hook.Event) bool { return evt.Phase == "" })
}

// serveHooks filters the visible hooks and applies the limit parameter.
func (s *Server) serveHooks(c echo.Context, keep func(hook.Event) bool) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		}
		limit = parsed
	}
	var hooks []hook.Event
	for _, evt := range s.scenario.visibleHooks(s.now(), 0) {
		if !keep(evt) {
			continue
		}
		hooks = append(hooks, evt)
		if limit > 0 && len(hooks) >= limit {
			break
		}
	}
	return c.JSON(http.StatusOK, hook.Snapshot{Hooks: hooks})
}

// handleStages serves the stage-status document.
func (s *Server) handleStages(c echo.Context) error {
	if c.Param("project") != s.scenario.Task.ProjectID || c.Param("issue") != s.scenario.Task.IssueID {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "issue not found"})
	}
	return c.JSON(http.StatusOK, s.scenario.StageDoc(s.now().Sub(s.scenario.StartedAt)))
}

// handleRetry acknowledges a stage retry request.
func (s *Server) handleRetry(c echo.Context) error {
	if stage.Index(stage.ID(c.Param("stage"))) < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown stage"})
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "retry scheduled"})
}
