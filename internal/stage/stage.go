package stage

import "time"

// ID names one phase of the fixed issue-resolution workflow.
type ID string

const (
	Deployment     ID = "deployment"
	Planning       ID = "planning"
	Implementation ID = "implementation"
	Testing        ID = "testing"
	Handoff        ID = "handoff"
)

// Order is the fixed stage sequence. Handoff is the terminal wrap-up stage
// and is gated by testing.
var Order = []ID{Deployment, Planning, Implementation, Testing, Handoff}

// Status is the derived display state of a stage. The backend document is
// the source of truth; these values are a pure projection of it.
type Status string

const (
	StatusComplete Status = "complete"
	StatusActive   Status = "active"
	StatusUpcoming Status = "upcoming"
	StatusBlocked  Status = "blocked"
)

// Record is the backend's per-stage entry in a status document.
type Record struct {
	Complete    bool       `json:"complete"`
	Approved    bool       `json:"approved"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// StatusDoc is the stage-status document fetched per (project, issue).
type StatusDoc struct {
	CurrentStage     ID            `json:"current_stage"`
	Stages           map[ID]Record `json:"stages"`
	RetryCount       int           `json:"retry_count"`
	ErrorMessage     string        `json:"error_message,omitempty"`
	ResolutionStatus string        `json:"resolution_status,omitempty"`
	PRNumber         *int          `json:"pr_number,omitempty"`
}

// NavItem is one ordered stage descriptor in the navigation view model.
type NavItem struct {
	ID          ID
	Label       string
	Status      Status
	Progress    int
	StartedAt   *time.Time
	CompletedAt *time.Time
	Disabled    bool
	RetryCount  int
	Error       string
}

// terminalResolutions are the overall resolution states that mark handoff
// complete.
var terminalResolutions = map[string]bool{
	"ready_for_pr": true,
	"pr_created":   true,
	"completed":    true,
}

// labels maps stage ids to display labels.
var labels = map[ID]string{
	Deployment:     "Deployment",
	Planning:       "Planning",
	Implementation: "Implementation",
	Testing:        "Testing",
	Handoff:        "Handoff",
}

// Label returns the display label for a stage.
func Label(id ID) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return string(id)
}

// Index returns the position of a stage in the fixed order, or -1 when the
// id is not a known stage.
func Index(id ID) int {
	for i, s := range Order {
		if s == id {
			return i
		}
	}
	return -1
}
