package hook

import "time"

// Event is one backend-emitted fact about deployment or agent activity.
// It matches the JSON wire format of the platform's hook feed. Events are
// immutable: later polls may add hooks but never rewrite an existing one.
type Event struct {
	ID         string         `json:"id"`
	HookType   string         `json:"hook_type"`
	Phase      string         `json:"phase,omitempty"`
	Status     string         `json:"status,omitempty"`
	Message    string         `json:"message,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	ReceivedAt time.Time      `json:"received_at"`
	IsComplete *bool          `json:"is_complete,omitempty"`
}

// Snapshot is one full fetch of a hook feed. A new snapshot wholly replaces
// the previous one; there is no merging of partial state.
type Snapshot struct {
	Hooks []Event `json:"hooks"`
}

// Complete reports whether the backend explicitly marked the event terminal.
func (e Event) Complete() bool {
	return e.IsComplete != nil && *e.IsComplete
}

// Phase values emitted by deployment hooks.
const (
	PhaseInitialization = "initialization"
	PhaseDeployment     = "deployment"
)

// Hook types with dedicated handling; anything else goes through the
// generic fallback paths.
const (
	TypeStatus = "status"
	TypeQuery  = "query"
	TypeError  = "error"
)
