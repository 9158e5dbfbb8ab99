package poll

import "time"

// Deployment states reported by the backend task document that drive the
// hook poll cadence.
const (
	DeployPending   = "pending"
	DeployDeploying = "deploying"
)

// Cadence holds the poll intervals for the three feed kinds. These mirror
// observed product behavior and are configuration, not hard law.
type Cadence struct {
	Deploying time.Duration
	Settled   time.Duration
	Session   time.Duration
	Stage     time.Duration
}

// DefaultCadence is the cadence used when no config overrides apply.
var DefaultCadence = Cadence{
	Deploying: 2 * time.Second,
	Settled:   5 * time.Second,
	Session:   3 * time.Second,
	Stage:     5 * time.Second,
}

// DeploymentHookInterval returns the cadence for a task's deployment
// hooks: fast while actively deploying, slow once the deployment has left
// pending, and paused while pending and never started. Polling continues
// even while the view is backgrounded.
func (c Cadence) DeploymentHookInterval(deployStatus string) time.Duration {
	switch deployStatus {
	case DeployDeploying:
		return c.Deploying
	case DeployPending:
		return 0
	default:
		return c.Settled
	}
}

// SessionHookInterval returns the cadence for a chat session's hooks,
// paused until a session id exists.
func (c Cadence) SessionHookInterval(sessionID string) time.Duration {
	if sessionID == "" {
		return 0
	}
	return c.Session
}

// StageStatusInterval returns the cadence for the stage-status document,
// paused until an issue-resolution id is known.
func (c Cadence) StageStatusInterval(issueID string) time.Duration {
	if issueID == "" {
		return 0
	}
	return c.Stage
}
