package platform

// TaskInfo is the backend task document. Only the fields that drive poll
// cadence and feed selection are modeled.
type TaskInfo struct {
	ID               string `json:"id"`
	Title            string `json:"title,omitempty"`
	DeploymentStatus string `json:"deployment_status,omitempty"`
	SessionID        string `json:"session_id,omitempty"`
	ProjectID        string `json:"project_id,omitempty"`
	IssueID          string `json:"issue_id,omitempty"`
}
