package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"flightdeck/internal/hook"
	"flightdeck/internal/stage"
)

// Client talks to the developer-platform backend over HTTP.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New constructs a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: &http.Client{}}
}

// NewWithTimeout constructs a client with a per-request timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// WithToken sets the bearer token sent with every request.
func (c *Client) WithToken(token string) *Client {
	c.token = token
	return c
}

// Task fetches the task document that drives poll cadence selection.
func (c *Client) Task(ctx context.Context, taskID string) (TaskInfo, error) {
	var info TaskInfo
	if err := c.getJSON(ctx, "/v1/tasks/"+url.PathEscape(taskID), &info); err != nil {
		return TaskInfo{}, err
	}
	return info, nil
}

// TaskHooks fetches the deployment hook feed for a task. The snapshot is
// normalized to received_at order before it is returned.
func (c *Client) TaskHooks(ctx context.Context, taskID string, limit int) (hook.Snapshot, error) {
	return c.hooks(ctx, "/v1/tasks/"+url.PathEscape(taskID)+"/hooks", limit)
}

// SessionHooks fetches the chat session hook feed, normalized like
// TaskHooks.
func (c *Client) SessionHooks(ctx context.Context, sessionID string, limit int) (hook.Snapshot, error) {
	return c.hooks(ctx, "/v1/sessions/"+url.PathEscape(sessionID)+"/hooks", limit)
}

// StageStatus fetches the stage-status document for an issue resolution.
func (c *Client) StageStatus(ctx context.Context, projectID, issueID string) (stage.StatusDoc, error) {
	var doc stage.StatusDoc
	path := "/v1/projects/" + url.PathEscape(projectID) + "/issues/" + url.PathEscape(issueID) + "/stages"
	if err := c.getJSON(ctx, path, &doc); err != nil {
		return stage.StatusDoc{}, err
	}
	return doc, nil
}

// RetryStage asks the backend to retry the given workflow stage.
func (c *Client) RetryStage(ctx context.Context, projectID, issueID string, s stage.ID) error {
	path := "/v1/projects/" + url.PathEscape(projectID) + "/issues/" + url.PathEscape(issueID) +
		"/stages/" + url.PathEscape(string(s)) + "/retry"
	body, status, err := c.do(ctx, http.MethodPost, path, []byte("{}"))
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusAccepted {
		return decodeHTTPError(status, body)
	}
	return nil
}

// hooks fetches and normalizes one hook feed.
func (c *Client) hooks(ctx context.Context, path string, limit int) (hook.Snapshot, error) {
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var snap hook.Snapshot
	if err := c.getJSON(ctx, path, &snap); err != nil {
		return hook.Snapshot{}, err
	}
	snap.Hooks = hook.Normalize(snap.Hooks)
	return snap, nil
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return decodeHTTPError(status, body)
	}
	return json.Unmarshal(body, out)
}

// do issues one HTTP request and returns the raw response body and status.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

// decodeHTTPError turns a non-200 response into an error, preferring the
// backend's error field when present.
func decodeHTTPError(status int, body []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return fmt.Errorf("http %d: %s", status, resp.Error)
	}
	return fmt.Errorf("http %d", status)
}
