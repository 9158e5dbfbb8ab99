package report

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// RunSummary is one archived watch run.
type RunSummary struct {
	RunID      string
	TaskID     string
	IssueID    string
	StartedAt  time.Time
	PollCount  int
	LastPollAt time.Time
}

// StepRow is one step from a run's most recent recorded fold.
type StepRow struct {
	Name       string
	Status     string
	HookCount  int
	DurationMS float64
	CostUSD    float64
}

// LoadRuns lists archived runs, most recent first.
func LoadRuns(ctx context.Context, db *sql.DB) ([]RunSummary, error) {
	if db == nil {
		return nil, errors.New("report: db is nil")
	}
	rows, err := db.QueryContext(ctx, `
		SELECT r.run_id, r.task_id, COALESCE(r.issue_id, ''), r.started_at,
		       COUNT(p.poll_id), COALESCE(MAX(p.polled_at), r.started_at)
		FROM runs r
		LEFT JOIN polls p ON p.run_id = r.run_id
		GROUP BY r.run_id, r.task_id, r.issue_id, r.started_at
		ORDER BY r.started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RunSummary
	for rows.Next() {
		var run RunSummary
		if err := rows.Scan(&run.RunID, &run.TaskID, &run.IssueID, &run.StartedAt, &run.PollCount, &run.LastPollAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// LoadLatestSteps returns the step rows from the last poll of a run that
// recorded any.
func LoadLatestSteps(ctx context.Context, db *sql.DB, runID string) ([]StepRow, error) {
	if db == nil {
		return nil, errors.New("report: db is nil")
	}
	rows, err := db.QueryContext(ctx, `
		SELECT s.name, s.status, s.hook_count,
		       COALESCE(s.total_duration_ms, 0), COALESCE(s.total_cost_usd, 0)
		FROM poll_steps s
		WHERE s.poll_id = (
			SELECT p.poll_id FROM polls p
			JOIN poll_steps ps ON ps.poll_id = p.poll_id
			WHERE p.run_id = ?
			ORDER BY p.polled_at DESC
			LIMIT 1
		)
		ORDER BY s.position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StepRow
	for rows.Next() {
		var row StepRow
		if err := rows.Scan(&row.Name, &row.Status, &row.HookCount, &row.DurationMS, &row.CostUSD); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
