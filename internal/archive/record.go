package archive

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"flightdeck/internal/stage"
	"flightdeck/internal/step"
)

// Recorder writes per-poll rollups for one watched task into an archive
// database.
type Recorder struct {
	db              *sql.DB
	runID           string
	lastFingerprint string
}

// NewRecorder registers a run and returns a recorder for it.
func NewRecorder(ctx context.Context, db *sql.DB, taskID, issueID string) (*Recorder, error) {
	if db == nil {
		return nil, errors.New("archive: db is nil")
	}
	if taskID == "" {
		return nil, errors.New("archive: task id is required")
	}
	runID := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO runs (run_id, task_id, issue_id, started_at) VALUES (?, ?, ?, ?)`,
		runID, taskID, nullable(issueID), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}
	return &Recorder{db: db, runID: runID}, nil
}

// RunID returns the archive id of the recorded run.
func (r *Recorder) RunID() string {
	return r.runID
}

// RecordPoll stores the rollup of one poll cycle. Step rows are only
// re-inserted when the fold result changed since the previous cycle.
func (r *Recorder) RecordPoll(ctx context.Context, source string, polledAt time.Time, hookCount int, steps []step.Step, nav []stage.NavItem) error {
	fingerprint, err := Fingerprint(steps)
	if err != nil {
		return err
	}
	pollID := uuid.NewString()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO polls (poll_id, run_id, source, polled_at, hook_count, fingerprint)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		pollID, r.runID, source, polledAt.UTC(), hookCount, fingerprint,
	)
	if err != nil {
		return err
	}
	if fingerprint != r.lastFingerprint {
		if err := r.insertSteps(ctx, pollID, steps); err != nil {
			return err
		}
		r.lastFingerprint = fingerprint
	}
	return r.insertStages(ctx, pollID, nav)
}

// insertSteps writes the folded step rows for a poll.
func (r *Recorder) insertSteps(ctx context.Context, pollID string, steps []step.Step) error {
	for i, s := range steps {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO poll_steps (poll_id, position, step_id, name, status, started_at, ended_at, hook_count, total_duration_ms, total_cost_usd)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			pollID, i, s.ID, s.Name, string(s.Status),
			nullableTime(s.StartTime), nullableTime(s.EndTime),
			len(s.Hooks),
			float64(s.TotalDuration)/float64(time.Millisecond),
			s.TotalCost,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// insertStages writes the projected stage rows for a poll.
func (r *Recorder) insertStages(ctx context.Context, pollID string, nav []stage.NavItem) error {
	for i, item := range nav {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO poll_stages (poll_id, position, stage, status, progress)
			 VALUES (?, ?, ?, ?, ?)`,
			pollID, i, string(item.ID), string(item.Status), item.Progress,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// nullable converts an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullableTime converts a zero time to SQL NULL.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
