package report

import (
	"context"
	"database/sql"
	"fmt"
	"io"
)

// Render writes a text summary of the archive: every run with its most
// recently recorded step rollup.
func Render(ctx context.Context, db *sql.DB, w io.Writer) error {
	runs, err := LoadRuns(ctx, db)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No archived runs.")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(w, "Run %s  task=%s", run.RunID, run.TaskID)
		if run.IssueID != "" {
			fmt.Fprintf(w, "  issue=%s", run.IssueID)
		}
		fmt.Fprintf(w, "  polls=%d  started=%s\n", run.PollCount, run.StartedAt.Format("2006-01-02 15:04:05"))

		steps, err := LoadLatestSteps(ctx, db, run.RunID)
		if err != nil {
			return err
		}
		for _, row := range steps {
			fmt.Fprintf(w, "  %-40s %-10s events=%d%s%s\n",
				row.Name, row.Status, row.HookCount,
				formatDurationMS(row.DurationMS), formatCost(row.CostUSD))
		}
	}
	return nil
}

// formatDurationMS renders an optional duration column.
func formatDurationMS(ms float64) string {
	if ms <= 0 {
		return ""
	}
	return fmt.Sprintf("  duration=%.0fms", ms)
}

// formatCost renders an optional cost column.
func formatCost(usd float64) string {
	if usd <= 0 {
		return ""
	}
	return fmt.Sprintf("  cost=$%.4f", usd)
}
