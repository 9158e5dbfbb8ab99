package cli

import (
	"context"
	"fmt"
	"io"

	"flightdeck/internal/poll"
	"flightdeck/internal/step"
	"flightdeck/internal/ui/live"
)

// plainWatch renders snapshots as plain text, one block per refresh, for
// non-TTY output.
func plainWatch(ctx context.Context, stdout io.Writer, taskID string, opts live.Options, updates <-chan poll.Update) {
	state := live.NewState(taskID, opts)
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			event, ok := live.FromPollUpdate(update)
			if !ok {
				continue
			}
			state = live.Reduce(state, event)
			if event.Kind == live.EventHooks || event.Kind == live.EventStageDoc {
				printState(stdout, state)
			}
			if event.Kind == live.EventFetchError {
				fmt.Fprintf(stdout, "fetch error (%s): %s\n", event.Source, event.Err)
			}
		}
	}
}

// printState writes one plain-text block for the current view state.
func printState(w io.Writer, state live.State) {
	if len(state.Nav) > 0 {
		fmt.Fprintf(w, "stages (%d%%):", state.Progress)
		for _, item := range state.Nav {
			fmt.Fprintf(w, " %s=%s", item.ID, item.Status)
		}
		fmt.Fprintln(w)
	}
	if state.Waiting() {
		fmt.Fprintln(w, "waiting for jobs…")
		return
	}
	printSteps(w, state.Steps)
}

// printSteps writes the folded step table as plain text.
func printSteps(w io.Writer, steps []step.Step) {
	for _, s := range steps {
		fmt.Fprintf(w, "  %-40s %-10s events=%d  %s", s.Name, s.Status, len(s.Hooks), step.FormatDuration(s))
		if cost := step.FormatCost(s); cost != "" {
			fmt.Fprintf(w, "  %s", cost)
		}
		fmt.Fprintln(w)
	}
}
