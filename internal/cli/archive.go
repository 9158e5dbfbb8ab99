package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"flightdeck/internal/archive"
	"flightdeck/internal/poll"
	"flightdeck/internal/ui/live"
)

// runArchive builds the handler for the archive command.
func runArchive(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		taskID := fs.String("task", "", "Task id to archive")
		dbPath := fs.String("db", "", "Archive database path (defaults to the configured path)")
		configPath := fs.String("config", defaultConfigPath(), "Path to config file")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *taskID == "" {
			fmt.Fprintln(stderr, "Missing --task")
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		path := *dbPath
		if path == "" {
			path = cfg.Archive.Path
		}

		db, err := archive.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open archive: %v\n", err)
			return ExitError
		}
		defer db.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client := newClient(cfg)
		info, err := client.Task(ctx, *taskID)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to fetch task: %v\n", err)
			return ExitError
		}
		recorder, err := archive.NewRecorder(ctx, db, info.ID, info.IssueID)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start archive run: %v\n", err)
			return ExitError
		}

		f := newFeed(cfg, client, *taskID)
		poller := poll.New(64)
		go poller.Run(ctx, f.sources()...)

		viewOpts := live.Options{
			SplitStatusAndQuery: cfg.View.SplitStatusAndQueryHooks,
			ShowPhaseFilter:     cfg.View.ShowPhaseFilter,
		}
		fmt.Fprintf(stdout, "Recording task %s into %s (run %s), Ctrl-C to stop.\n", *taskID, path, recorder.RunID())
		if err := recordUpdates(ctx, recorder, *taskID, viewOpts, poller.Updates()); err != nil {
			fmt.Fprintf(stderr, "Archive recording failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// recordUpdates reduces poll updates into view state and records each
// hook and stage refresh as one archive poll row.
func recordUpdates(ctx context.Context, recorder *archive.Recorder, taskID string, opts live.Options, updates <-chan poll.Update) error {
	state := live.NewState(taskID, opts)
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			event, ok := live.FromPollUpdate(update)
			if !ok {
				continue
			}
			state = live.Reduce(state, event)
			if event.Kind != live.EventHooks && event.Kind != live.EventStageDoc {
				continue
			}
			err := recorder.RecordPoll(ctx, event.Source, time.Now(), len(state.Hooks), state.Steps, state.Nav)
			if err != nil {
				return err
			}
		}
	}
}
