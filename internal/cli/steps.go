package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"flightdeck/internal/hook"
	"flightdeck/internal/platform"
	"flightdeck/internal/stage"
	"flightdeck/internal/step"
)

// runSteps builds the handler for the steps command.
func runSteps(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		taskID := fs.String("task", "", "Task id to inspect")
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
		client := newClient(cfg)
		ctx := context.Background()

		info, err := client.Task(ctx, *taskID)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to fetch task: %v\n", err)
			return ExitError
		}

		snap, err := fetchHooksOnce(ctx, client, info, cfg.Polling.Limit)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to fetch hooks: %v\n", err)
			return ExitError
		}

		steps := step.Build(snap.Hooks, step.Options{
			SplitStatusAndQuery: cfg.View.SplitStatusAndQueryHooks,
		})
		if len(steps) == 0 {
			fmt.Fprintln(stdout, "waiting for jobs…")
			return ExitOK
		}
		printSteps(stdout, steps)
		return ExitOK
	}
}

// fetchHooksOnce picks the hook feed the way the watch pipeline does: the
// chat session during planning and implementation, the deployment feed
// otherwise.
func fetchHooksOnce(ctx context.Context, client *platform.Client, info platform.TaskInfo, limit int) (hook.Snapshot, error) {
	current := stage.ID("")
	if info.ProjectID != "" && info.IssueID != "" {
		if doc, err := client.StageStatus(ctx, info.ProjectID, info.IssueID); err == nil {
			current = doc.CurrentStage
		}
	}
	if (current == stage.Planning || current == stage.Implementation) && info.SessionID != "" {
		return client.SessionHooks(ctx, info.SessionID, limit)
	}
	return client.TaskHooks(ctx, info.ID, limit)
}
