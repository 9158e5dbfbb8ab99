package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"flightdeck/internal/stage"
)

// runRetry builds the handler for the retry command.
func runRetry(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		taskID := fs.String("task", "", "Task id the stage belongs to")
		stageName := fs.String("stage", "", "Stage to retry (deployment, planning, implementation, testing, handoff)")
		configPath := fs.String("config", defaultConfigPath(), "Path to config file")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *taskID == "" {
			fmt.Fprintln(stderr, "Missing --task")
			return ExitUsage
		}
		id := stage.ID(*stageName)
		if stage.Index(id) < 0 {
			fmt.Fprintf(stderr, "Unknown stage: %q\n", *stageName)
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
		if info.ProjectID == "" || info.IssueID == "" {
			fmt.Fprintln(stderr, "Task has no issue; nothing to retry.")
			return ExitError
		}

		if err := client.RetryStage(ctx, info.ProjectID, info.IssueID, id); err != nil {
			fmt.Fprintf(stderr, "Retry failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Retry requested for stage %s.\n", stage.Label(id))
		return ExitOK
	}
}
