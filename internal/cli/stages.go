package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"flightdeck/internal/stage"
)

// runStages builds the handler for the stages command.
func runStages(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		if info.ProjectID == "" || info.IssueID == "" {
			fmt.Fprintln(stdout, "Task has no issue; no workflow stages to show.")
			return ExitOK
		}

		doc, err := client.StageStatus(ctx, info.ProjectID, info.IssueID)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to fetch stage status: %v\n", err)
			return ExitError
		}

		nav := stage.Project(doc)
		printStages(stdout, nav)
		return ExitOK
	}
}

// printStages writes the stage ladder as plain text.
func printStages(w io.Writer, nav []stage.NavItem) {
	fmt.Fprintf(w, "Workflow progress: %d%%\n", stage.Progress(nav))
	for _, item := range nav {
		fmt.Fprintf(w, "  %-14s %-9s %3d%%", item.Label, item.Status, item.Progress)
		if item.RetryCount > 0 {
			fmt.Fprintf(w, "  retries=%d", item.RetryCount)
		}
		if item.Error != "" {
			fmt.Fprintf(w, "  error=%s", item.Error)
		}
		fmt.Fprintln(w)
	}
}
