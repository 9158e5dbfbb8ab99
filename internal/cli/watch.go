package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"flightdeck/internal/config"
	"flightdeck/internal/poll"
	"flightdeck/internal/ui/live"
)

// runWatch builds the handler for the watch command.
func runWatch(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		taskID := fs.String("task", "", "Task id to watch")
		configPath := fs.String("config", defaultConfigPath(), "Path to config file")
		uiMode := fs.String("ui", "auto", "UI mode: auto, live, or plain")
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
		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f := newFeed(cfg, newClient(cfg), *taskID)
		poller := poll.New(64)
		go poller.Run(ctx, f.sources()...)

		viewOpts := live.Options{
			SplitStatusAndQuery: cfg.View.SplitStatusAndQueryHooks,
			ShowPhaseFilter:     cfg.View.ShowPhaseFilter,
		}
		if decision.useLive {
			controller := live.Start(stdout, live.ModelOptions{
				NoColor: cfg.View.NoColor,
				View:    viewOpts,
				TaskID:  *taskID,
			})
			go controller.Pump(poller.Updates())
			controller.Wait()
			return ExitOK
		}

		plainWatch(ctx, stdout, *taskID, viewOpts, poller.Updates())
		return ExitOK
	}
}

// defaultConfigPath returns the config file used when --config is absent.
func defaultConfigPath() string {
	return config.DefaultPath
}
