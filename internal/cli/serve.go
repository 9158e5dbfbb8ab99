package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"flightdeck/internal/dashserver"
	"flightdeck/internal/poll"
	"flightdeck/internal/ui/live"
)

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		taskID := fs.String("task", "", "Task id to serve")
		addr := fs.String("addr", "127.0.0.1:8787", "Listen address for the dashboard")
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

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		f := newFeed(cfg, newClient(cfg), *taskID)
		poller := poll.New(64)
		go poller.Run(ctx, f.sources()...)

		store := dashserver.NewStore(*taskID, live.Options{
			SplitStatusAndQuery: cfg.View.SplitStatusAndQueryHooks,
			ShowPhaseFilter:     cfg.View.ShowPhaseFilter,
		})
		go store.Consume(poller.Updates())

		fmt.Fprintf(stdout, "Serving dashboard for task %s on http://%s\n", *taskID, *addr)
		if err := dashserver.Serve(ctx, dashserver.Config{Addr: *addr}, store); err != nil {
			fmt.Fprintf(stderr, "Dashboard server failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
