package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"flightdeck/internal/archive"
	"flightdeck/internal/report"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		dbPath := fs.String("db", "", "Archive database path (defaults to the configured path)")
		configPath := fs.String("config", defaultConfigPath(), "Path to config file")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		path := *dbPath
		if path == "" {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
				return ExitError
			}
			path = cfg.Archive.Path
		}

		db, err := archive.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open archive: %v\n", err)
			return ExitError
		}
		defer db.Close()

		if err := report.Render(context.Background(), db, stdout); err != nil {
			fmt.Fprintf(stderr, "Failed to render report: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
