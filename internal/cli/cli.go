package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  flightdeck <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"flightdeck <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("watch", "Follow a task's workflow log live", []string{
		"flightdeck watch --task <task-id> [--config <path>] [--ui auto|live|plain]",
	}, runWatch),
	command("steps", "Print the current folded step log once", []string{
		"flightdeck steps --task <task-id> [--config <path>]",
	}, runSteps),
	command("stages", "Print the workflow stage ladder once", []string{
		"flightdeck stages --task <task-id> [--config <path>]",
	}, runStages),
	command("retry", "Ask the backend to retry a workflow stage", []string{
		"flightdeck retry --task <task-id> --stage <stage> [--config <path>]",
	}, runRetry),
	command("serve", "Serve the local web dashboard for a task", []string{
		"flightdeck serve --task <task-id> [--addr <host:port>] [--config <path>]",
	}, runServe),
	command("archive", "Poll a task and record rollups into a DuckDB archive", []string{
		"flightdeck archive --task <task-id> [--db <path>] [--config <path>]",
	}, runArchive),
	command("report", "Summarize an archive database", []string{
		"flightdeck report [--db <path>] [--config <path>]",
	}, runReport),
	command("validate", "Validate the config file", []string{
		"flightdeck validate [--config <path>]",
	}, runValidate),
}
