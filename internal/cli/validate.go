package cli

import (
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", defaultConfigPath(), "Path to config file")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		if _, err := loadConfig(*configPath); err != nil {
			fmt.Fprintf(stderr, "Config invalid: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Config OK: %s\n", *configPath)
		return ExitOK
	}
}
