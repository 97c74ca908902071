package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cloclify/internal/cli"
	"cloclify/internal/clockify"
	"cloclify/internal/config"
	"cloclify/internal/errors"
	"cloclify/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Read the environment up front; validation waits until a command
	// actually runs, so --help works without a configured key
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return fail(err)
	}

	// The --debug flag must take effect before cobra parses it, since the
	// logger is wired into the client up front
	debug := cfg.Application.Debug || debugFlagged(os.Args[1:])
	log := logging.NewLogger(debug)

	client := clockify.NewClient(cfg.API.BaseURL, cfg.API.Key, cfg.API.Timeout, log)

	root := cli.NewRootCommand(client, cfg)
	if err := root.Execute(); err != nil {
		return fail(err)
	}
	return 0
}

// debugFlagged pre-scans the arguments for --debug in both spellings cobra
// accepts, bare and --debug=value.
func debugFlagged(args []string) bool {
	for _, arg := range args {
		if arg == "--debug" {
			return true
		}
		if value, ok := strings.CutPrefix(arg, "--debug="); ok {
			if enabled, err := strconv.ParseBool(value); err == nil && enabled {
				return true
			}
		}
	}
	return false
}

// fail prints a one-line message to stderr and picks the exit status for
// the error's category.
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetUserMessage(err))
	return errors.ExitCode(err)
}
