package main

import (
	"errors"
	"fmt"
	"os"

	"mosrun.dev/mosrun/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := cli.RewriteLegacyArgs(os.Args)

	rootCmd := cli.NewRootCmd(version, commit, date)
	rootCmd.SetArgs(args[1:])

	if err := rootCmd.Execute(); err != nil {
		// Command failures have already been reported with the failing
		// environment and command; only the exit code remains.
		var exitErr *cli.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
