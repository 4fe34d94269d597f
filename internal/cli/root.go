// Package cli defines the mosrun command line interface, one file per
// subcommand.
package cli

import (
	"github.com/spf13/cobra"

	"mosrun.dev/mosrun/internal/runtime"
)

// configPath is the --config persistent flag value
var configPath string

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mosrun",
		Short: "mosrun runs the named test environments declared in a tox.ini-style file",
		Long: `mosrun runs the named test environments declared in a tox.ini-style file.

Each environment declares dependencies, environment variables and an ordered
list of command lines. Commands run sequentially and fail fast; trailing
arguments after -- are forwarded into {posargs} placeholders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to the configuration file (default: nearest tox.ini)")

	// Add subcommands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newDepsCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// getContext loads the registry for the configured (or discovered) file
func getContext() (*runtime.Context, error) {
	return runtime.GetContext(configPath)
}

// completeEnvironments is a helper for cobra.ValidArgsFunction and
// RegisterFlagCompletionFunc that returns all declared environment names.
func completeEnvironments(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ctx, err := getContext()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return ctx.Registry.Names(), cobra.ShellCompDirectiveNoFileComp
}
