package cli

import (
	"github.com/spf13/cobra"

	"mosrun.dev/mosrun/internal/actions"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var (
		envNames    []string
		installDeps bool
	)

	cmd := &cobra.Command{
		Use:     "run [env...] [-- posargs...]",
		Aliases: []string{"r"},
		Short:   "Run the selected test environments",
		Long: `Run the selected test environments.

Environments may be given as arguments or with -e (comma separated). When
none are given, the [tox] envlist is used; without an envlist an interactive
selector opens. Everything after -- is forwarded into {posargs}.

Examples:
  mosrun run -e neutron
  mosrun run neutron glance
  mosrun run -e neutron -- -k smoke`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext()
			if err != nil {
				return err
			}

			// Everything after -- is posargs, everything before is env names
			names := append([]string(nil), envNames...)
			var posargs []string
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				names = append(names, args[:dash]...)
				posargs = args[dash:]
			} else {
				names = append(names, args...)
			}

			code, err := actions.RunAction(ctx, actions.RunOptions{
				EnvNames:    names,
				Posargs:     posargs,
				InstallDeps: installDeps,
			})
			if err != nil {
				return err
			}
			if code != 0 {
				return NewExitCodeError(code)
			}
			return nil
		},
		ValidArgsFunction: completeEnvironments,
	}

	cmd.Flags().StringSliceVarP(&envNames, "env", "e", nil, "Environments to run (comma separated)")
	cmd.Flags().BoolVar(&installDeps, "install-deps", false, "Install each environment's dependencies before running")
	_ = cmd.RegisterFlagCompletionFunc("env", completeEnvironments)

	return cmd
}
