package cli

import (
	"github.com/spf13/cobra"

	"mosrun.dev/mosrun/internal/actions"
)

// newDepsCmd creates the deps command
func newDepsCmd() *cobra.Command {
	var (
		install bool
		resolve bool
		fetch   bool
	)

	cmd := &cobra.Command{
		Use:   "deps <env>",
		Short: "Inspect or install an environment's dependencies",
		Long: `Inspect or install an environment's dependencies.

By default the classified specifiers are printed. With --install they are
forwarded to pip; with --resolve, VCS refs are pinned to commit SHAs via the
GitHub API; with --fetch, VCS sources are cloned into the environment
directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.DepsAction(ctx, actions.DepsOptions{
				EnvName: args[0],
				Install: install,
				Resolve: resolve,
				Fetch:   fetch,
			})
		},
		ValidArgsFunction: completeEnvironments,
	}

	cmd.Flags().BoolVar(&install, "install", false, "Install the dependencies with pip")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Pin VCS refs to commit SHAs via the GitHub API")
	cmd.Flags().BoolVar(&fetch, "fetch", false, "Clone VCS dependency sources into the environment directory")

	return cmd
}
