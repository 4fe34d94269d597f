package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"mosrun.dev/mosrun/internal/registry"
	"mosrun.dev/mosrun/internal/tui"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <env>",
		Short: "Show an environment's definition",
		Long: `Show an environment's definition: dependencies, environment variables
and commands. Placeholders are resolved unless --raw is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext()
			if err != nil {
				return err
			}

			env, err := ctx.Registry.Lookup(args[0])
			if err != nil {
				return err
			}

			if !raw {
				paths := ctx.Registry.DefaultPaths(env.Name)
				env, err = registry.Resolve(env, nil, paths)
				if err != nil {
					return err
				}
			}

			splog := ctx.Splog
			splog.Info("environment %s", tui.ColorCyan(env.Name))
			splog.Info("  changedir: %s", env.ChangeDir)

			if len(env.SetEnv) > 0 {
				splog.Info("  setenv:")
				keys := make([]string, 0, len(env.SetEnv))
				for k := range env.SetEnv {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					splog.Info("    %s=%s", k, env.SetEnv[k])
				}
			}

			if len(env.Deps) > 0 {
				splog.Info("  deps:")
				for _, spec := range env.Deps {
					splog.Info("    %-14s %s", tui.ColorDim(spec.Kind.String()), spec.Raw)
				}
			}

			if len(env.Commands) > 0 {
				splog.Info("  commands:")
				for _, command := range env.Commands {
					splog.Info("    %s", command.Raw)
				}
			}
			return nil
		},
		ValidArgsFunction: completeEnvironments,
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Show the definition without resolving placeholders")

	return cmd
}
