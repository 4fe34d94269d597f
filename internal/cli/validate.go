package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"mosrun.dev/mosrun/internal/tui"
)

// newValidateCmd creates the validate command
func newValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse the configuration file and report errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext()
			if err != nil {
				return err
			}

			reg := ctx.Registry
			splog := ctx.Splog

			splog.Info("%s %s: %d environments", tui.ColorGreen("✓"), reg.Path(), len(reg.Names()))

			for _, name := range reg.Names() {
				env, err := reg.Lookup(name)
				if err != nil {
					return err
				}
				if len(env.Commands) == 0 {
					splog.Warn("environment %s declares no commands", name)
				}
			}

			if !verbose {
				return nil
			}

			if defaults := reg.Defaults(); len(defaults) > 0 {
				splog.Info("  envlist:")
				for _, name := range defaults {
					splog.Info("    %s", name)
				}
			}
			if reg.SkipSDist() {
				splog.Info("  skipsdist: true")
			}
			if extra := reg.ToxExtra(); len(extra) > 0 {
				splog.Info("  other [tox] settings (not interpreted):")
				keys := make([]string, 0, len(extra))
				for k := range extra {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					splog.Info("    %s = %s", k, extra[k])
				}
			}
			if flake8 := reg.Flake8(); len(flake8) > 0 {
				splog.Info("  flake8:")
				keys := make([]string, 0, len(flake8))
				for k := range flake8 {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					splog.Info("    %s = %s", k, flake8[k])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print envlist and retained [tox]/[flake8] settings")

	return cmd
}
