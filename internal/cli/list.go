package cli

import (
	"github.com/spf13/cobra"

	"mosrun.dev/mosrun/internal/tui"
	"mosrun.dev/mosrun/internal/utils"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the declared environments",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext()
			if err != nil {
				return err
			}

			defaults := ctx.Registry.Defaults()
			for i, name := range ctx.Registry.Names() {
				line := tui.ColorEnvName(name, i)
				if utils.ContainsString(defaults, name) {
					line += " " + tui.ColorDim("(default)")
				}
				ctx.Splog.Info("%s", line)
			}
			return nil
		},
	}

	return cmd
}
