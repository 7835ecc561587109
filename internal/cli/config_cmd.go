package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, src := range app.cfg.Sources {
				fmt.Fprintf(out, "# loaded from %s\n", src)
			}
			if err := app.cfg.Encode(out); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}
}
