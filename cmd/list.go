package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/spaces/internal/tui"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List existing spaces",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSpaceIndex(cfg.Settings.SpacesDir, cfg.Spaces))
			return nil
		},
	}
}
