package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/spaces/internal/app"
	"github.com/firefly-engineering/spaces/internal/space"
)

func newPurgeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Remove every space",
		Long: `Remove the spaces directory and every space in it.

Uncommitted and unpushed work in the spaces is lost.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			msg, err := space.Purge(app.Default.FS, cfg.Settings.SpacesDir)
			if err != nil {
				return err
			}

			logSuccess("%s", msg)
			return nil
		},
	}
}
