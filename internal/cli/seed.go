package cli

import (
	"github.com/spf13/cobra"

	"campaign-desk/internal/db"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert default data into the configured store",
		Long: `Insert the default social accounts, and with --demo the demo campaign,
into the store selected by STORAGE_DRIVER. Data already present is left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := rootOpts.Config, rootOpts.Logger
			if cfg.Storage.Driver == "memory" || cfg.Storage.Driver == "" {
				logger.Warn("seeding in-memory storage, data is discarded on exit")
			}

			repo, closeRepo, err := openRepository(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeRepo()

			storage := cfg.Storage
			storage.SeedDefaults = true
			storage.SeedDemo = storage.SeedDemo || demo
			if err = db.Seed(cmd.Context(), repo, storage); err != nil {
				return err
			}
			logger.Info("seed complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "also insert the demo campaign")

	return cmd
}
