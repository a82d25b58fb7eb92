package cli

import (
	"github.com/spf13/cobra"

	"campaign-desk/internal/db"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long: `Apply the embedded migrations to the database at PSQL_ADDRESS.
With --down every applied migration is reverted instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := rootOpts.Config.Psql.Addr.String()
			if down {
				if err := db.Rollback(addr); err != nil {
					return err
				}
				rootOpts.Logger.Info("migrations rolled back")
				return nil
			}
			if err := db.Migrate(addr); err != nil {
				return err
			}
			rootOpts.Logger.Info("migrations applied successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "revert all migrations")

	return cmd
}
