// Package cli wires the campaign-desk commands: serve, migrate and seed.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"campaign-desk/internal/config"
)

// RootOptions carries the configuration and logger shared by every
// subcommand. Both are filled in before a subcommand runs.
type RootOptions struct {
	Config config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the campaign-desk CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "campaign-desk",
		Short: "Marketing campaign backend",
		Long: `campaign-desk serves the REST API behind the marketing dashboard: campaigns,
ads, social accounts, posts, dashboard statistics and AI ad-copy generation.

Configuration is read from the environment and from an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.Config = cfg
			opts.Logger = cfg.Log.New(cmd.OutOrStdout()).With(slog.String("env", cfg.Env))
			return nil
		},
	}

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}
