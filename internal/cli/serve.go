package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"campaign-desk/internal/adapter/adcopy"
	httpadapter "campaign-desk/internal/adapter/http"
	"campaign-desk/internal/adapter/usecase"
	"campaign-desk/internal/db"
	"campaign-desk/internal/scheduler"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var port uint16

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API on HTTP_PORT. The store is seeded according to
STORAGE_SEED_DEFAULTS and STORAGE_SEED_DEMO, and the publishing sweep runs
when SCHEDULER_ENABLED is set. The server drains for up to 5s on shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				rootOpts.Config.HTTP.Port = port
			}
			return runServe(cmd.Context(), rootOpts)
		},
	}

	cmd.Flags().Uint16VarP(&port, "port", "p", 8080, "listen port (overrides HTTP_PORT)")

	return cmd
}

func runServe(ctx context.Context, opts *RootOptions) error {
	cfg, logger := opts.Config, opts.Logger

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	if err = db.Seed(ctx, repo, cfg.Storage); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	gen, err := adcopy.New(ctx, cfg.AI)
	if err != nil {
		return fmt.Errorf("ad copy generator: %w", err)
	}
	if cfg.AI.APIKey == "" && cfg.AI.ProviderName() != "demo" {
		logger.Warn("no AI API key configured, ad generation will fail", slog.String("provider", cfg.AI.ProviderName()))
	}

	svc := usecase.New(repo, gen, logger)

	if cfg.Scheduler.Enabled {
		sched, err := scheduler.New(svc, cfg.Scheduler, logger)
		if err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
