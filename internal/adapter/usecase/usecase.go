package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

var _ port.MarketingUseCase = (*UseCase)(nil)

// UseCase implements port.MarketingUseCase. It validates every input against
// its schema and then performs exactly one repository call, except for the
// publishing sweep which touches each due post in turn.
type UseCase struct {
	repo      port.Repository
	generator port.AdCopyGenerator
	validate  *validator.Validate
	logger    *slog.Logger
}

// New creates a use case over repo. generator serves the ad-copy operations.
func New(repo port.Repository, generator port.AdCopyGenerator, logger *slog.Logger) *UseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &UseCase{
		repo:      repo,
		generator: generator,
		validate:  newValidator(),
		logger:    logger,
	}
}

// DashboardStats summarizes all campaigns for display.
func (u *UseCase) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	totals, err := u.repo.CampaignTotals(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return totals.Dashboard(), nil
}

// PublishDuePosts marks every due post as published at now. A failure on one
// post stops the sweep; posts already published stay published.
func (u *UseCase) PublishDuePosts(ctx context.Context, now time.Time) (int, error) {
	due, err := u.repo.ListDuePosts(ctx, now)
	if err != nil {
		return 0, err
	}
	published := 0
	for _, p := range due {
		got, err := u.repo.MarkPostPublished(ctx, p.ID, now)
		if err != nil {
			return published, fmt.Errorf("publish post %d: %w", p.ID, err)
		}
		if got == nil {
			// deleted or no longer due since the listing
			continue
		}
		published++
		u.logger.Debug("post published", slog.Int64("post_id", p.ID))
	}
	return published, nil
}
