package usecase

import (
	"context"

	"campaign-desk/internal/core/domain"
)

const (
	entityCampaign      = "campaign"
	entityAd            = "ad"
	entitySocialAccount = "social account"
	entityPost          = "post"
)

func (u *UseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

func (u *UseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.repo.GetCampaign(ctx, id)
}

// CreateCampaign validates in against the campaign creation schema and stores
// it with its defaults.
func (u *UseCase) CreateCampaign(ctx context.Context, in domain.CampaignInput) (*domain.Campaign, error) {
	if err := u.check(entityCampaign, in); err != nil {
		return nil, err
	}
	return u.repo.CreateCampaign(ctx, in)
}

// UpdateCampaign validates only the fields present in patch.
func (u *UseCase) UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	if err := u.check(entityCampaign, patch, nullableAmount("budget", patch.Budget)...); err != nil {
		return nil, err
	}
	return u.repo.UpdateCampaign(ctx, id, patch)
}

func (u *UseCase) DeleteCampaign(ctx context.Context, id int64) (bool, error) {
	return u.repo.DeleteCampaign(ctx, id)
}
