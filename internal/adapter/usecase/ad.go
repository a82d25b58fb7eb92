package usecase

import (
	"context"

	"campaign-desk/internal/core/domain"
)

// ListAds returns all ads, or the ads of one campaign when campaignID is set.
func (u *UseCase) ListAds(ctx context.Context, campaignID *int64) ([]domain.Ad, error) {
	if campaignID != nil {
		return u.repo.ListAdsByCampaign(ctx, *campaignID)
	}
	return u.repo.ListAds(ctx)
}

func (u *UseCase) GetAd(ctx context.Context, id int64) (*domain.Ad, error) {
	return u.repo.GetAd(ctx, id)
}

func (u *UseCase) CreateAd(ctx context.Context, in domain.AdInput) (*domain.Ad, error) {
	if err := u.check(entityAd, in); err != nil {
		return nil, err
	}
	return u.repo.CreateAd(ctx, in)
}

func (u *UseCase) UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) (*domain.Ad, error) {
	if err := u.check(entityAd, patch, nullableRef("campaignId", patch.CampaignID)...); err != nil {
		return nil, err
	}
	return u.repo.UpdateAd(ctx, id, patch)
}

func (u *UseCase) DeleteAd(ctx context.Context, id int64) (bool, error) {
	return u.repo.DeleteAd(ctx, id)
}
