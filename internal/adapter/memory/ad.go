package memory

import (
	"context"

	"campaign-desk/internal/core/domain"
)

func (r *Repository) ListAds(_ context.Context) ([]domain.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.ads.list(nil)), nil
}

func (r *Repository) ListAdsByCampaign(_ context.Context, campaignID int64) ([]domain.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ads := r.ads.list(func(a domain.Ad) bool {
		return a.CampaignID != nil && *a.CampaignID == campaignID
	})
	return cloneAll(ads), nil
}

func (r *Repository) GetAd(_ context.Context, id int64) (*domain.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.ads.rows[id]
	if !ok {
		return nil, nil
	}
	a = a.Clone()
	return &a, nil
}

func (r *Repository) CreateAd(_ context.Context, in domain.AdInput) (*domain.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := in.NewAd(r.ads.nextID(), r.stamp())
	r.ads.rows[a.ID] = a
	a = a.Clone()
	return &a, nil
}

func (r *Repository) UpdateAd(_ context.Context, id int64, patch domain.AdPatch) (*domain.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.ads.rows[id]
	if !ok {
		return nil, nil
	}
	a = a.Clone()
	patch.Apply(&a)
	r.ads.rows[id] = a
	a = a.Clone()
	return &a, nil
}

func (r *Repository) DeleteAd(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ads.delete(id), nil
}
