package memory

import (
	"context"

	"campaign-desk/internal/core/domain"
)

func (r *Repository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.campaigns.list(nil)), nil
}

func (r *Repository) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns.rows[id]
	if !ok {
		return nil, nil
	}
	c = c.Clone()
	return &c, nil
}

func (r *Repository) CreateCampaign(_ context.Context, in domain.CampaignInput) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := in.NewCampaign(r.campaigns.nextID(), r.stamp())
	r.campaigns.rows[c.ID] = c
	c = c.Clone()
	return &c, nil
}

func (r *Repository) UpdateCampaign(_ context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns.rows[id]
	if !ok {
		return nil, nil
	}
	c = c.Clone()
	patch.Apply(&c)
	r.campaigns.rows[id] = c
	c = c.Clone()
	return &c, nil
}

func (r *Repository) DeleteCampaign(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.campaigns.delete(id), nil
}

func (r *Repository) CampaignTotals(_ context.Context) (domain.CampaignTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var t domain.CampaignTotals
	for _, c := range r.campaigns.rows {
		t.Add(c)
	}
	return t, nil
}
