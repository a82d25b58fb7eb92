package db

import (
	"context"
	"fmt"

	"campaign-desk/internal/config/configs"
	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

var defaultSocialAccounts = []domain.SocialAccountInput{
	{Platform: "facebook", Username: "@yourcompany", IsConnected: ptr(true)},
	{Platform: "instagram", Username: "@yourcompany", IsConnected: ptr(true)},
	{Platform: "linkedin", Username: "Your Company", IsConnected: ptr(true)},
	{Platform: "twitter", Username: "Not connected", IsConnected: ptr(false)},
}

var demoCampaign = domain.CampaignInput{
	Name:      "Summer Product Launch",
	Product:   "Fitness Equipment",
	Audience:  "Young professionals aged 25-35",
	Goal:      "Brand Awareness",
	Status:    string(domain.CampaignActive),
	Platforms: []string{"facebook", "instagram"},
	Budget:    ptr(int64(500000)),
}

// demoCounters are applied after the demo campaign is created, since
// creation always starts counters at zero.
var demoCounters = domain.CampaignPatch{
	Impressions: ptr(int64(12500)),
	Clicks:      ptr(int64(405)),
	Spend:       ptr(int64(125000)),
}

// Seed inserts the default social accounts when the store has none and,
// with cfg.SeedDemo, the demo campaign when the store has no campaigns.
// Running it twice inserts nothing the second time.
func Seed(ctx context.Context, repo port.Repository, cfg configs.Storage) error {
	if cfg.SeedDefaults {
		accounts, err := repo.ListSocialAccounts(ctx)
		if err != nil {
			return fmt.Errorf("list social accounts: %w", err)
		}
		if len(accounts) == 0 {
			for _, in := range defaultSocialAccounts {
				if _, err = repo.CreateSocialAccount(ctx, in); err != nil {
					return fmt.Errorf("seed social account %s: %w", in.Platform, err)
				}
			}
		}
	}

	if !cfg.SeedDemo {
		return nil
	}
	campaigns, err := repo.ListCampaigns(ctx)
	if err != nil {
		return fmt.Errorf("list campaigns: %w", err)
	}
	if len(campaigns) > 0 {
		return nil
	}
	c, err := repo.CreateCampaign(ctx, demoCampaign)
	if err != nil {
		return fmt.Errorf("seed demo campaign: %w", err)
	}
	if _, err = repo.UpdateCampaign(ctx, c.ID, demoCounters); err != nil {
		return fmt.Errorf("seed demo counters: %w", err)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
