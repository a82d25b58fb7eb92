package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"campaign-desk/internal/core/domain"
)

// GenerateAdCopy forwards req to the generator once. The upstream error is
// logged and replaced by domain.ErrGenerationFailed.
func (u *UseCase) GenerateAdCopy(ctx context.Context, req domain.AdCopyRequest) (*domain.GeneratedAd, error) {
	if err := u.check("ad copy request", req); err != nil {
		return nil, err
	}
	ad, err := u.generator.GenerateAdCopy(ctx, req)
	if err != nil {
		u.logger.Error("generate ad copy", slog.Any("error", err))
		return nil, domain.ErrGenerationFailed
	}
	if ad == nil {
		return nil, domain.ErrGenerationFailed
	}
	return ad, nil
}

// GenerateCampaignName asks the generator for a name and falls back to a
// name built from the product and goal when it fails or returns nothing.
func (u *UseCase) GenerateCampaignName(ctx context.Context, req domain.CampaignNameRequest) (string, error) {
	if err := u.check("campaign name request", req); err != nil {
		return "", err
	}
	name, err := u.generator.GenerateCampaignName(ctx, req.Product, req.Goal)
	if err != nil {
		u.logger.Warn("generate campaign name, using fallback", slog.Any("error", err))
		name = ""
	}
	if name == "" {
		name = fallbackCampaignName(req.Product, req.Goal)
	}
	return name, nil
}

func fallbackCampaignName(product, goal string) string {
	return fmt.Sprintf("%s - %s Campaign", product, goal)
}
