package port

import (
	"context"

	"campaign-desk/internal/core/domain"
)

// AdCopyGenerator is the outbound port to a text-generation model.
type AdCopyGenerator interface {
	GenerateAdCopy(ctx context.Context, req domain.AdCopyRequest) (*domain.GeneratedAd, error)
	GenerateCampaignName(ctx context.Context, product, goal string) (string, error)
}
