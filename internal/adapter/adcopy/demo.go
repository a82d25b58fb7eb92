package adcopy

import (
	"context"
	"fmt"

	"campaign-desk/internal/core/domain"
)

// Demo returns canned copy built from the request. It backs the demo
// deployment, which runs without any model provider.
type Demo struct{}

func (Demo) GenerateAdCopy(_ context.Context, req domain.AdCopyRequest) (*domain.GeneratedAd, error) {
	return &domain.GeneratedAd{
		Headline: fmt.Sprintf("Transform Your %s Experience", req.Product),
		PrimaryText: fmt.Sprintf(
			"Discover our innovative %s designed specifically for %s. Perfect for achieving %s with proven results.",
			req.Product, req.Audience, req.Goal),
		CallToAction: "Learn More",
		Variations: &domain.Variations{
			Headline:     []string{fmt.Sprintf("The %s You've Been Waiting For", req.Product)},
			PrimaryText:  []string{fmt.Sprintf("Join thousands of %s who already rely on %s.", req.Audience, req.Product)},
			CallToAction: []string{"Get Started", "Shop Now"},
		},
	}, nil
}

func (Demo) GenerateCampaignName(_ context.Context, product, goal string) (string, error) {
	return fmt.Sprintf("%s - %s Campaign", product, goal), nil
}
