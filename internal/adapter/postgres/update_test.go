package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campaign-desk/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestCampaignUpdateWritesOnlySuppliedColumns(t *testing.T) {
	impressions := int64(12500)
	u := campaignUpdate(domain.CampaignPatch{
		Status:      strPtr("active"),
		Impressions: &impressions,
		Budget:      domain.Null[int64](),
	})

	query, args := u.build("campaigns", 7, "id")
	assert.Equal(t, "UPDATE campaigns SET status = $1, budget = $2, impressions = $3 WHERE id = $4 RETURNING id", query)
	assert.Equal(t, []any{"active", (*int64)(nil), int64(12500), int64(7)}, args)
}

func TestPostUpdateNullables(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	u := postUpdate(domain.PostPatch{
		AdID:        domain.Null[int64](),
		ScheduledAt: domain.Some(at),
		Engagement:  domain.Some(domain.Blob{"likes": float64(3)}),
	})

	query, args := u.build("posts", 1, "id")
	assert.Equal(t, "UPDATE posts SET ad_id = $1, scheduled_at = $2, engagement = $3 WHERE id = $4 RETURNING id", query)
	assert.Equal(t, []any{(*int64)(nil), &at, domain.Blob{"likes": float64(3)}, int64(1)}, args)
}

func TestSocialAccountUpdateTokens(t *testing.T) {
	u := socialAccountUpdate(domain.SocialAccountPatch{
		AccessToken:  domain.Some("a"),
		RefreshToken: domain.Null[string](),
	})

	query, args := u.build("social_accounts", 3, "id")
	assert.Equal(t, "UPDATE social_accounts SET access_token = $1, refresh_token = $2 WHERE id = $3 RETURNING id", query)
	assert.Equal(t, []any{strPtr("a"), (*string)(nil), int64(3)}, args)
}
