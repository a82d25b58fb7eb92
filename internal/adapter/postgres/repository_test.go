package postgres

import (
	"context"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/config/configs"
	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/db"
)

// newTestRepository connects to the database named by PSQL_TEST_ADDRESS,
// applies the migrations and empties every table. Without the variable the
// test is skipped.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(addr))
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(),
		`TRUNCATE campaigns, ads, social_accounts, posts RESTART IDENTITY`)
	require.NoError(t, err)
	return NewRepository(pool)
}

func TestCampaignRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	budget := int64(500000)
	created, err := repo.CreateCampaign(ctx, domain.CampaignInput{
		Name: "Spring", Product: "Widget", Audience: "Parents", Goal: "Awareness",
		Status: "active", Platforms: []string{"facebook", "instagram"}, Budget: &budget,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, []string{"facebook", "instagram"}, created.Platforms)
	assert.Equal(t, &budget, created.Budget)
	assert.Equal(t, "0.0", created.ClickRate)

	impressions, clicks := int64(12500), int64(405)
	updated, err := repo.UpdateCampaign(ctx, created.ID, domain.CampaignPatch{
		Impressions: &impressions,
		Clicks:      &clicks,
		Budget:      domain.Null[int64](),
	})
	require.NoError(t, err)
	assert.Equal(t, "3.2", updated.ClickRate)
	assert.Nil(t, updated.Budget)
	assert.Equal(t, "Spring", updated.Name)

	got, err := repo.GetCampaign(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Impressions, got.Impressions)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	ok, err := repo.DeleteCampaign(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.GetCampaign(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = repo.DeleteCampaign(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCampaignTotalsQuery(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	totals, err := repo.CampaignTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignTotals{}, totals)

	for _, status := range []string{"active", "active", "paused"} {
		c, err := repo.CreateCampaign(ctx, domain.CampaignInput{
			Name: "c", Product: "p", Audience: "a", Goal: "g", Status: status, Platforms: []string{"facebook"},
		})
		require.NoError(t, err)
		impressions, clicks, spend := int64(1000), int64(10), int64(2500)
		_, err = repo.UpdateCampaign(ctx, c.ID, domain.CampaignPatch{Impressions: &impressions, Clicks: &clicks, Spend: &spend})
		require.NoError(t, err)
	}

	totals, err = repo.CampaignTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignTotals{Active: 2, Impressions: 3000, Clicks: 30, Spend: 7500}, totals)
}

func TestAdAndSocialAccountRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	campaignID := int64(7)
	ad, err := repo.CreateAd(ctx, domain.AdInput{
		CampaignID: &campaignID, Headline: "H", PrimaryText: "T", CallToAction: "Buy", Platform: "facebook",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Blob{}, ad.Performance)

	ads, err := repo.ListAdsByCampaign(ctx, campaignID)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, ad.ID, ads[0].ID)

	ad, err = repo.UpdateAd(ctx, ad.ID, domain.AdPatch{Performance: domain.Some(domain.Blob{"ctr": "2.1"})})
	require.NoError(t, err)
	assert.Equal(t, domain.Blob{"ctr": "2.1"}, ad.Performance)

	sa, err := repo.CreateSocialAccount(ctx, domain.SocialAccountInput{Platform: "twitter", Username: "@me"})
	require.NoError(t, err)
	assert.False(t, sa.IsConnected)
	assert.Nil(t, sa.AccessToken)

	sa, err = repo.UpdateSocialAccount(ctx, sa.ID, domain.SocialAccountPatch{AccessToken: domain.Some("secret")})
	require.NoError(t, err)
	require.NotNil(t, sa.AccessToken)
	assert.Equal(t, "secret", *sa.AccessToken)
	assert.Nil(t, sa.RefreshToken)

	missing, err := repo.UpdateSocialAccount(ctx, 999, domain.SocialAccountPatch{Username: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDuePostsAndPublishing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	now := time.Now().UTC().Truncate(time.Microsecond)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	for _, in := range []domain.PostInput{
		{Content: "due", ScheduledAt: &past, Status: "scheduled"},
		{Content: "later", ScheduledAt: &future, Status: "scheduled"},
		{Content: "draft", ScheduledAt: &past},
		{Content: "edited", ScheduledAt: &past, Status: "scheduled"},
	} {
		_, err := repo.CreatePost(ctx, in)
		require.NoError(t, err)
	}

	due, err := repo.ListDuePosts(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "due", due[0].Content)
	assert.Equal(t, "edited", due[1].Content)

	published, err := repo.MarkPostPublished(ctx, due[0].ID, now)
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, domain.PostPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.True(t, published.PublishedAt.Equal(now))

	// moved back to draft after the listing
	_, err = repo.UpdatePost(ctx, due[1].ID, domain.PostPatch{Status: strPtr("draft")})
	require.NoError(t, err)
	skipped, err := repo.MarkPostPublished(ctx, due[1].ID, now)
	require.NoError(t, err)
	assert.Nil(t, skipped)

	edited, err := repo.GetPost(ctx, due[1].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PostDraft, edited.Status)
	assert.Nil(t, edited.PublishedAt)

	due, err = repo.ListDuePosts(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, due)
}
