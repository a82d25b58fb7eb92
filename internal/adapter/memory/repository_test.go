package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/core/domain"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newRepo() *Repository {
	return NewRepository(WithClock(func() time.Time { return fixedNow }))
}

func campaignInput(name string) domain.CampaignInput {
	return domain.CampaignInput{
		Name:      name,
		Product:   "Widget",
		Audience:  "A",
		Goal:      "Lead Generation",
		Platforms: []string{"facebook"},
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreateCampaignDefaults(t *testing.T) {
	repo := newRepo()
	c, err := repo.CreateCampaign(context.Background(), campaignInput("Test"))
	require.NoError(t, err)

	want := domain.Campaign{
		ID:        1,
		Name:      "Test",
		Product:   "Widget",
		Audience:  "A",
		Goal:      "Lead Generation",
		Status:    domain.CampaignDraft,
		Platforms: []string{"facebook"},
		ClickRate: "0.0",
		CreatedAt: fixedNow,
	}
	if diff := cmp.Diff(want, *c); diff != "" {
		t.Fatalf("created campaign mismatch (-want +got):\n%s", diff)
	}
}

func TestIDsNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	var last int64
	for i := 0; i < 3; i++ {
		c, err := repo.CreateCampaign(ctx, campaignInput("c"))
		require.NoError(t, err)
		assert.Greater(t, c.ID, last)
		last = c.ID
	}

	ok, err := repo.DeleteCampaign(ctx, last)
	require.NoError(t, err)
	require.True(t, ok)

	c, err := repo.CreateCampaign(ctx, campaignInput("after delete"))
	require.NoError(t, err)
	assert.Equal(t, last+1, c.ID)
}

func TestGetAfterCreateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	created, err := repo.CreateAd(ctx, domain.AdInput{
		CampaignID:   ptr(int64(7)),
		Headline:     "h",
		PrimaryText:  "p",
		CallToAction: "Buy",
		Platform:     domain.PlatformInstagram,
	})
	require.NoError(t, err)

	got, err := repo.GetAd(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	if diff := cmp.Diff(*created, *got); diff != "" {
		t.Fatalf("get after create (-created +got):\n%s", diff)
	}
	assert.Equal(t, domain.Blob{}, got.Performance)
	assert.Equal(t, domain.AdDraft, got.Status)

	ok, err := repo.DeleteAd(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.GetAd(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = repo.DeleteAd(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateChangesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	in := campaignInput("Test")
	in.Budget = ptr(int64(500000))
	before, err := repo.CreateCampaign(ctx, in)
	require.NoError(t, err)

	after, err := repo.UpdateCampaign(ctx, before.ID, domain.CampaignPatch{Status: ptr("active")})
	require.NoError(t, err)
	require.NotNil(t, after)

	want := *before
	want.Status = domain.CampaignActive
	if diff := cmp.Diff(want, *after); diff != "" {
		t.Fatalf("update mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateRecomputesClickRate(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	c, err := repo.CreateCampaign(ctx, campaignInput("Test"))
	require.NoError(t, err)

	c, err = repo.UpdateCampaign(ctx, c.ID, domain.CampaignPatch{
		Impressions: ptr(int64(12500)),
		Clicks:      ptr(int64(405)),
	})
	require.NoError(t, err)
	assert.Equal(t, "3.2", c.ClickRate)
}

func TestUpdateClearsNullableField(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	in := campaignInput("Test")
	in.Budget = ptr(int64(100))
	c, err := repo.CreateCampaign(ctx, in)
	require.NoError(t, err)

	c, err = repo.UpdateCampaign(ctx, c.ID, domain.CampaignPatch{Budget: domain.Null[int64]()})
	require.NoError(t, err)
	assert.Nil(t, c.Budget)
}

func TestUpdateMissingRecord(t *testing.T) {
	repo := newRepo()
	got, err := repo.UpdatePost(context.Background(), 42, domain.PostPatch{Content: ptr("x")})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecordsAreCopied(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	c, err := repo.CreateCampaign(ctx, campaignInput("Test"))
	require.NoError(t, err)
	c.Platforms[0] = "mutated"

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"facebook"}, got.Platforms)
}

func TestListAdsByCampaign(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	for _, cid := range []*int64{ptr(int64(1)), ptr(int64(2)), nil, ptr(int64(1))} {
		_, err := repo.CreateAd(ctx, domain.AdInput{
			CampaignID: cid, Headline: "h", PrimaryText: "p", CallToAction: "c", Platform: "facebook",
		})
		require.NoError(t, err)
	}

	ads, err := repo.ListAdsByCampaign(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, int64(1), ads[0].ID)
	assert.Equal(t, int64(4), ads[1].ID)

	all, err := repo.ListAds(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestDeletingCampaignLeavesAdsDangling(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	c, err := repo.CreateCampaign(ctx, campaignInput("Test"))
	require.NoError(t, err)
	_, err = repo.CreateAd(ctx, domain.AdInput{
		CampaignID: &c.ID, Headline: "h", PrimaryText: "p", CallToAction: "c", Platform: "facebook",
	})
	require.NoError(t, err)

	_, err = repo.DeleteCampaign(ctx, c.ID)
	require.NoError(t, err)

	ads, err := repo.ListAdsByCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, ads, 1)
}

func TestListPostsByAdAndDue(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	past := fixedNow.Add(-time.Hour)
	future := fixedNow.Add(time.Hour)
	inputs := []domain.PostInput{
		{AdID: ptr(int64(1)), Content: "due", ScheduledAt: &past, Status: "scheduled"},
		{AdID: ptr(int64(1)), Content: "later", ScheduledAt: &future, Status: "scheduled"},
		{AdID: ptr(int64(2)), Content: "draft", ScheduledAt: &past},
	}
	for _, in := range inputs {
		_, err := repo.CreatePost(ctx, in)
		require.NoError(t, err)
	}

	byAd, err := repo.ListPostsByAd(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byAd, 2)

	due, err := repo.ListDuePosts(ctx, fixedNow)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "due", due[0].Content)

	p, err := repo.MarkPostPublished(ctx, due[0].ID, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, domain.PostPublished, p.Status)
	require.NotNil(t, p.PublishedAt)
	assert.True(t, p.PublishedAt.Equal(fixedNow))

	due, err = repo.ListDuePosts(ctx, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestMarkPostPublishedSkipsPostNoLongerDue(t *testing.T) {
	ctx := context.Background()
	past := fixedNow.Add(-time.Hour)
	future := fixedNow.Add(time.Hour)

	tests := []struct {
		name  string
		patch domain.PostPatch
	}{
		{name: "back to draft", patch: domain.PostPatch{Status: ptr("draft")}},
		{name: "rescheduled later", patch: domain.PostPatch{ScheduledAt: domain.Some(future)}},
		{name: "schedule cleared", patch: domain.PostPatch{ScheduledAt: domain.Null[time.Time]()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			created, err := repo.CreatePost(ctx, domain.PostInput{Content: "due", ScheduledAt: &past, Status: "scheduled"})
			require.NoError(t, err)

			due, err := repo.ListDuePosts(ctx, fixedNow)
			require.NoError(t, err)
			require.Len(t, due, 1)

			_, err = repo.UpdatePost(ctx, created.ID, tt.patch)
			require.NoError(t, err)

			p, err := repo.MarkPostPublished(ctx, due[0].ID, fixedNow)
			require.NoError(t, err)
			assert.Nil(t, p)

			got, err := repo.GetPost(ctx, created.ID)
			require.NoError(t, err)
			assert.NotEqual(t, domain.PostPublished, got.Status)
			assert.Nil(t, got.PublishedAt)
		})
	}
}

func TestMarkPostPublishedMissing(t *testing.T) {
	p, err := newRepo().MarkPostPublished(context.Background(), 42, fixedNow)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCampaignTotals(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	totals, err := repo.CampaignTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignTotals{}, totals)

	active := campaignInput("a")
	active.Status = "active"
	c, err := repo.CreateCampaign(ctx, active)
	require.NoError(t, err)
	_, err = repo.UpdateCampaign(ctx, c.ID, domain.CampaignPatch{
		Impressions: ptr(int64(12500)), Clicks: ptr(int64(405)), Spend: ptr(int64(125000)),
	})
	require.NoError(t, err)
	_, err = repo.CreateCampaign(ctx, campaignInput("b"))
	require.NoError(t, err)

	totals, err = repo.CampaignTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignTotals{Active: 1, Impressions: 12500, Clicks: 405, Spend: 125000}, totals)
}

func TestSocialAccountTokens(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	sa, err := repo.CreateSocialAccount(ctx, domain.SocialAccountInput{Platform: "twitter", Username: "@x"})
	require.NoError(t, err)
	assert.False(t, sa.IsConnected)
	assert.Nil(t, sa.AccessToken)

	sa, err = repo.UpdateSocialAccount(ctx, sa.ID, domain.SocialAccountPatch{
		AccessToken: domain.Some("secret"),
		IsConnected: ptr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, sa.AccessToken)
	assert.Equal(t, "secret", *sa.AccessToken)
	assert.True(t, sa.IsConnected)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreatePost(ctx, domain.PostInput{Content: "x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	posts, err := repo.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, n)
	for i, p := range posts {
		assert.Equal(t, int64(i+1), p.ID)
	}
}
