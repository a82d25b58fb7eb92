package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/adapter/memory"
	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port/mocks"
)

func ptr[T any](v T) *T { return &v }

func validCampaign() domain.CampaignInput {
	return domain.CampaignInput{
		Name:      "Test",
		Product:   "Widget",
		Audience:  "A",
		Goal:      "Lead Generation",
		Platforms: []string{"facebook"},
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

// TestCreateCampaignDelegates ensures a valid input reaches the repository once.
func TestCreateCampaignDelegates(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	in := validCampaign()
	stored := in.NewCampaign(1, time.Now())

	repo.EXPECT().
		CreateCampaign(mock.Anything, in).
		Return(&stored, nil)

	svc := New(repo, mocks.NewMockAdCopyGenerator(t), nil)
	got, err := svc.CreateCampaign(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, domain.CampaignDraft, got.Status)
}

// TestCreateCampaignValidation covers the creation schema. The repository
// mock has no expectations, so any call to it fails the test.
func TestCreateCampaignValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CampaignInput)
		fields []string
	}{
		{"missing name", func(in *domain.CampaignInput) { in.Name = "" }, []string{"name"}},
		{"no platforms", func(in *domain.CampaignInput) { in.Platforms = nil }, []string{"platforms"}},
		{"empty platforms", func(in *domain.CampaignInput) { in.Platforms = []string{} }, []string{"platforms"}},
		{"blank platform", func(in *domain.CampaignInput) { in.Platforms = []string{"facebook", ""} }, []string{"platforms[1]"}},
		{"unknown status", func(in *domain.CampaignInput) { in.Status = "archived" }, []string{"status"}},
		{"negative budget", func(in *domain.CampaignInput) { in.Budget = ptr(int64(-1)) }, []string{"budget"}},
		{"several", func(in *domain.CampaignInput) { in.Goal, in.Audience = "", "" }, []string{"audience", "goal"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(mocks.NewMockRepository(t), mocks.NewMockAdCopyGenerator(t), nil)
			in := validCampaign()
			tt.mutate(&in)

			_, err := svc.CreateCampaign(context.Background(), in)
			assert.Equal(t, tt.fields, fieldNames(t, err))
		})
	}
}

func TestCreateCampaignAcceptsZeroBudget(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	in := validCampaign()
	in.Budget = ptr(int64(0))
	stored := in.NewCampaign(1, time.Now())
	repo.EXPECT().CreateCampaign(mock.Anything, in).Return(&stored, nil)

	svc := New(repo, mocks.NewMockAdCopyGenerator(t), nil)
	_, err := svc.CreateCampaign(context.Background(), in)
	require.NoError(t, err)
}

func TestUpdateValidation(t *testing.T) {
	ctx := context.Background()
	svc := New(mocks.NewMockRepository(t), mocks.NewMockAdCopyGenerator(t), nil)

	_, err := svc.UpdateCampaign(ctx, 1, domain.CampaignPatch{Status: ptr("")})
	assert.Equal(t, []string{"status"}, fieldNames(t, err))

	_, err = svc.UpdateCampaign(ctx, 1, domain.CampaignPatch{Name: ptr("")})
	assert.Equal(t, []string{"name"}, fieldNames(t, err))

	_, err = svc.UpdateCampaign(ctx, 1, domain.CampaignPatch{Clicks: ptr(int64(-5))})
	assert.Equal(t, []string{"clicks"}, fieldNames(t, err))

	_, err = svc.UpdateCampaign(ctx, 1, domain.CampaignPatch{Platforms: &[]string{}})
	assert.Equal(t, []string{"platforms"}, fieldNames(t, err))

	_, err = svc.UpdateCampaign(ctx, 1, domain.CampaignPatch{Budget: domain.Some(int64(-1))})
	assert.Equal(t, []string{"budget"}, fieldNames(t, err))

	_, err = svc.UpdateAd(ctx, 1, domain.AdPatch{CampaignID: domain.Some(int64(0))})
	assert.Equal(t, []string{"campaignId"}, fieldNames(t, err))

	_, err = svc.UpdatePost(ctx, 1, domain.PostPatch{Status: ptr("sent"), SocialAccountID: domain.Some(int64(-2))})
	assert.Equal(t, []string{"status", "socialAccountId"}, fieldNames(t, err))
}

func TestUpdatePassesNullsThrough(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	patch := domain.AdPatch{CampaignID: domain.Null[int64]()}
	repo.EXPECT().UpdateAd(mock.Anything, int64(3), patch).Return(nil, nil)

	svc := New(repo, mocks.NewMockAdCopyGenerator(t), nil)
	got, err := svc.UpdateAd(context.Background(), 3, patch)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().ListAdsByCampaign(mock.Anything, int64(4)).Return([]domain.Ad{{ID: 9}}, nil)
	repo.EXPECT().ListAds(mock.Anything).Return([]domain.Ad{{ID: 9}, {ID: 10}}, nil)
	repo.EXPECT().ListPostsByAd(mock.Anything, int64(9)).Return([]domain.Post{}, nil)

	svc := New(repo, mocks.NewMockAdCopyGenerator(t), nil)

	ads, err := svc.ListAds(ctx, ptr(int64(4)))
	require.NoError(t, err)
	assert.Len(t, ads, 1)

	ads, err = svc.ListAds(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, ads, 2)

	posts, err := svc.ListPosts(ctx, ptr(int64(9)))
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestDashboardStats(t *testing.T) {
	tests := []struct {
		name   string
		totals domain.CampaignTotals
		want   domain.DashboardStats
	}{
		{
			name:   "no campaigns",
			totals: domain.CampaignTotals{},
			want:   domain.DashboardStats{ActiveCampaigns: 0, TotalImpressions: "0", ClickRate: "0.0%", AdSpend: "$0"},
		},
		{
			name:   "demo campaign",
			totals: domain.CampaignTotals{Active: 1, Impressions: 12500, Clicks: 405, Spend: 125000},
			want:   domain.DashboardStats{ActiveCampaigns: 1, TotalImpressions: "12.5K", ClickRate: "3.2%", AdSpend: "$1,250"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockRepository(t)
			repo.EXPECT().CampaignTotals(mock.Anything).Return(tt.totals, nil)

			svc := New(repo, mocks.NewMockAdCopyGenerator(t), nil)
			got, err := svc.DashboardStats(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDashboardStatsError(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().CampaignTotals(mock.Anything).Return(domain.CampaignTotals{}, errors.New("db down"))

	svc := New(repo, mocks.NewMockAdCopyGenerator(t), nil)
	_, err := svc.DashboardStats(context.Background())
	assert.Error(t, err)
}

func TestGenerateAdCopy(t *testing.T) {
	ctx := context.Background()
	req := domain.AdCopyRequest{Product: "Shoes", Audience: "Runners", Goal: "Sales"}

	t.Run("success", func(t *testing.T) {
		gen := mocks.NewMockAdCopyGenerator(t)
		want := &domain.GeneratedAd{Headline: "h", PrimaryText: "p", CallToAction: "Buy"}
		gen.EXPECT().GenerateAdCopy(mock.Anything, req).Return(want, nil).Once()

		got, err := New(mocks.NewMockRepository(t), gen, nil).GenerateAdCopy(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("upstream failure is not retried", func(t *testing.T) {
		gen := mocks.NewMockAdCopyGenerator(t)
		gen.EXPECT().GenerateAdCopy(mock.Anything, req).Return(nil, errors.New("invalid api key")).Once()

		_, err := New(mocks.NewMockRepository(t), gen, nil).GenerateAdCopy(ctx, req)
		assert.ErrorIs(t, err, domain.ErrGenerationFailed)
		assert.NotContains(t, err.Error(), "api key")
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := New(mocks.NewMockRepository(t), mocks.NewMockAdCopyGenerator(t), nil)
		_, err := svc.GenerateAdCopy(ctx, domain.AdCopyRequest{Product: "Shoes"})
		assert.Equal(t, []string{"audience", "goal"}, fieldNames(t, err))
	})
}

func TestGenerateCampaignNameFallback(t *testing.T) {
	gen := mocks.NewMockAdCopyGenerator(t)
	gen.EXPECT().GenerateCampaignName(mock.Anything, "Shoes", "Sales").Return("", errors.New("timeout"))

	name, err := New(mocks.NewMockRepository(t), gen, nil).
		GenerateCampaignName(context.Background(), domain.CampaignNameRequest{Product: "Shoes", Goal: "Sales"})
	require.NoError(t, err)
	assert.Equal(t, "Shoes - Sales Campaign", name)
}

func TestPublishDuePosts(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().ListDuePosts(mock.Anything, now).Return([]domain.Post{{ID: 1}, {ID: 2}}, nil)
	repo.EXPECT().MarkPostPublished(mock.Anything, int64(1), now).Return(&domain.Post{ID: 1, Status: domain.PostPublished}, nil)
	// post 2 was deleted after being listed
	repo.EXPECT().MarkPostPublished(mock.Anything, int64(2), now).Return(nil, nil)

	n, err := New(repo, mocks.NewMockAdCopyGenerator(t), nil).PublishDuePosts(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPublishDuePostsStopsOnError(t *testing.T) {
	now := time.Now()
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().ListDuePosts(mock.Anything, now).Return([]domain.Post{{ID: 1}, {ID: 2}}, nil)
	repo.EXPECT().MarkPostPublished(mock.Anything, int64(1), now).Return(nil, errors.New("conn reset"))

	n, err := New(repo, mocks.NewMockAdCopyGenerator(t), nil).PublishDuePosts(context.Background(), now)
	assert.Error(t, err)
	assert.Equal(t, 0, n)
}

// editAfterListing applies patch to every listed post right after the listing,
// like an operator editing a post while the sweep is running.
type editAfterListing struct {
	*memory.Repository
	patch domain.PostPatch
}

func (r editAfterListing) ListDuePosts(ctx context.Context, now time.Time) ([]domain.Post, error) {
	due, err := r.Repository.ListDuePosts(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, p := range due {
		if _, err := r.UpdatePost(ctx, p.ID, r.patch); err != nil {
			return nil, err
		}
	}
	return due, nil
}

func TestPublishDuePostsLeavesEditedPostAlone(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)

	store := memory.NewRepository()
	created, err := store.CreatePost(ctx, domain.PostInput{Content: "hello", ScheduledAt: &past, Status: "scheduled"})
	require.NoError(t, err)

	repo := editAfterListing{Repository: store, patch: domain.PostPatch{Status: ptr("draft")}}
	n, err := New(repo, mocks.NewMockAdCopyGenerator(t), nil).PublishDuePosts(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	got, err := store.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PostDraft, got.Status)
	assert.Nil(t, got.PublishedAt)
}
