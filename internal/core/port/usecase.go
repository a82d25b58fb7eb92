package port

import (
	"context"
	"time"

	"campaign-desk/internal/core/domain"
)

// MarketingUseCase is the primary port used by the HTTP adapter. Create and
// Update validate their argument and return *domain.ValidationError when it
// is rejected. Lookups of unknown ids yield nil, nil; deletes report whether
// a record existed.
type MarketingUseCase interface {
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)

	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, in domain.CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) (bool, error)

	// ListAds returns every ad, or only the ads of campaignID when it is set.
	ListAds(ctx context.Context, campaignID *int64) ([]domain.Ad, error)
	GetAd(ctx context.Context, id int64) (*domain.Ad, error)
	CreateAd(ctx context.Context, in domain.AdInput) (*domain.Ad, error)
	UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) (*domain.Ad, error)
	DeleteAd(ctx context.Context, id int64) (bool, error)

	ListSocialAccounts(ctx context.Context) ([]domain.SocialAccount, error)
	GetSocialAccount(ctx context.Context, id int64) (*domain.SocialAccount, error)
	CreateSocialAccount(ctx context.Context, in domain.SocialAccountInput) (*domain.SocialAccount, error)
	UpdateSocialAccount(ctx context.Context, id int64, patch domain.SocialAccountPatch) (*domain.SocialAccount, error)
	DeleteSocialAccount(ctx context.Context, id int64) (bool, error)

	// ListPosts returns every post, or only the posts of adID when it is set.
	ListPosts(ctx context.Context, adID *int64) ([]domain.Post, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) (bool, error)

	// GenerateAdCopy validates req and forwards it to the generator. Any
	// generator failure is reported as domain.ErrGenerationFailed.
	GenerateAdCopy(ctx context.Context, req domain.AdCopyRequest) (*domain.GeneratedAd, error)
	// GenerateCampaignName never fails because of the generator; it falls
	// back to "<product> - <goal> Campaign".
	GenerateCampaignName(ctx context.Context, req domain.CampaignNameRequest) (string, error)

	// PublishDuePosts publishes every scheduled post due at now and returns
	// how many were published.
	PublishDuePosts(ctx context.Context, now time.Time) (int, error)
}
