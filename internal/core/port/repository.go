package port

import (
	"context"
	"time"

	"campaign-desk/internal/core/domain"
)

// CampaignRepository persists campaigns. Get and Update return nil, nil when
// no campaign has the given id.
type CampaignRepository interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, in domain.CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) (bool, error)
	// CampaignTotals sums the counters of every campaign and counts the
	// active ones.
	CampaignTotals(ctx context.Context) (domain.CampaignTotals, error)
}

// AdRepository persists ads.
type AdRepository interface {
	ListAds(ctx context.Context) ([]domain.Ad, error)
	ListAdsByCampaign(ctx context.Context, campaignID int64) ([]domain.Ad, error)
	GetAd(ctx context.Context, id int64) (*domain.Ad, error)
	CreateAd(ctx context.Context, in domain.AdInput) (*domain.Ad, error)
	UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) (*domain.Ad, error)
	DeleteAd(ctx context.Context, id int64) (bool, error)
}

// SocialAccountRepository persists social accounts.
type SocialAccountRepository interface {
	ListSocialAccounts(ctx context.Context) ([]domain.SocialAccount, error)
	GetSocialAccount(ctx context.Context, id int64) (*domain.SocialAccount, error)
	CreateSocialAccount(ctx context.Context, in domain.SocialAccountInput) (*domain.SocialAccount, error)
	UpdateSocialAccount(ctx context.Context, id int64, patch domain.SocialAccountPatch) (*domain.SocialAccount, error)
	DeleteSocialAccount(ctx context.Context, id int64) (bool, error)
}

// PostRepository persists posts.
type PostRepository interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	ListPostsByAd(ctx context.Context, adID int64) ([]domain.Post, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) (bool, error)

	// ListDuePosts returns the scheduled posts whose time is not after now.
	ListDuePosts(ctx context.Context, now time.Time) ([]domain.Post, error)
	// MarkPostPublished moves a post to published and stamps publishedAt.
	// It is the only writer of publishedAt. A post that is missing or no
	// longer due at at is left untouched and yields nil, nil.
	MarkPostPublished(ctx context.Context, id int64, at time.Time) (*domain.Post, error)
}

// Repository is the outbound storage port. It is implemented by an in-memory
// store and by a PostgreSQL store; the rest of the application depends only on
// this interface. Every mutation touches a single record.
type Repository interface {
	CampaignRepository
	AdRepository
	SocialAccountRepository
	PostRepository
}
