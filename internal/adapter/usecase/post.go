package usecase

import (
	"context"

	"campaign-desk/internal/core/domain"
)

// ListPosts returns all posts, or the posts of one ad when adID is set.
func (u *UseCase) ListPosts(ctx context.Context, adID *int64) ([]domain.Post, error) {
	if adID != nil {
		return u.repo.ListPostsByAd(ctx, *adID)
	}
	return u.repo.ListPosts(ctx)
}

func (u *UseCase) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return u.repo.GetPost(ctx, id)
}

func (u *UseCase) CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error) {
	if err := u.check(entityPost, in); err != nil {
		return nil, err
	}
	return u.repo.CreatePost(ctx, in)
}

func (u *UseCase) UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	extra := append(nullableRef("adId", patch.AdID), nullableRef("socialAccountId", patch.SocialAccountID)...)
	if err := u.check(entityPost, patch, extra...); err != nil {
		return nil, err
	}
	return u.repo.UpdatePost(ctx, id, patch)
}

func (u *UseCase) DeletePost(ctx context.Context, id int64) (bool, error) {
	return u.repo.DeletePost(ctx, id)
}
