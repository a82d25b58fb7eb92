package usecase

import (
	"context"

	"campaign-desk/internal/core/domain"
)

func (u *UseCase) ListSocialAccounts(ctx context.Context) ([]domain.SocialAccount, error) {
	return u.repo.ListSocialAccounts(ctx)
}

func (u *UseCase) GetSocialAccount(ctx context.Context, id int64) (*domain.SocialAccount, error) {
	return u.repo.GetSocialAccount(ctx, id)
}

func (u *UseCase) CreateSocialAccount(ctx context.Context, in domain.SocialAccountInput) (*domain.SocialAccount, error) {
	if err := u.check(entitySocialAccount, in); err != nil {
		return nil, err
	}
	return u.repo.CreateSocialAccount(ctx, in)
}

// UpdateSocialAccount is also the only way to set or clear the account tokens.
func (u *UseCase) UpdateSocialAccount(ctx context.Context, id int64, patch domain.SocialAccountPatch) (*domain.SocialAccount, error) {
	if err := u.check(entitySocialAccount, patch); err != nil {
		return nil, err
	}
	return u.repo.UpdateSocialAccount(ctx, id, patch)
}

func (u *UseCase) DeleteSocialAccount(ctx context.Context, id int64) (bool, error) {
	return u.repo.DeleteSocialAccount(ctx, id)
}
