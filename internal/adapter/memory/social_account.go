package memory

import (
	"context"

	"campaign-desk/internal/core/domain"
)

func (r *Repository) ListSocialAccounts(_ context.Context) ([]domain.SocialAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.accounts.list(nil)), nil
}

func (r *Repository) GetSocialAccount(_ context.Context, id int64) (*domain.SocialAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sa, ok := r.accounts.rows[id]
	if !ok {
		return nil, nil
	}
	sa = sa.Clone()
	return &sa, nil
}

func (r *Repository) CreateSocialAccount(_ context.Context, in domain.SocialAccountInput) (*domain.SocialAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sa := in.NewSocialAccount(r.accounts.nextID(), r.stamp())
	r.accounts.rows[sa.ID] = sa
	sa = sa.Clone()
	return &sa, nil
}

func (r *Repository) UpdateSocialAccount(_ context.Context, id int64, patch domain.SocialAccountPatch) (*domain.SocialAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sa, ok := r.accounts.rows[id]
	if !ok {
		return nil, nil
	}
	sa = sa.Clone()
	patch.Apply(&sa)
	r.accounts.rows[id] = sa
	sa = sa.Clone()
	return &sa, nil
}

func (r *Repository) DeleteSocialAccount(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accounts.delete(id), nil
}
