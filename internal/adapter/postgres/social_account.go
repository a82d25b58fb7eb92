package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"campaign-desk/internal/core/domain"
)

const socialAccountColumns = `id, platform, username, is_connected, access_token, refresh_token, created_at`

func scanSocialAccount(row pgx.Row) (domain.SocialAccount, error) {
	var sa domain.SocialAccount
	err := row.Scan(
		&sa.ID,
		&sa.Platform,
		&sa.Username,
		&sa.IsConnected,
		&sa.AccessToken,
		&sa.RefreshToken,
		&sa.CreatedAt,
	)
	return sa, err
}

func (r *Repository) ListSocialAccounts(ctx context.Context) ([]domain.SocialAccount, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+socialAccountColumns+` FROM social_accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list social accounts: %w", err)
	}
	return collect(rows, scanSocialAccount)
}

func (r *Repository) GetSocialAccount(ctx context.Context, id int64) (*domain.SocialAccount, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+socialAccountColumns+` FROM social_accounts WHERE id = $1`, id)
	return one(row, scanSocialAccount)
}

// CreateSocialAccount inserts an account. Tokens always start empty.
func (r *Repository) CreateSocialAccount(ctx context.Context, in domain.SocialAccountInput) (*domain.SocialAccount, error) {
	sa := in.NewSocialAccount(0, time.Now().UTC())
	row := r.pool.QueryRow(ctx, `
        INSERT INTO social_accounts (platform, username, is_connected, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING `+socialAccountColumns,
		sa.Platform, sa.Username, sa.IsConnected, sa.CreatedAt)
	created, err := scanSocialAccount(row)
	if err != nil {
		return nil, fmt.Errorf("insert social account: %w", err)
	}
	return &created, nil
}

func socialAccountUpdate(p domain.SocialAccountPatch) *update {
	u := &update{}
	if p.Platform != nil {
		u.set("platform", *p.Platform)
	}
	if p.Username != nil {
		u.set("username", *p.Username)
	}
	if p.IsConnected != nil {
		u.set("is_connected", *p.IsConnected)
	}
	if p.AccessToken.Set {
		u.set("access_token", p.AccessToken.Ptr())
	}
	if p.RefreshToken.Set {
		u.set("refresh_token", p.RefreshToken.Ptr())
	}
	return u
}

func (r *Repository) UpdateSocialAccount(ctx context.Context, id int64, patch domain.SocialAccountPatch) (*domain.SocialAccount, error) {
	if patch.Empty() {
		return r.GetSocialAccount(ctx, id)
	}
	u := socialAccountUpdate(patch)
	query, args := u.build("social_accounts", id, socialAccountColumns)
	sa, err := one(r.pool.QueryRow(ctx, query, args...), scanSocialAccount)
	if err != nil {
		return nil, fmt.Errorf("update social account %d: %w", id, err)
	}
	return sa, nil
}

func (r *Repository) DeleteSocialAccount(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM social_accounts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete social account %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
