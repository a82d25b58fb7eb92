package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"campaign-desk/internal/core/domain"
)

const adColumns = `id, campaign_id, headline, primary_text, call_to_action, platform, status, performance, created_at`

func scanAd(row pgx.Row) (domain.Ad, error) {
	var a domain.Ad
	err := row.Scan(
		&a.ID,
		&a.CampaignID,
		&a.Headline,
		&a.PrimaryText,
		&a.CallToAction,
		&a.Platform,
		&a.Status,
		&a.Performance,
		&a.CreatedAt,
	)
	if a.Performance == nil {
		a.Performance = domain.Blob{}
	}
	return a, err
}

func (r *Repository) ListAds(ctx context.Context) ([]domain.Ad, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adColumns+` FROM ads ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	return collect(rows, scanAd)
}

func (r *Repository) ListAdsByCampaign(ctx context.Context, campaignID int64) ([]domain.Ad, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adColumns+` FROM ads WHERE campaign_id = $1 ORDER BY id`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list ads of campaign %d: %w", campaignID, err)
	}
	return collect(rows, scanAd)
}

func (r *Repository) GetAd(ctx context.Context, id int64) (*domain.Ad, error) {
	return one(r.pool.QueryRow(ctx, `SELECT `+adColumns+` FROM ads WHERE id = $1`, id), scanAd)
}

func (r *Repository) CreateAd(ctx context.Context, in domain.AdInput) (*domain.Ad, error) {
	a := in.NewAd(0, time.Now().UTC())
	row := r.pool.QueryRow(ctx, `
        INSERT INTO ads (campaign_id, headline, primary_text, call_to_action, platform, status, performance, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+adColumns,
		a.CampaignID, a.Headline, a.PrimaryText, a.CallToAction, a.Platform, string(a.Status), a.Performance, a.CreatedAt)
	created, err := scanAd(row)
	if err != nil {
		return nil, fmt.Errorf("insert ad: %w", err)
	}
	return &created, nil
}

func adUpdate(p domain.AdPatch) *update {
	u := &update{}
	if p.CampaignID.Set {
		u.set("campaign_id", p.CampaignID.Ptr())
	}
	if p.Headline != nil {
		u.set("headline", *p.Headline)
	}
	if p.PrimaryText != nil {
		u.set("primary_text", *p.PrimaryText)
	}
	if p.CallToAction != nil {
		u.set("call_to_action", *p.CallToAction)
	}
	if p.Platform != nil {
		u.set("platform", *p.Platform)
	}
	if p.Status != nil {
		u.set("status", *p.Status)
	}
	if p.Performance.Set {
		u.set("performance", p.Performance.Value.Clone())
	}
	return u
}

func (r *Repository) UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) (*domain.Ad, error) {
	if patch.Empty() {
		return r.GetAd(ctx, id)
	}
	u := adUpdate(patch)
	query, args := u.build("ads", id, adColumns)
	a, err := one(r.pool.QueryRow(ctx, query, args...), scanAd)
	if err != nil {
		return nil, fmt.Errorf("update ad %d: %w", id, err)
	}
	return a, nil
}

// DeleteAd removes an ad. Posts referencing it keep their ad id.
func (r *Repository) DeleteAd(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete ad %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
