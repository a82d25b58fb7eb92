package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"campaign-desk/internal/core/domain"
)

const campaignColumns = `id, name, product, audience, goal, status, platforms, budget, impressions, clicks, spend, created_at`

// scanCampaign reads one campaign row. The click rate is not stored; it is
// derived from the counters on every read.
func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Product,
		&c.Audience,
		&c.Goal,
		&c.Status,
		&c.Platforms,
		&c.Budget,
		&c.Impressions,
		&c.Clicks,
		&c.Spend,
		&c.CreatedAt,
	)
	if c.Platforms == nil {
		c.Platforms = []string{}
	}
	c.ClickRate = domain.FormatRate(c.Clicks, c.Impressions)
	return c, err
}

// ListCampaigns returns all campaigns ordered by id.
func (r *Repository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return collect(rows, scanCampaign)
}

// GetCampaign returns a campaign by id.
func (r *Repository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return one(row, scanCampaign)
}

// CreateCampaign inserts a campaign with its defaults applied.
func (r *Repository) CreateCampaign(ctx context.Context, in domain.CampaignInput) (*domain.Campaign, error) {
	c := in.NewCampaign(0, time.Now().UTC())
	row := r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (name, product, audience, goal, status, platforms, budget, impressions, clicks, spend, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+campaignColumns,
		c.Name, c.Product, c.Audience, c.Goal, string(c.Status), c.Platforms, c.Budget,
		c.Impressions, c.Clicks, c.Spend, c.CreatedAt)
	created, err := scanCampaign(row)
	if err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}
	return &created, nil
}

func campaignUpdate(p domain.CampaignPatch) *update {
	u := &update{}
	if p.Name != nil {
		u.set("name", *p.Name)
	}
	if p.Product != nil {
		u.set("product", *p.Product)
	}
	if p.Audience != nil {
		u.set("audience", *p.Audience)
	}
	if p.Goal != nil {
		u.set("goal", *p.Goal)
	}
	if p.Status != nil {
		u.set("status", *p.Status)
	}
	if p.Platforms != nil {
		u.set("platforms", *p.Platforms)
	}
	if p.Budget.Set {
		u.set("budget", p.Budget.Ptr())
	}
	if p.Impressions != nil {
		u.set("impressions", *p.Impressions)
	}
	if p.Clicks != nil {
		u.set("clicks", *p.Clicks)
	}
	if p.Spend != nil {
		u.set("spend", *p.Spend)
	}
	return u
}

// UpdateCampaign writes the supplied fields of patch in one statement.
func (r *Repository) UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	if patch.Empty() {
		return r.GetCampaign(ctx, id)
	}
	u := campaignUpdate(patch)
	query, args := u.build("campaigns", id, campaignColumns)
	c, err := one(r.pool.QueryRow(ctx, query, args...), scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("update campaign %d: %w", id, err)
	}
	return c, nil
}

// DeleteCampaign removes a campaign. Ads referencing it are left untouched.
func (r *Repository) DeleteCampaign(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete campaign %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// CampaignTotals aggregates all campaigns in one query.
func (r *Repository) CampaignTotals(ctx context.Context) (domain.CampaignTotals, error) {
	var t domain.CampaignTotals
	err := r.pool.QueryRow(ctx, `
        SELECT
            count(*) FILTER (WHERE status = 'active'),
            COALESCE(sum(impressions), 0)::bigint,
            COALESCE(sum(clicks), 0)::bigint,
            COALESCE(sum(spend), 0)::bigint
        FROM campaigns`).Scan(&t.Active, &t.Impressions, &t.Clicks, &t.Spend)
	if err != nil {
		return domain.CampaignTotals{}, fmt.Errorf("campaign totals: %w", err)
	}
	return t, nil
}
