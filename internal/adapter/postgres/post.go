package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"campaign-desk/internal/core/domain"
)

const postColumns = `id, ad_id, social_account_id, content, scheduled_at, published_at, status, engagement, created_at`

func scanPost(row pgx.Row) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID,
		&p.AdID,
		&p.SocialAccountID,
		&p.Content,
		&p.ScheduledAt,
		&p.PublishedAt,
		&p.Status,
		&p.Engagement,
		&p.CreatedAt,
	)
	if p.Engagement == nil {
		p.Engagement = domain.Blob{}
	}
	return p, err
}

func (r *Repository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return collect(rows, scanPost)
}

func (r *Repository) ListPostsByAd(ctx context.Context, adID int64) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+` FROM posts WHERE ad_id = $1 ORDER BY id`, adID)
	if err != nil {
		return nil, fmt.Errorf("list posts of ad %d: %w", adID, err)
	}
	return collect(rows, scanPost)
}

func (r *Repository) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return one(r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id), scanPost)
}

// CreatePost inserts a post. published_at is never taken from the input.
func (r *Repository) CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error) {
	p := in.NewPost(0, time.Now().UTC())
	row := r.pool.QueryRow(ctx, `
        INSERT INTO posts (ad_id, social_account_id, content, scheduled_at, status, engagement, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+postColumns,
		p.AdID, p.SocialAccountID, p.Content, p.ScheduledAt, string(p.Status), p.Engagement, p.CreatedAt)
	created, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return &created, nil
}

func postUpdate(p domain.PostPatch) *update {
	u := &update{}
	if p.AdID.Set {
		u.set("ad_id", p.AdID.Ptr())
	}
	if p.SocialAccountID.Set {
		u.set("social_account_id", p.SocialAccountID.Ptr())
	}
	if p.Content != nil {
		u.set("content", *p.Content)
	}
	if p.ScheduledAt.Set {
		u.set("scheduled_at", p.ScheduledAt.Ptr())
	}
	if p.Status != nil {
		u.set("status", *p.Status)
	}
	if p.Engagement.Set {
		u.set("engagement", p.Engagement.Value.Clone())
	}
	return u
}

func (r *Repository) UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	if patch.Empty() {
		return r.GetPost(ctx, id)
	}
	u := postUpdate(patch)
	query, args := u.build("posts", id, postColumns)
	p, err := one(r.pool.QueryRow(ctx, query, args...), scanPost)
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	return p, nil
}

func (r *Repository) DeletePost(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete post %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListDuePosts returns scheduled posts whose scheduled_at is not after now.
func (r *Repository) ListDuePosts(ctx context.Context, now time.Time) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+postColumns+`
        FROM posts
        WHERE status = 'scheduled' AND scheduled_at <= $1
        ORDER BY id`, now)
	if err != nil {
		return nil, fmt.Errorf("list due posts: %w", err)
	}
	return collect(rows, scanPost)
}

// publishPostQuery only matches a post that is still due, so a post moved
// back to draft or rescheduled after listing is left alone.
const publishPostQuery = `
        UPDATE posts SET status = 'published', published_at = $2
        WHERE id = $1 AND status = 'scheduled' AND scheduled_at <= $2
        RETURNING ` + postColumns

// MarkPostPublished flips a due post to published and stamps published_at.
// It returns nil, nil when the post is gone or no longer due.
func (r *Repository) MarkPostPublished(ctx context.Context, id int64, at time.Time) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, publishPostQuery, id, at.UTC())
	p, err := one(row, scanPost)
	if err != nil {
		return nil, fmt.Errorf("publish post %d: %w", id, err)
	}
	return p, nil
}
