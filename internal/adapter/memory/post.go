package memory

import (
	"context"
	"time"

	"campaign-desk/internal/core/domain"
)

func (r *Repository) ListPosts(_ context.Context) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.posts.list(nil)), nil
}

func (r *Repository) ListPostsByAd(_ context.Context, adID int64) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := r.posts.list(func(p domain.Post) bool {
		return p.AdID != nil && *p.AdID == adID
	})
	return cloneAll(posts), nil
}

func (r *Repository) GetPost(_ context.Context, id int64) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts.rows[id]
	if !ok {
		return nil, nil
	}
	p = p.Clone()
	return &p, nil
}

func (r *Repository) CreatePost(_ context.Context, in domain.PostInput) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := in.NewPost(r.posts.nextID(), r.stamp())
	r.posts.rows[p.ID] = p
	p = p.Clone()
	return &p, nil
}

func (r *Repository) UpdatePost(_ context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts.rows[id]
	if !ok {
		return nil, nil
	}
	p = p.Clone()
	patch.Apply(&p)
	r.posts.rows[id] = p
	p = p.Clone()
	return &p, nil
}

func (r *Repository) DeletePost(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.posts.delete(id), nil
}

func (r *Repository) ListDuePosts(_ context.Context, now time.Time) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	due := r.posts.list(func(p domain.Post) bool { return p.Due(now) })
	return cloneAll(due), nil
}

// MarkPostPublished publishes the post only if it is still due at at; a post
// changed or deleted since it was listed yields nil, nil.
func (r *Repository) MarkPostPublished(_ context.Context, id int64, at time.Time) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts.rows[id]
	if !ok || !p.Due(at) {
		return nil, nil
	}
	p = p.Clone()
	at = at.UTC()
	p.Status = domain.PostPublished
	p.PublishedAt = &at
	r.posts.rows[id] = p
	p = p.Clone()
	return &p, nil
}
