// Package memory implements port.Repository on top of process memory. Records
// are lost on restart.
package memory

import (
	"maps"
	"slices"
	"sync"
	"time"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

var _ port.Repository = (*Repository)(nil)

// table holds the records of one entity type keyed by id. Ids come from a
// counter that only grows, so a record's id is also its insertion rank.
type table[T any] struct {
	next int64
	rows map[int64]T
}

func newTable[T any]() table[T] {
	return table[T]{next: 1, rows: make(map[int64]T)}
}

func (t *table[T]) nextID() int64 {
	id := t.next
	t.next++
	return id
}

// list returns the records in insertion order.
func (t *table[T]) list(keep func(T) bool) []T {
	out := make([]T, 0, len(t.rows))
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		if r := t.rows[id]; keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (t *table[T]) delete(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// Repository is the in-memory store. A single mutex serializes access to the
// maps; concurrent updates of one record still resolve as last writer wins.
// Records are copied on the way in and out, so callers never share memory
// with the store.
type Repository struct {
	mu        sync.Mutex
	now       func() time.Time
	campaigns table[domain.Campaign]
	ads       table[domain.Ad]
	accounts  table[domain.SocialAccount]
	posts     table[domain.Post]
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// NewRepository returns an empty store.
func NewRepository(opts ...Option) *Repository {
	r := &Repository{
		now:       time.Now,
		campaigns: newTable[domain.Campaign](),
		ads:       newTable[domain.Ad](),
		accounts:  newTable[domain.SocialAccount](),
		posts:     newTable[domain.Post](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) stamp() time.Time {
	return r.now().UTC()
}

func cloneAll[T interface{ Clone() T }](in []T) []T {
	for i := range in {
		in[i] = in[i].Clone()
	}
	return in
}
