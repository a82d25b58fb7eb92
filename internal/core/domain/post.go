package domain

import "time"

// PostStatus is the publishing state of a post.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
	PostFailed    PostStatus = "failed"
)

// Post ties an ad to a social account at a point in time. PublishedAt is set
// by the system only.
type Post struct {
	ID              int64      `json:"id"`
	AdID            *int64     `json:"adId"`
	SocialAccountID *int64     `json:"socialAccountId"`
	Content         string     `json:"content"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	PublishedAt     *time.Time `json:"publishedAt"`
	Status          PostStatus `json:"status"`
	Engagement      Blob       `json:"engagement"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// Due reports whether p is scheduled and its time has come.
func (p Post) Due(now time.Time) bool {
	return p.Status == PostScheduled && p.ScheduledAt != nil && !p.ScheduledAt.After(now)
}

// PostInput is the creation schema of a post.
type PostInput struct {
	AdID            *int64     `json:"adId" validate:"omitempty,gt=0"`
	SocialAccountID *int64     `json:"socialAccountId" validate:"omitempty,gt=0"`
	Content         string     `json:"content" validate:"required"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	Status          string     `json:"status" validate:"omitempty,oneof=draft scheduled published failed"`
}

func (in PostInput) NewPost(id int64, now time.Time) Post {
	status := PostStatus(in.Status)
	if status == "" {
		status = PostDraft
	}
	p := Post{
		ID:              id,
		AdID:            copyPtr(in.AdID),
		SocialAccountID: copyPtr(in.SocialAccountID),
		Content:         in.Content,
		ScheduledAt:     copyPtr(in.ScheduledAt),
		Status:          status,
		Engagement:      Blob{},
		CreatedAt:       now,
	}
	return p
}

// PostPatch lists the mutable fields of a post. publishedAt is not one of them.
type PostPatch struct {
	AdID            Nullable[int64]     `json:"adId" validate:"-"`
	SocialAccountID Nullable[int64]     `json:"socialAccountId" validate:"-"`
	Content         *string             `json:"content" validate:"omitempty,min=1"`
	ScheduledAt     Nullable[time.Time] `json:"scheduledAt" validate:"-"`
	Status          *string             `json:"status" validate:"omitempty,oneof=draft scheduled published failed"`
	Engagement      Nullable[Blob]      `json:"engagement" validate:"-"`
}

func (p PostPatch) Apply(post *Post) {
	if p.AdID.Set {
		post.AdID = p.AdID.Ptr()
	}
	if p.SocialAccountID.Set {
		post.SocialAccountID = p.SocialAccountID.Ptr()
	}
	setIf(&post.Content, p.Content)
	if p.ScheduledAt.Set {
		post.ScheduledAt = p.ScheduledAt.Ptr()
	}
	if p.Status != nil {
		post.Status = PostStatus(*p.Status)
	}
	if p.Engagement.Set {
		post.Engagement = p.Engagement.Value.Clone()
	}
}

// Empty reports whether the patch carries no field at all.
func (p PostPatch) Empty() bool {
	return !p.AdID.Set && !p.SocialAccountID.Set && p.Content == nil &&
		!p.ScheduledAt.Set && p.Status == nil && !p.Engagement.Set
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Clone returns a copy of p that shares no memory with it.
func (p Post) Clone() Post {
	p.AdID = copyPtr(p.AdID)
	p.SocialAccountID = copyPtr(p.SocialAccountID)
	p.ScheduledAt = copyPtr(p.ScheduledAt)
	p.PublishedAt = copyPtr(p.PublishedAt)
	p.Engagement = p.Engagement.Clone()
	return p
}
