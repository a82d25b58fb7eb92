package domain

import "time"

// AdStatus is the delivery state of an ad.
type AdStatus string

const (
	AdDraft  AdStatus = "draft"
	AdActive AdStatus = "active"
	AdPaused AdStatus = "paused"
)

// Known platforms. The set is open: any non-empty platform name is accepted.
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformLinkedIn  = "linkedin"
	PlatformTwitter   = "twitter"
)

// Ad is one piece of creative copy, optionally attached to a campaign.
type Ad struct {
	ID           int64     `json:"id"`
	CampaignID   *int64    `json:"campaignId"`
	Headline     string    `json:"headline"`
	PrimaryText  string    `json:"primaryText"`
	CallToAction string    `json:"callToAction"`
	Platform     string    `json:"platform"`
	Status       AdStatus  `json:"status"`
	Performance  Blob      `json:"performance"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdInput is the creation schema of an ad.
type AdInput struct {
	CampaignID   *int64 `json:"campaignId" validate:"omitempty,gt=0"`
	Headline     string `json:"headline" validate:"required"`
	PrimaryText  string `json:"primaryText" validate:"required"`
	CallToAction string `json:"callToAction" validate:"required"`
	Platform     string `json:"platform" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=draft active paused"`
}

// NewAd builds the record stored for in. Performance always starts empty.
func (in AdInput) NewAd(id int64, now time.Time) Ad {
	status := AdStatus(in.Status)
	if status == "" {
		status = AdDraft
	}
	a := Ad{
		ID:           id,
		Headline:     in.Headline,
		PrimaryText:  in.PrimaryText,
		CallToAction: in.CallToAction,
		Platform:     in.Platform,
		Status:       status,
		Performance:  Blob{},
		CreatedAt:    now,
		CampaignID:   copyPtr(in.CampaignID),
	}
	return a
}

// AdPatch lists the mutable fields of an ad.
type AdPatch struct {
	CampaignID   Nullable[int64] `json:"campaignId" validate:"-"`
	Headline     *string         `json:"headline" validate:"omitempty,min=1"`
	PrimaryText  *string         `json:"primaryText" validate:"omitempty,min=1"`
	CallToAction *string         `json:"callToAction" validate:"omitempty,min=1"`
	Platform     *string         `json:"platform" validate:"omitempty,min=1"`
	Status       *string         `json:"status" validate:"omitempty,oneof=draft active paused"`
	Performance  Nullable[Blob]  `json:"performance" validate:"-"`
}

// Apply merges the supplied fields over a. A null performance resets it to {}.
func (p AdPatch) Apply(a *Ad) {
	if p.CampaignID.Set {
		a.CampaignID = p.CampaignID.Ptr()
	}
	setIf(&a.Headline, p.Headline)
	setIf(&a.PrimaryText, p.PrimaryText)
	setIf(&a.CallToAction, p.CallToAction)
	setIf(&a.Platform, p.Platform)
	if p.Status != nil {
		a.Status = AdStatus(*p.Status)
	}
	if p.Performance.Set {
		a.Performance = p.Performance.Value.Clone()
	}
}

// Empty reports whether the patch carries no field at all.
func (p AdPatch) Empty() bool {
	return !p.CampaignID.Set && p.Headline == nil && p.PrimaryText == nil &&
		p.CallToAction == nil && p.Platform == nil && p.Status == nil && !p.Performance.Set
}

// Clone returns a copy of a that shares no memory with it.
func (a Ad) Clone() Ad {
	a.CampaignID = copyPtr(a.CampaignID)
	a.Performance = a.Performance.Clone()
	return a
}
