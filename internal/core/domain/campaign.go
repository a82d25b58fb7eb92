package domain

import (
	"slices"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Campaign represents a marketing effort and its aggregate counters.
// Budget and Spend are stored in minor currency units (cents).
type Campaign struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Product     string         `json:"product"`
	Audience    string         `json:"audience"`
	Goal        string         `json:"goal"`
	Status      CampaignStatus `json:"status"`
	Platforms   []string       `json:"platforms"`
	Budget      *int64         `json:"budget"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	ClickRate   string         `json:"clickRate"` // derived from Clicks and Impressions
	Spend       int64          `json:"spend"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// CampaignInput is the creation schema of a campaign. Counters, the click
// rate, the id and the creation time are never accepted from callers.
type CampaignInput struct {
	Name      string   `json:"name" validate:"required"`
	Product   string   `json:"product" validate:"required"`
	Audience  string   `json:"audience" validate:"required"`
	Goal      string   `json:"goal" validate:"required"`
	Status    string   `json:"status" validate:"omitempty,oneof=draft active paused completed"`
	Platforms []string `json:"platforms" validate:"required,min=1,dive,required"`
	Budget    *int64   `json:"budget" validate:"omitempty,gte=0"`
}

// NewCampaign builds the record stored for in, filling every omitted
// attribute with its default.
func (in CampaignInput) NewCampaign(id int64, now time.Time) Campaign {
	status := CampaignStatus(in.Status)
	if status == "" {
		status = CampaignDraft
	}
	c := Campaign{
		ID:        id,
		Name:      in.Name,
		Product:   in.Product,
		Audience:  in.Audience,
		Goal:      in.Goal,
		Status:    status,
		Platforms: slices.Clone(in.Platforms),
		CreatedAt: now,
	}
	if c.Platforms == nil {
		c.Platforms = []string{}
	}
	c.Budget = copyPtr(in.Budget)
	c.ClickRate = FormatRate(c.Clicks, c.Impressions)
	return c
}

// CampaignPatch lists the mutable fields of a campaign. Only fields present in
// the request body are applied.
type CampaignPatch struct {
	Name        *string         `json:"name" validate:"omitempty,min=1"`
	Product     *string         `json:"product" validate:"omitempty,min=1"`
	Audience    *string         `json:"audience" validate:"omitempty,min=1"`
	Goal        *string         `json:"goal" validate:"omitempty,min=1"`
	Status      *string         `json:"status" validate:"omitempty,oneof=draft active paused completed"`
	Platforms   *[]string       `json:"platforms" validate:"omitempty,min=1,dive,required"`
	Budget      Nullable[int64] `json:"budget" validate:"-"`
	Impressions *int64          `json:"impressions" validate:"omitempty,gte=0"`
	Clicks      *int64          `json:"clicks" validate:"omitempty,gte=0"`
	Spend       *int64          `json:"spend" validate:"omitempty,gte=0"`
}

// Apply merges the supplied fields over c and recomputes the click rate.
func (p CampaignPatch) Apply(c *Campaign) {
	setIf(&c.Name, p.Name)
	setIf(&c.Product, p.Product)
	setIf(&c.Audience, p.Audience)
	setIf(&c.Goal, p.Goal)
	if p.Status != nil {
		c.Status = CampaignStatus(*p.Status)
	}
	if p.Platforms != nil {
		c.Platforms = slices.Clone(*p.Platforms)
	}
	if p.Budget.Set {
		c.Budget = p.Budget.Ptr()
	}
	setIf(&c.Impressions, p.Impressions)
	setIf(&c.Clicks, p.Clicks)
	setIf(&c.Spend, p.Spend)
	c.ClickRate = FormatRate(c.Clicks, c.Impressions)
}

// Empty reports whether the patch carries no field at all.
func (p CampaignPatch) Empty() bool {
	return p.Name == nil && p.Product == nil && p.Audience == nil && p.Goal == nil &&
		p.Status == nil && p.Platforms == nil && !p.Budget.Set &&
		p.Impressions == nil && p.Clicks == nil && p.Spend == nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Clone returns a copy of c that shares no memory with it.
func (c Campaign) Clone() Campaign {
	c.Platforms = slices.Clone(c.Platforms)
	c.Budget = copyPtr(c.Budget)
	return c
}
