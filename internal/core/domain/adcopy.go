package domain

// AdCopyRequest is the brief handed to the ad-copy generator.
type AdCopyRequest struct {
	Product  string `json:"product" validate:"required"`
	Audience string `json:"audience" validate:"required"`
	Goal     string `json:"goal" validate:"required"`
	Platform string `json:"platform,omitempty"`
}

// GeneratedAd is the copy returned by the generator.
type GeneratedAd struct {
	Headline     string      `json:"headline"`
	PrimaryText  string      `json:"primaryText"`
	CallToAction string      `json:"callToAction"`
	Variations   *Variations `json:"variations,omitempty"`
}

// Variations are alternative texts for each part of a generated ad.
type Variations struct {
	Headline     []string `json:"headline"`
	PrimaryText  []string `json:"primaryText"`
	CallToAction []string `json:"callToAction"`
}

// CampaignNameRequest asks for a campaign name suggestion.
type CampaignNameRequest struct {
	Product string `json:"product" validate:"required"`
	Goal    string `json:"goal" validate:"required"`
}
