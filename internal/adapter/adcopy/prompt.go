package adcopy

import (
	"encoding/json"
	"fmt"
	"strings"

	"campaign-desk/internal/core/domain"
)

const (
	adCopySystemPrompt = "You are an expert copywriter and marketing specialist. " +
		"Generate high-converting ad copy that drives results. Always respond with valid JSON only."
	campaignNameSystemPrompt = "You are a marketing expert. Generate a short, catchy campaign name that " +
		"clearly identifies the product and goal. Respond with JSON containing a 'name' field."
)

// Values used when the model leaves a field out of its answer.
const (
	fallbackHeadline     = "Transform Your Business Today"
	fallbackPrimaryText  = "Discover the solution that leading businesses trust to achieve exceptional results."
	fallbackCallToAction = "Get Started"
	fallbackCampaignName = "Marketing Campaign"
)

func adCopyPrompt(req domain.AdCopyRequest) string {
	platform := req.Platform
	if platform == "" {
		platform = "general social media"
	}
	var b strings.Builder
	b.WriteString("Generate a high-converting advertisement copy for the following:\n\n")
	fmt.Fprintf(&b, "Product/Service: %s\n", req.Product)
	fmt.Fprintf(&b, "Target Audience: %s\n", req.Audience)
	fmt.Fprintf(&b, "Campaign Goal: %s\n", req.Goal)
	fmt.Fprintf(&b, "Platform: %s\n\n", platform)
	b.WriteString("Please create compelling ad copy that:\n")
	b.WriteString("1. Grabs attention with a strong headline\n")
	b.WriteString("2. Clearly communicates value proposition\n")
	b.WriteString("3. Speaks directly to the target audience\n")
	b.WriteString("4. Includes a compelling call-to-action\n")
	fmt.Fprintf(&b, "5. Is optimized for %s\n\n", strings.ToLower(req.Goal))
	b.WriteString(`Respond with JSON in this exact format:
{
  "headline": "main headline text",
  "primaryText": "main body text that explains the value and benefits",
  "callToAction": "action-oriented button text",
  "variations": {
    "headline": ["alternative headline 1", "alternative headline 2"],
    "primaryText": ["alternative body text 1", "alternative body text 2"],
    "callToAction": ["alternative CTA 1", "alternative CTA 2"]
  }
}`)
	return b.String()
}

func campaignNamePrompt(product, goal string) string {
	return fmt.Sprintf("Generate a campaign name for: Product: %s, Goal: %s", product, goal)
}

// parseAdCopy decodes the model's JSON answer. Missing fields take their
// fallback values; an empty answer is treated as an empty object.
func parseAdCopy(content string) (*domain.GeneratedAd, error) {
	var ad domain.GeneratedAd
	if err := decodeObject(content, &ad); err != nil {
		return nil, fmt.Errorf("decode ad copy: %w", err)
	}
	if ad.Headline == "" {
		ad.Headline = fallbackHeadline
	}
	if ad.PrimaryText == "" {
		ad.PrimaryText = fallbackPrimaryText
	}
	if ad.CallToAction == "" {
		ad.CallToAction = fallbackCallToAction
	}
	if ad.Variations == nil {
		ad.Variations = &domain.Variations{}
	}
	v := ad.Variations
	for _, s := range []*[]string{&v.Headline, &v.PrimaryText, &v.CallToAction} {
		if *s == nil {
			*s = []string{}
		}
	}
	return &ad, nil
}

func parseCampaignName(content string) (string, error) {
	var out struct {
		Name string `json:"name"`
	}
	if err := decodeObject(content, &out); err != nil {
		return "", fmt.Errorf("decode campaign name: %w", err)
	}
	if out.Name == "" {
		return fallbackCampaignName, nil
	}
	return out.Name, nil
}

// decodeObject unmarshals a JSON object, tolerating a Markdown code fence
// around it.
func decodeObject(content string, v any) error {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	if s == "" {
		s = "{}"
	}
	return json.Unmarshal([]byte(s), v)
}
