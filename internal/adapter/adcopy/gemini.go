package adcopy

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"campaign-desk/internal/config/configs"
	"campaign-desk/internal/core/domain"
)

const defaultGeminiModel = "gemini-2.0-flash"

// Gemini generates copy with Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini client. Unlike the OpenAI client it needs the
// key up front.
func NewGemini(ctx context.Context, cfg configs.AI) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w", errMissingAPIKey)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) GenerateAdCopy(ctx context.Context, req domain.AdCopyRequest) (*domain.GeneratedAd, error) {
	content, err := g.complete(ctx, adCopySystemPrompt, adCopyPrompt(req))
	if err != nil {
		return nil, err
	}
	return parseAdCopy(content)
}

func (g *Gemini) GenerateCampaignName(ctx context.Context, product, goal string) (string, error) {
	content, err := g.complete(ctx, campaignNameSystemPrompt, campaignNamePrompt(product, goal))
	if err != nil {
		return "", err
	}
	return parseCampaignName(content)
}

func (g *Gemini) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}
