package adcopy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/config/configs"
	"campaign-desk/internal/core/domain"
)

var shoes = domain.AdCopyRequest{Product: "Running Shoes", Audience: "Marathoners", Goal: "Sales"}

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAI(configs.AI{APIKey: "test-key", BaseURL: srv.URL + "/", Timeout: 5 * time.Second})
}

func chatReply(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": content}}},
	})
	assert.NoError(t, err)
}

func TestOpenAIGenerateAdCopy(t *testing.T) {
	requests := make(chan openAIRequest, 1)
	client := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		var req openAIRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests <- req
		chatReply(t, w, `{"headline":"Run Further","primaryText":"Built for 42km.","callToAction":"Shop Now",
			"variations":{"headline":["Go Long"],"primaryText":["Light."],"callToAction":["Buy"]}}`)
	})

	ad, err := client.GenerateAdCopy(context.Background(), shoes)
	require.NoError(t, err)
	assert.Equal(t, "Run Further", ad.Headline)
	assert.Equal(t, "Shop Now", ad.CallToAction)
	assert.Equal(t, []string{"Go Long"}, ad.Variations.Headline)

	got := <-requests
	assert.Equal(t, defaultOpenAIModel, got.Model)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[1].Content, "Target Audience: Marathoners")
	assert.Contains(t, got.Messages[1].Content, "Platform: general social media")
	assert.Contains(t, got.Messages[1].Content, "Is optimized for sales")
}

func TestOpenAIFallbacks(t *testing.T) {
	client := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, `{"headline":"Only a headline"}`)
	})

	ad, err := client.GenerateAdCopy(context.Background(), shoes)
	require.NoError(t, err)
	assert.Equal(t, &domain.GeneratedAd{
		Headline:     "Only a headline",
		PrimaryText:  fallbackPrimaryText,
		CallToAction: fallbackCallToAction,
		Variations:   &domain.Variations{Headline: []string{}, PrimaryText: []string{}, CallToAction: []string{}},
	}, ad)
}

func TestOpenAIUpstreamError(t *testing.T) {
	client := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	})

	_, err := client.GenerateAdCopy(context.Background(), shoes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestOpenAIMissingKey(t *testing.T) {
	client := NewOpenAI(configs.AI{BaseURL: "http://127.0.0.1:0"})
	_, err := client.GenerateAdCopy(context.Background(), shoes)
	assert.ErrorIs(t, err, errMissingAPIKey)
}

func TestOpenAICampaignName(t *testing.T) {
	client := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, `{"name":"Stride Into Summer"}`)
	})
	name, err := client.GenerateCampaignName(context.Background(), "Running Shoes", "Sales")
	require.NoError(t, err)
	assert.Equal(t, "Stride Into Summer", name)

	empty := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, `{}`)
	})
	name, err = empty.GenerateCampaignName(context.Background(), "Running Shoes", "Sales")
	require.NoError(t, err)
	assert.Equal(t, fallbackCampaignName, name)
}

func TestParseAdCopyToleratesFencesAndEmptyAnswers(t *testing.T) {
	ad, err := parseAdCopy("```json\n{\"headline\":\"Fenced\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Fenced", ad.Headline)

	ad, err = parseAdCopy("")
	require.NoError(t, err)
	assert.Equal(t, fallbackHeadline, ad.Headline)

	_, err = parseAdCopy("not json")
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	ad, err := Demo{}.GenerateAdCopy(context.Background(), domain.AdCopyRequest{
		Product: "Fitness Equipment", Audience: "Young professionals", Goal: "Brand Awareness",
	})
	require.NoError(t, err)
	assert.Equal(t, "Transform Your Fitness Equipment Experience", ad.Headline)
	assert.Equal(t, "Discover our innovative Fitness Equipment designed specifically for Young professionals. "+
		"Perfect for achieving Brand Awareness with proven results.", ad.PrimaryText)
	assert.Equal(t, "Learn More", ad.CallToAction)
}

func TestNewSelectsProvider(t *testing.T) {
	ctx := context.Background()

	g, err := New(ctx, configs.AI{Provider: "Demo"})
	require.NoError(t, err)
	assert.IsType(t, Demo{}, g)

	g, err = New(ctx, configs.AI{Provider: "openai"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAI{}, g)

	_, err = New(ctx, configs.AI{Provider: "gemini"})
	assert.ErrorIs(t, err, errMissingAPIKey)

	_, err = New(ctx, configs.AI{Provider: "llama"})
	assert.Error(t, err)
}
