package configs

import (
	"strings"
	"time"
)

// AI configures the ad-copy generator.
type AI struct {
	// Provider is one of "openai", "gemini" or "demo". The demo provider
	// returns canned copy and needs no key.
	Provider string `env:"PROVIDER" envDefault:"openai"`
	// APIKey authenticates against the provider. OPENAI_API_KEY is used
	// when it is empty.
	APIKey string `env:"API_KEY"`
	// Model overrides the provider's default model.
	Model string `env:"MODEL"`
	// BaseURL is the root of an OpenAI-compatible API.
	BaseURL string        `env:"BASE_URL" envDefault:"https://api.openai.com/v1"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// ProviderName returns the normalised provider name.
func (c AI) ProviderName() string {
	return strings.ToLower(strings.TrimSpace(c.Provider))
}
