// Package adcopy implements port.AdCopyGenerator on top of hosted language
// models. Every provider asks for a JSON object and fills fields the model
// leaves out with fixed defaults.
package adcopy

import (
	"context"
	"fmt"

	"campaign-desk/internal/config/configs"
	"campaign-desk/internal/core/port"
)

var (
	_ port.AdCopyGenerator = (*OpenAI)(nil)
	_ port.AdCopyGenerator = (*Gemini)(nil)
	_ port.AdCopyGenerator = Demo{}
)

// New returns the generator selected by cfg.Provider.
func New(ctx context.Context, cfg configs.AI) (port.AdCopyGenerator, error) {
	switch cfg.ProviderName() {
	case "openai", "":
		return NewOpenAI(cfg), nil
	case "gemini":
		g, err := NewGemini(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "demo":
		return Demo{}, nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}
