package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := parse()
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.True(t, cfg.Storage.SeedDefaults)
	assert.False(t, cfg.Storage.SeedDemo)
	assert.Equal(t, "openai", cfg.AI.ProviderName())
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "@every 1m", cfg.Scheduler.Spec)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("AI_PROVIDER", " Gemini ")
	t.Setenv("SCHEDULER_ENABLED", "true")
	t.Setenv("HTTP_PORT", "5000")

	cfg, err := parse()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "gemini", cfg.AI.ProviderName())
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, uint16(5000), cfg.HTTP.Port)
}

func TestAPIKeyFallsBackToOpenAIVariable(t *testing.T) {
	t.Setenv("AI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-fallback")

	cfg, err := parse()
	require.NoError(t, err)
	assert.Equal(t, "sk-fallback", cfg.AI.APIKey)

	t.Setenv("AI_API_KEY", "sk-own")
	cfg, err = parse()
	require.NoError(t, err)
	assert.Equal(t, "sk-own", cfg.AI.APIKey)
}

func TestParseRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := parse()
	assert.Error(t, err)
}
