package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/config"
	"campaign-desk/internal/config/configs"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "campaign-desk", cmd.Use)
	assert.Contains(t, cmd.Long, "marketing dashboard")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"serve", "migrate", "seed"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestCommandFlags(t *testing.T) {
	cmd := NewRootCommand()

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	port := serve.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)

	migrate, _, err := cmd.Find([]string{"migrate"})
	require.NoError(t, err)
	assert.NotNil(t, migrate.Flags().Lookup("down"))

	seed, _, err := cmd.Find([]string{"seed"})
	require.NoError(t, err)
	assert.NotNil(t, seed.Flags().Lookup("demo"))
}

func TestSeedMemory(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("LOG_FORMAT", "json")

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"seed", "--demo"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"msg":"seed complete"`)
}

func TestSeedUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")

	cmd := NewRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"seed"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, `unknown storage driver "mongo"`)
}

// TestServeStopsWhenContextEnds runs the whole serve path with a context
// that is already cancelled, so the server shuts down as soon as it starts.
func TestServeStopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := &RootOptions{
		Config: config.Config{
			HTTP:      configs.HTTP{Port: 0},
			Storage:   configs.Storage{Driver: "memory", SeedDefaults: true},
			AI:        configs.AI{Provider: "demo"},
			Scheduler: configs.Scheduler{Enabled: true, Spec: "@every 1h"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	assert.NoError(t, runServe(ctx, opts))
}

func TestServeRejectsUnknownProvider(t *testing.T) {
	opts := &RootOptions{
		Config: config.Config{
			Storage: configs.Storage{Driver: "memory"},
			AI:      configs.AI{Provider: "llama"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	assert.ErrorContains(t, runServe(context.Background(), opts), "unknown ai provider")
}
