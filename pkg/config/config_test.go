package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, -1, cfg.Search.DepthLimit)
	assert.Equal(t, 0, cfg.Search.NodeBudget)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
search:
  depth_limit: 12
  node_budget: 5000
server:
  addr: ":9090"
log:
  level: debug
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 12, cfg.Search.DepthLimit)
		assert.Equal(t, 5000, cfg.Search.NodeBudget)
		assert.Equal(t, ":9090", cfg.Server.Addr)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "search:\n  node_budget: 100\n")
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 100, cfg.Search.NodeBudget)
		assert.Equal(t, -1, cfg.Search.DepthLimit)
		assert.Equal(t, ":8080", cfg.Server.Addr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "search: [not a mapping\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "parse config")
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := writeConfig(t, "search:\n  depth_limit: -3\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "depth_limit")
	})
}

func TestApplyOverrides(t *testing.T) {
	t.Run("weakly typed values", func(t *testing.T) {
		cfg := Default()
		err := cfg.ApplyOverrides(map[string]any{
			"search": map[string]any{
				"depth_limit": "7",
				"node_budget": float64(250),
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.Search.DepthLimit)
		assert.Equal(t, 250, cfg.Search.NodeBudget)
		assert.Equal(t, ":8080", cfg.Server.Addr)
	})

	t.Run("validation still applies", func(t *testing.T) {
		cfg := Default()
		err := cfg.ApplyOverrides(map[string]any{
			"search": map[string]any{"node_budget": -1},
		})
		assert.ErrorContains(t, err, "node_budget")
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"depth limit below -1", func(c *Config) { c.Search.DepthLimit = -2 }, "depth_limit"},
		{"negative node budget", func(c *Config) { c.Search.NodeBudget = -1 }, "node_budget"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.wantErr)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	level, err := LogConfig{Level: "warn"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
