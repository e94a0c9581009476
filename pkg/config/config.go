// Package config holds the tunable settings for the solver and its HTTP
// front end, loaded from YAML files with optional map-based overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/ESultanik/klondike/internal/logging"
)

// Config is the root settings document.
type Config struct {
	Search SearchConfig `yaml:"search" mapstructure:"search"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SearchConfig bounds a search session. Zero values mean unlimited.
type SearchConfig struct {
	// DepthLimit caps expansion by path cost; -1 disables the limit so
	// that an explicit limit of 0 remains expressible.
	DepthLimit int `yaml:"depth_limit" mapstructure:"depth_limit"`

	// NodeBudget caps expansions per solve call.
	NodeBudget int `yaml:"node_budget" mapstructure:"node_budget"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// SlogLevel resolves the configured level string.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	return logging.ParseLevel(l.Level)
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{DepthLimit: -1, NodeBudget: 0},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyOverrides decodes a loosely typed settings map over the config,
// as supplied by request payloads or flag layers.
func (c *Config) ApplyOverrides(overrides map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("build override decoder: %w", err)
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("apply overrides: %w", err)
	}
	return c.Validate()
}

// Validate checks cross-field consistency.
func (c Config) Validate() error {
	if c.Search.DepthLimit < -1 {
		return fmt.Errorf("search.depth_limit must be -1 (unlimited) or >= 0, got %d", c.Search.DepthLimit)
	}
	if c.Search.NodeBudget < 0 {
		return fmt.Errorf("search.node_budget must be >= 0, got %d", c.Search.NodeBudget)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
