// Package config resolves runtime settings from environment variables
// and defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultConcurrency is the fetch fan-out limit; 0 means unbounded.
const DefaultConcurrency = 0

// DefaultOutput is the output format used when none is requested.
const DefaultOutput = "json"

// Config holds the resolved settings for one invocation.
type Config struct {
	// Token authenticates GitHub API requests. May be empty here; the
	// command rejects an empty token, not the loader.
	Token       string
	Concurrency int
	Output      string
}

// Load resolves settings from the environment, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("concurrency", DefaultConcurrency)
	v.SetDefault("output", DefaultOutput)

	if err := v.BindEnv("token", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind token environment variable: %w", err)
	}
	if err := v.BindEnv("concurrency", "ORG_CONTRIBUTORS_CONCURRENCY"); err != nil {
		return nil, fmt.Errorf("failed to bind concurrency environment variable: %w", err)
	}
	if err := v.BindEnv("output", "ORG_CONTRIBUTORS_OUTPUT"); err != nil {
		return nil, fmt.Errorf("failed to bind output environment variable: %w", err)
	}

	cfg := &Config{
		Token:       v.GetString("token"),
		Concurrency: v.GetInt("concurrency"),
		Output:      v.GetString("output"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that no command could act on.
func (c *Config) Validate() error {
	switch c.Output {
	case "json", "table":
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be json or table", c.Output)
	}
}
