package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNoToken is returned by Validate when no GitHub token is configured.
var ErrNoToken = errors.New("GITHUB_TOKEN is not set")

// Config holds application configuration.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// GitHub configuration
	GitHubURL        string `env:"GITHUB_URL" envDefault:"https://api.github.com/"`
	GitHubGraphQLURL string `env:"GITHUB_GRAPHQL_URL" envDefault:"https://api.github.com/graphql"`
	GitHubToken      string `env:"GITHUB_TOKEN"`

	HTTPTimeoutSeconds int `env:"HTTP_TIMEOUT_SECONDS" envDefault:"30"`

	// How often the dashboard reloads while a profile is still loading
	UIRefreshSeconds int `env:"UI_REFRESH_SECONDS" envDefault:"2"`
}

// Load loads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile loads configuration from environment variables after applying the dotenv file at path.
// Variables already set in the environment win over the file. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration can be used to fetch a profile.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if !c.HasGitHubConfig() {
		return ErrNoToken
	}
	return nil
}

// HasGitHubConfig returns true if a GitHub token is configured.
func (c *Config) HasGitHubConfig() bool {
	return c.GitHubToken != ""
}

// HTTPTimeout returns the per-request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
