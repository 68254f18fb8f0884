// Package config provides configuration loading for the ghtree CLI.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variables read by the CLI
// (e.g. GHTREE_LOG_LEVEL).
const EnvPrefix = "GHTREE"

// Config holds defaults that would otherwise be passed as flags on every
// invocation.
type Config struct {
	// Endpoint is the GraphQL endpoint URL; empty selects the public
	// GitHub API
	Endpoint string `yaml:"endpoint,omitempty"`

	// Token is the bearer credential attached to every request
	Token string `yaml:"token,omitempty"`

	// Concurrency caps in-flight remote lookups; zero selects the
	// built-in default
	Concurrency int64 `yaml:"concurrency,omitempty"`
}

// Validate checks the configuration for values that can never work
func (c *Config) Validate() error {
	if c.Endpoint != "" {
		parsed, err := url.Parse(c.Endpoint)
		if err != nil {
			return fmt.Errorf("invalid endpoint URL: %w", err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("endpoint must use http or https, got %q", c.Endpoint)
		}
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}

	return nil
}

// Loader defines the interface for loading configuration
type Loader interface {
	Load(path string) (*Config, error)
}

// loader implements the Loader interface
type loader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &loader{}
}

// Load reads and parses configuration from a YAML file
func (*loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
