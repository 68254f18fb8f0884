package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		yamlContent string
		wantConfig  *Config
		wantErr     bool
		errMsg      string
	}{
		{
			name: "full config",
			yamlContent: `endpoint: https://github.example.com/api/graphql
token: ghp_secret
concurrency: 8`,
			wantConfig: &Config{
				Endpoint:    "https://github.example.com/api/graphql",
				Token:       "ghp_secret",
				Concurrency: 8,
			},
		},
		{
			name:        "empty config uses defaults",
			yamlContent: `{}`,
			wantConfig:  &Config{},
		},
		{
			name:        "endpoint only",
			yamlContent: `endpoint: http://localhost:8080/graphql`,
			wantConfig:  &Config{Endpoint: "http://localhost:8080/graphql"},
		},
		{
			name:        "invalid yaml",
			yamlContent: `endpoint: [unclosed`,
			wantErr:     true,
			errMsg:      "failed to parse YAML config",
		},
		{
			name:        "endpoint with bad scheme",
			yamlContent: `endpoint: ftp://example.com/graphql`,
			wantErr:     true,
			errMsg:      "endpoint must use http or https",
		},
		{
			name:        "negative concurrency",
			yamlContent: `concurrency: -3`,
			wantErr:     true,
			errMsg:      "concurrency must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yamlContent), 0600))

			cfg, err := NewLoader().Load(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantConfig, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Endpoint: "https://api.github.com/graphql", Concurrency: 64}).Validate())
	assert.Error(t, (&Config{Concurrency: -1}).Validate())
	assert.Error(t, (&Config{Endpoint: "not a url at all\x7f"}).Validate())
}
