package app

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghtree/ghtree/internal/config"
	"github.com/ghtree/ghtree/pkg/fetcher"
	"github.com/ghtree/ghtree/pkg/github"
)

// runFetch resolves the requested subtree and materializes it under the
// destination directory. Flags take precedence over the config file, which
// takes precedence over environment defaults.
func runFetch(cmd *cobra.Command, args []string) error {
	owner, name := args[0], args[1]

	cfg := &config.Config{}
	if configPath := viper.GetString("config"); configPath != "" {
		loaded, err := config.NewLoader().Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		slog.Debug("Loaded configuration", "path", configPath)
	}

	endpoint := viper.GetString("endpoint")
	if endpoint == "" {
		endpoint = cfg.Endpoint
	}

	// Flag, then GITHUB_TOKEN env (bound in NewRootCmd), then config file
	token := viper.GetString("token")
	if token == "" {
		token = cfg.Token
	}

	concurrency := viper.GetInt64("concurrency")
	if concurrency == 0 {
		concurrency = cfg.Concurrency
	}

	rev := viper.GetString("rev")
	remotePath := viper.GetString("path")
	dest := viper.GetString("dest")

	client := github.NewDefaultClient(endpoint, token)
	f := fetcher.New(client, owner, name, fetcher.Options{
		Concurrency: concurrency,
		Logger:      slog.Default(),
	})

	slog.Info("Fetching subtree",
		"owner", owner,
		"name", name,
		"rev", rev,
		"path", remotePath,
		"dest", dest)

	if err := f.Run(cmd.Context(), rev, remotePath, dest); err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	slog.Info("Fetch complete", "dest", dest)
	return nil
}
