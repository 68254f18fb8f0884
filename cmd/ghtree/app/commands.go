// Package app provides the commands for the ghtree CLI.
package app

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghtree/ghtree/internal/versions"
	"github.com/ghtree/ghtree/pkg/github"
)

var rootCmd = &cobra.Command{
	Use:   "ghtree OWNER NAME",
	Short: "Materialize a GitHub repository subtree onto local disk",
	Long: `ghtree fetches a subtree of a GitHub repository through the GraphQL
object-graph API and writes it to a local directory, without cloning.

The subtree is identified by the repository owner and name, a revision
(branch, tag, or commit), and an in-repo path. Only text content is
supported; binary files abort the run.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runFetch,
}

// NewRootCmd returns the root command for the ghtree CLI.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.Flags().String("rev", "HEAD", "Revision to fetch (branch, tag, or commit)")
	rootCmd.Flags().String("path", "", "Path inside the repository (default: repository root)")
	rootCmd.Flags().String("dest", ".", "Local destination directory")
	rootCmd.Flags().String("endpoint", "", fmt.Sprintf("GraphQL endpoint URL (default %q)", github.DefaultEndpoint))
	rootCmd.Flags().String("token", "", "Bearer token for authentication (default: GITHUB_TOKEN env)")
	rootCmd.Flags().Int64("concurrency", 0, "Cap on in-flight remote lookups (0 = default)")
	rootCmd.Flags().String("config", "", "Path to configuration file (YAML format)")

	for _, flag := range []string{"rev", "path", "dest", "endpoint", "token", "concurrency", "config"} {
		if err := viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
		}
	}
	if err := viper.BindEnv("token", "GITHUB_TOKEN"); err != nil {
		slog.Error("Error binding token env", "error", err)
	}

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := versions.GetVersionInfo()
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			slog.Error("Error retrieving format flag", "error", err)
			return
		}

		if format == "json" {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				slog.Error("Error formatting version info as JSON", "error", err)
				return
			}
			fmt.Println(string(output))
		} else {
			slog.Info("ghtree version",
				"version", info.Version,
				"commit", info.Commit,
				"built", info.BuildDate,
				"go", info.GoVersion,
				"platform", info.Platform)
		}
	},
}

func init() {
	versionCmd.Flags().String("format", "", "Output format (json)")
}
