// Package versions provides build version information for the CLI.
package versions

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version information set at build time via ldflags
var (
	// Version is the release version
	Version = "dev"

	// Commit is the git commit the binary was built from
	Commit = ""

	// BuildDate is the date the binary was built
	BuildDate = ""
)

// VersionInfo contains version information about the binary
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersionInfo returns the version information for the binary, falling
// back to module build info when ldflags were not set.
func GetVersionInfo() VersionInfo {
	commit := Commit
	if commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					commit = setting.Value
					break
				}
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}

	buildDate := BuildDate
	if buildDate == "" {
		buildDate = "unknown"
	}

	return VersionInfo{
		Version:   Version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
