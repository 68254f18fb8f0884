package fetcher

import (
	"path"
	"strings"
)

// NormalizePath turns a user-supplied remote path into a path expression
// relative to the repository root. Absolute-style paths have their leading
// root component stripped rather than being rejected; redundant separators
// and "." segments are cleaned. The repository root is the empty string.
func NormalizePath(remotePath string) string {
	if remotePath == "" {
		return ""
	}

	cleaned := path.Clean(remotePath)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "." {
		return ""
	}
	return cleaned
}
