package fetcher

import (
	"fmt"

	"github.com/ghtree/ghtree/pkg/github"
)

// UnsupportedKindError indicates a lookup resolved to a commit or tag
// object, which can never be part of a materialized subtree. Path is the
// local path of the offending entry, empty when the requested root itself
// resolved to an unsupported kind.
type UnsupportedKindError struct {
	Kind github.ObjectKind
	Path string
}

// Error returns the error message
func (e *UnsupportedKindError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("requested path resolved to a %s: only files and directories are supported", e.Kind)
	}
	return fmt.Sprintf("entry %s resolved to a %s: only files and directories are supported", e.Path, e.Kind)
}

// BinaryContentError indicates a file whose payload could not be obtained
// as text
type BinaryContentError struct {
	Path string
}

// Error returns the error message
func (e *BinaryContentError) Error() string {
	return fmt.Sprintf("binary content is not supported: %s", e.Path)
}

// PathConflictError indicates a local path required as a directory is
// already occupied by something else
type PathConflictError struct {
	Path string
}

// Error returns the error message
func (e *PathConflictError) Error() string {
	return fmt.Sprintf("path exists and is not a directory: %s", e.Path)
}
