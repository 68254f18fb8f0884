package github

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRepository indicates a well-formed reply whose repository field was
// null (unknown owner/name, or the token cannot see the repository).
var ErrNoRepository = errors.New("no repository in response")

// ErrNoObject indicates a well-formed reply whose object field was null
// (the path or revision does not exist, or the object id is unknown).
var ErrNoObject = errors.New("no object in response")

// HTTPError represents a non-success HTTP status from the endpoint
type HTTPError struct {
	StatusCode int
	URL        string
	Message    string
}

// Error returns the error message
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for URL %s: %s", e.StatusCode, e.URL, e.Message)
}

// QueryErrorDetail is a single error reported in a GraphQL response envelope
type QueryErrorDetail struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
}

// QueryError represents errors reported by the query engine itself in an
// otherwise successful HTTP exchange
type QueryError struct {
	Errors []QueryErrorDetail
}

// Error returns the error message
func (e *QueryError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, detail := range e.Errors {
		msgs = append(msgs, detail.Message)
	}
	return fmt.Sprintf("query failed: %s", strings.Join(msgs, "; "))
}
