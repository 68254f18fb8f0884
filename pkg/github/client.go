package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v5"
	"golang.org/x/oauth2"
)

const (
	// DefaultEndpoint is the public GitHub GraphQL endpoint
	DefaultEndpoint = "https://api.github.com/graphql"

	defaultTimeout  = 30 * time.Second
	defaultMaxTries = 4
)

// startQuery resolves a "rev:path" expression to the object at that path.
const startQuery = `query Start($owner: String!, $name: String!, $expression: String!) {
  repository(owner: $owner, name: $name) {
    object(expression: $expression) {
      __typename
      ... on Blob { text isBinary }
      ... on Tree { entries { name oid } }
    }
  }
}`

// continueQuery resolves an object id obtained from a tree listing.
const continueQuery = `query Continue($owner: String!, $name: String!, $oid: GitObjectID!) {
  repository(owner: $owner, name: $name) {
    object(oid: $oid) {
      __typename
      ... on Blob { text isBinary }
      ... on Tree { entries { name oid } }
    }
  }
}`

// Client is the interface for object-graph lookups against a repository host
type Client interface {
	// ResolveExpression resolves a revision-and-path expression such as
	// "HEAD:src/lib" to the object at that location
	ResolveExpression(ctx context.Context, owner, name, expression string) (*Object, error)

	// LookupObject resolves an object id returned by a previous tree listing
	LookupObject(ctx context.Context, owner, name, oid string) (*Object, error)
}

// DefaultClient is the default implementation of Client, talking to a
// GitHub-compatible GraphQL endpoint over HTTP
type DefaultClient struct {
	endpoint   string
	httpClient *http.Client
	maxTries   uint
}

// NewDefaultClient creates a new GraphQL client for the given endpoint.
// An empty endpoint selects the public GitHub API. An empty token sends
// unauthenticated requests; otherwise the token is attached as a bearer
// credential to every request.
func NewDefaultClient(endpoint, token string) *DefaultClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	httpClient := &http.Client{}
	if token != "" {
		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), source)
	}
	httpClient.Timeout = defaultTimeout

	return &DefaultClient{
		endpoint:   endpoint,
		httpClient: httpClient,
		maxTries:   defaultMaxTries,
	}
}

// graphQLRequest is the wire format for a query POST
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphQLResponse is the response envelope
type graphQLResponse struct {
	Data   *responseData      `json:"data"`
	Errors []QueryErrorDetail `json:"errors"`
}

type responseData struct {
	Repository *repositoryData `json:"repository"`
}

type repositoryData struct {
	Object *objectData `json:"object"`
}

type objectData struct {
	Typename string      `json:"__typename"`
	Text     *string     `json:"text"`
	IsBinary bool        `json:"isBinary"`
	Entries  []TreeEntry `json:"entries"`
}

// ResolveExpression resolves a revision-and-path expression to an object
func (c *DefaultClient) ResolveExpression(ctx context.Context, owner, name, expression string) (*Object, error) {
	return c.query(ctx, startQuery, map[string]any{
		"owner":      owner,
		"name":       name,
		"expression": expression,
	})
}

// LookupObject resolves an object id to an object
func (c *DefaultClient) LookupObject(ctx context.Context, owner, name, oid string) (*Object, error) {
	return c.query(ctx, continueQuery, map[string]any{
		"owner": owner,
		"name":  name,
		"oid":   oid,
	})
}

// query POSTs one GraphQL document and classifies the response
func (c *DefaultClient) query(ctx context.Context, document string, variables map[string]any) (*Object, error) {
	body, err := json.Marshal(graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	respBody, err := c.post(ctx, body)
	if err != nil {
		return nil, err
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return nil, &QueryError{Errors: envelope.Errors}
	}

	if envelope.Data == nil || envelope.Data.Repository == nil {
		return nil, ErrNoRepository
	}
	if envelope.Data.Repository.Object == nil {
		return nil, ErrNoObject
	}

	return classifyObject(envelope.Data.Repository.Object)
}

// post sends the request body, retrying transient transport failures with
// exponential backoff. Non-transient failures are permanent.
func (c *DefaultClient) post(ctx context.Context, body []byte) ([]byte, error) {
	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Network-level errors are worth retrying
			return nil, fmt.Errorf("POST %s: %w", c.endpoint, err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			httpErr := &HTTPError{
				StatusCode: resp.StatusCode,
				URL:        c.endpoint,
				Message:    http.StatusText(resp.StatusCode),
			}
			if resp.StatusCode >= http.StatusInternalServerError ||
				resp.StatusCode == http.StatusTooManyRequests {
				return nil, httpErr
			}
			return nil, backoff.Permanent(httpErr)
		}

		return respBody, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(c.maxTries))
}

// classifyObject maps a decoded response object onto the tagged union
func classifyObject(obj *objectData) (*Object, error) {
	switch obj.Typename {
	case "Blob":
		text := obj.Text
		if obj.IsBinary {
			text = nil
		}
		return &Object{Kind: KindBlob, Text: text}, nil
	case "Tree":
		return &Object{Kind: KindTree, Entries: obj.Entries}, nil
	case "Commit":
		return &Object{Kind: KindCommit}, nil
	case "Tag":
		return &Object{Kind: KindTag}, nil
	default:
		return nil, fmt.Errorf("unexpected object type %q in response", obj.Typename)
	}
}
