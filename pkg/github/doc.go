// Package github provides a minimal client for the GitHub GraphQL API,
// scoped to the object-graph lookups the fetcher needs.
//
// The package exposes two lookup shapes over a single query-style RPC:
//   - ResolveExpression: resolve a "rev:path" expression to the object at
//     that path for that revision (the start lookup)
//   - LookupObject: resolve a git object id produced by a previous tree
//     listing (the continue lookup)
//
// Both return an Object, a tagged union over the four kinds a repository
// object graph can yield (blob, tree, commit, tag). Blob text is nil when
// the payload is binary; tree entries carry the name and object id of each
// child.
//
// Authentication, when configured, is a bearer token attached to every
// request through an oauth2 transport. Transient transport failures
// (network errors, 5xx, 429) are retried with exponential backoff; all
// other failures are returned to the caller unchanged.
package github
