package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"golang.org/x/sync/semaphore"

	"github.com/ghtree/ghtree/pkg/github"
)

// DefaultConcurrency is the default cap on in-flight remote lookups
// across the whole walk.
const DefaultConcurrency = 32

// Options configures a Fetcher
type Options struct {
	// Concurrency caps the number of in-flight remote lookups across the
	// whole walk; zero or negative selects DefaultConcurrency
	Concurrency int64

	// Logger receives per-node progress; nil selects slog.Default()
	Logger *slog.Logger
}

// Fetcher materializes repository subtrees. It is read-only for the
// duration of a walk and safe for use by the concurrent branches it spawns.
type Fetcher struct {
	client github.Client
	owner  string
	name   string
	sem    *semaphore.Weighted
	logger *slog.Logger
}

// New creates a Fetcher for one repository
func New(client github.Client, owner, name string, opts Options) *Fetcher {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Fetcher{
		client: client,
		owner:  owner,
		name:   name,
		sem:    semaphore.NewWeighted(concurrency),
		logger: logger,
	}
}

// Run resolves rev:remotePath and materializes the resulting subtree under
// dest. dest always names a directory; when the remote path resolves to a
// single file it is written to dest joined with the file's name.
func (f *Fetcher) Run(ctx context.Context, rev, remotePath, dest string) error {
	normalized := NormalizePath(remotePath)
	expression := fmt.Sprintf("%s:%s", rev, normalized)

	root, err := f.client.ResolveExpression(ctx, f.owner, f.name, expression)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", expression, err)
	}

	switch root.Kind {
	case github.KindBlob:
		if root.Text == nil {
			return &BinaryContentError{Path: normalized}
		}
		name := path.Base(normalized)
		if name == "." || name == "/" {
			return fmt.Errorf("cannot determine a file name for path %q", remotePath)
		}
		target := filepath.Join(dest, name)
		f.logger.Info("resolved file", "path", target)
		return writeFile(target, *root.Text)
	case github.KindTree:
		f.logger.Info("resolved directory", "path", dest, "entries", len(root.Entries))
		return f.materialize(ctx, dest, root)
	default:
		return &UnsupportedKindError{Kind: root.Kind}
	}
}

// lookup resolves one object id, holding a semaphore slot for the duration
// of the remote call only.
func (f *Fetcher) lookup(ctx context.Context, oid string) (*github.Object, error) {
	if err := f.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer f.sem.Release(1)

	return f.client.LookupObject(ctx, f.owner, f.name, oid)
}
