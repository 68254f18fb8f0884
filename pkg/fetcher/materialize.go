package fetcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/ghtree/ghtree/pkg/github"
)

// materialize writes a tree object under dir, fetching all entries
// concurrently and recursing into subtrees. The first failing entry
// cancels the group context; entries already written stay on disk.
func (f *Fetcher) materialize(ctx context.Context, dir string, tree *github.Object) error {
	if err := ensureDir(dir); err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, entry := range tree.Entries {
		group.Go(func() error {
			child, err := f.lookup(ctx, entry.OID)
			if err != nil {
				return fmt.Errorf("failed to look up %q: %w", entry.Name, err)
			}

			target := filepath.Join(dir, entry.Name)
			switch child.Kind {
			case github.KindBlob:
				if child.Text == nil {
					return &BinaryContentError{Path: target}
				}
				f.logger.Info("writing file", "path", target)
				return writeFile(target, *child.Text)
			case github.KindTree:
				f.logger.Info("entering directory", "path", target, "entries", len(child.Entries))
				return f.materialize(ctx, target, child)
			default:
				return &UnsupportedKindError{Kind: child.Kind, Path: target}
			}
		})
	}

	return group.Wait()
}

// ensureDir creates dir if needed. It is tolerant of the directory already
// existing (concurrent siblings share ancestors) but not of a non-directory
// occupying the path.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return &PathConflictError{Path: dir}
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// writeFile writes content to target, creating parent directories and
// replacing any existing file.
func writeFile(target, content string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
