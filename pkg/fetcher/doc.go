// Package fetcher materializes a repository subtree onto local disk.
//
// A Fetcher resolves a (revision, path) pair to the root object of the
// requested subtree through a github.Client, then walks it top-down:
// files are written to disk, directories are created and their entries
// fetched concurrently, and commit or tag objects are rejected wherever
// they appear. The walk is fail-fast: the first error cancels the walk
// context and propagates to the caller, and files already written by
// sibling branches are left in place.
//
// Concurrency is bounded by a global semaphore sized by Options.Concurrency
// that is held only for the duration of a remote lookup, never across
// recursion, so arbitrarily deep trees cannot deadlock the walk. Sibling
// completion order carries no meaning: the set of paths produced by a
// successful walk depends only on the name chain from the root.
package fetcher
