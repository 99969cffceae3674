package storage

import (
	"context"

	"github.com/poiesic/compendium/core"
)

// EntryRepository persists resolved snapshots.
// Implementations must be thread-safe and support concurrent access.
// Readers always observe one complete generation.
type EntryRepository interface {
	// Begin starts staging a new generation.
	// The staged entries stay invisible until the writer commits.
	Begin(ctx context.Context) (GenerationWriter, error)

	// ReplaceAll stages entries in batches of batchSize and commits them
	// with meta. Returns the committed metadata.
	ReplaceAll(ctx context.Context, entries []*core.ResolvedEntry, meta *core.Metadata, batchSize int) (*core.Metadata, error)

	// Get retrieves a single entry of the current generation by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	Get(ctx context.Context, id string) (*core.ResolvedEntry, error)

	// ForEach calls fn with batches of up to batchSize entries of the
	// current generation, in corpus order. Iteration stops at the first
	// error fn returns.
	ForEach(ctx context.Context, batchSize int, fn func([]*core.ResolvedEntry) error) error

	// Metadata returns the current generation's metadata.
	// Returns ErrNoSnapshot if nothing was ever committed.
	Metadata(ctx context.Context) (*core.Metadata, error)

	// Close closes the storage backend and releases resources.
	Close() error
}

// GenerationWriter stages one generation.
type GenerationWriter interface {
	// Generation returns the number the staged generation will carry.
	Generation() uint64

	// Write appends entries after those already written.
	Write(ctx context.Context, entries []*core.ResolvedEntry) error

	// Commit publishes the staged generation with meta, then drops the
	// generation it replaces. Returns the committed metadata.
	Commit(ctx context.Context, meta *core.Metadata) (*core.Metadata, error)

	// Abort discards everything staged so far.
	Abort(ctx context.Context) error
}
