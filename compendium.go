// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compendium

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/index"
	"github.com/poiesic/compendium/ingestion"
	"github.com/poiesic/compendium/rebuild"
	"github.com/poiesic/compendium/search"
	"github.com/poiesic/compendium/source"
	"github.com/poiesic/compendium/storage"
	"github.com/poiesic/compendium/storage/badger"
	"github.com/poiesic/compendium/translation"
)

// Compendium ties the persisted snapshot, the published index and the
// searcher together.
type Compendium struct {
	backend  *badger.Backend
	repo     *badger.EntryRepository
	holder   *index.Holder
	searcher *search.Searcher
	options  *options
	logger   *slog.Logger

	rebuildMu sync.Mutex
}

// Option configures a Compendium.
type Option func(*options)

type options struct {
	layout      source.Layout
	inMemory    bool
	rebuild     *rebuild.Config
	workers     int
	cacheSize   int64
	progress    io.Writer
	logger      *slog.Logger
	searchOpts  []search.Option
	skipRestore bool
}

// WithSources sets the checkouts a rebuild reads.
func WithSources(layout source.Layout) Option {
	return func(o *options) {
		o.layout = layout
	}
}

// WithInMemory keeps the snapshot in memory; the data directory is ignored.
func WithInMemory() Option {
	return func(o *options) {
		o.inMemory = true
	}
}

// WithRebuildConfig sets batching and retry for rebuilds.
func WithRebuildConfig(cfg *rebuild.Config) Option {
	return func(o *options) {
		o.rebuild = cfg
	}
}

// WithWorkers sets the resolution pool size. 0 picks from the CPU count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCacheSize bounds the translation documents kept in memory during a rebuild.
func WithCacheSize(n int64) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithProgress sets where rebuild progress is written.
func WithProgress(w io.Writer) Option {
	return func(o *options) {
		o.progress = w
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSearchOptions passes options through to the searcher.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *options) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}

// WithoutRestore skips loading the persisted snapshot on Open.
func WithoutRestore() Option {
	return func(o *options) {
		o.skipRestore = true
	}
}

// Open opens the snapshot store in dataDir and publishes the last persisted
// snapshot, if any. A compendium without a snapshot answers searches with
// search.ErrNoIndex until Rebuild succeeds.
func Open(ctx context.Context, dataDir string, opts ...Option) (*Compendium, error) {
	// Apply options
	o := &options{
		rebuild: rebuild.DefaultConfig(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.rebuild == nil {
		o.rebuild = rebuild.DefaultConfig()
	}
	if err := o.rebuild.Validate(); err != nil {
		return nil, err
	}

	// Open backend
	backend, err := badger.OpenBackend(dataDir, o.inMemory, badger.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewEntryRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	holder := index.NewHolder(nil)
	searchOpts := append([]search.Option{search.WithLogger(o.logger)}, o.searchOpts...)
	searcher, err := search.NewSearcher(holder, searchOpts...)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	c := &Compendium{
		backend:  backend,
		repo:     repo,
		holder:   holder,
		searcher: searcher,
		options:  o,
		logger:   o.logger,
	}

	if !o.skipRestore {
		if err := c.restore(ctx); err != nil {
			c.Close()
			return nil, err
		}
	}
	return c, nil
}

func (c *Compendium) restore(ctx context.Context) error {
	r, err := rebuild.NewRebuilder(nil, nil, c.holder,
		rebuild.WithRepository(c.repo),
		rebuild.WithConfig(c.options.rebuild),
		rebuild.WithLogger(c.logger))
	if err != nil {
		return err
	}

	_, err = r.Restore(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNoSnapshot):
		c.logger.Info("no persisted snapshot, rebuild required")
		return nil
	case errors.Is(err, rebuild.ErrChecksumMismatch), errors.Is(err, storage.ErrSerializationFailed):
		// A damaged snapshot is replaced by the next rebuild.
		c.logger.Warn("persisted snapshot unusable, rebuild required", "err", err)
		return nil
	}
	return fmt.Errorf("restoring snapshot: %w", err)
}

// Close releases the snapshot store.
func (c *Compendium) Close() error {
	if err := c.repo.Close(); err != nil {
		c.logger.Error("error closing entry repository", "err", err)
		return err
	}

	// Close backend
	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Ready reports whether an index is published.
func (c *Compendium) Ready() bool {
	return c.holder.Load() != nil
}

// Rebuild reads the sources, resolves translations, persists a new snapshot
// and publishes it. Searches keep using the previous index until it is
// replaced.
func (c *Compendium) Rebuild(ctx context.Context) (*rebuild.Summary, error) {
	c.rebuildMu.Lock()
	defer c.rebuildMu.Unlock()

	sourceOpts := []source.Option{source.WithLogger(c.logger)}
	if c.options.cacheSize > 0 {
		sourceOpts = append(sourceOpts, source.WithCacheSize(c.options.cacheSize))
	}
	sources, err := source.Open(ctx, c.options.layout, sourceOpts...)
	if err != nil {
		return nil, err
	}
	defer sources.Close()

	resolver, err := translation.NewResolver(sources.Translations, translation.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}

	pipelineOpts := []ingestion.Option{ingestion.WithLogger(c.logger)}
	if c.options.workers > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(c.options.workers))
	}
	pipeline, err := ingestion.NewPipeline(resolver, pipelineOpts...)
	if err != nil {
		return nil, err
	}
	defer pipeline.Release()

	r, err := rebuild.NewRebuilder(sources.Corpus, pipeline, c.holder,
		rebuild.WithRepository(c.repo),
		rebuild.WithConfig(c.options.rebuild),
		rebuild.WithProgress(c.options.progress),
		rebuild.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}
	return r.Run(ctx)
}

// Search returns up to limit entries matching raw, best first.
func (c *Compendium) Search(ctx context.Context, raw string, limit int) ([]*core.ResolvedEntry, error) {
	return c.searcher.Search(ctx, raw, limit)
}

// Get returns one entry by id.
func (c *Compendium) Get(ctx context.Context, id string) (*core.ResolvedEntry, error) {
	return c.searcher.Get(ctx, id)
}

// Searcher exposes the searcher for callers that need monitoring or the
// parsed query.
func (c *Compendium) Searcher() *search.Searcher {
	return c.searcher
}

// Index returns the published index, or nil before the first rebuild.
func (c *Compendium) Index() *index.Index {
	return c.holder.Load()
}

// Stats summarizes the published index.
type Stats struct {
	*core.Metadata
	Packs     []string
	Traits    []string
	Persisted bool
}

// Stats describes the published index and whether it matches the persisted
// snapshot.
func (c *Compendium) Stats(ctx context.Context) (*Stats, error) {
	idx := c.holder.Load()
	if idx == nil {
		return nil, search.ErrNoIndex
	}

	stats := &Stats{
		Metadata: core.NewMetadata(idx.Entries(), idx.BuiltAt()),
		Packs:    idx.Packs(),
		Traits:   idx.Traits(),
	}

	persisted, err := c.repo.Metadata(ctx)
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
	case err != nil:
		return nil, err
	case persisted.Checksum == idx.Checksum():
		stats.Generation = persisted.Generation
		stats.Persisted = true
	}
	return stats, nil
}
