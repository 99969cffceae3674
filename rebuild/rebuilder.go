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


package rebuild

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/index"
	"github.com/poiesic/compendium/ingestion"
	"github.com/poiesic/compendium/source"
	"github.com/poiesic/compendium/storage"
)

// Config holds configuration for the rebuild operation.
type Config struct {
	// BatchSize is the number of entries persisted per write
	BatchSize int

	// ReportInterval is how often to report progress (number of entries)
	ReportInterval int

	// MaxRetries is the maximum number of attempts for each batch write
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      500,
		ReportInterval: 1000,
		MaxRetries:     3,
		RetryDelay:     100 * time.Millisecond,
	}
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	switch {
	case c.BatchSize < 1:
		return fmt.Errorf("%w: batch size must be positive", ErrInvalidConfig)
	case c.ReportInterval < 1:
		return fmt.Errorf("%w: report interval must be positive", ErrInvalidConfig)
	case c.MaxRetries < 1:
		return fmt.Errorf("%w: max retries must be positive", ErrInvalidConfig)
	case c.RetryDelay < 0:
		return fmt.Errorf("%w: retry delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Corpus enumerates the original-language entries.
type Corpus interface {
	Entries(ctx context.Context) ([]*core.RawEntry, *source.CorpusReport, error)
}

// Resolver merges raw entries with their translations.
type Resolver interface {
	Resolve(ctx context.Context, entries []*core.RawEntry) ([]*core.ResolvedEntry, *ingestion.Report, error)
}

// Summary describes one completed rebuild.
type Summary struct {
	Corpus     *source.CorpusReport
	Resolution *ingestion.Report
	Build      *index.BuildReport
	Metadata   *core.Metadata
	Persisted  bool
	Elapsed    time.Duration
}

// Rebuilder turns the sources into a published index and, when a
// repository is configured, a persisted snapshot. Only one rebuild runs at
// a time; searches keep using the previous index until the swap.
type Rebuilder struct {
	corpus   Corpus
	resolver Resolver
	holder   *index.Holder
	repo     storage.EntryRepository
	config   *Config
	progress io.Writer
	logger   *slog.Logger
	clock    func() time.Time

	mu sync.Mutex
}

// Option configures a Rebuilder.
type Option func(*Rebuilder) error

// WithRepository persists every rebuild to repo.
func WithRepository(repo storage.EntryRepository) Option {
	return func(r *Rebuilder) error {
		r.repo = repo
		return nil
	}
}

// WithConfig sets batch and retry settings.
// Default is DefaultConfig().
func WithConfig(config *Config) Option {
	return func(r *Rebuilder) error {
		if config == nil {
			config = DefaultConfig()
		}
		if err := config.Validate(); err != nil {
			return err
		}
		r.config = config
		return nil
	}
}

// WithProgress sets where progress lines are written.
// Default is io.Discard.
func WithProgress(w io.Writer) Option {
	return func(r *Rebuilder) error {
		if w == nil {
			w = io.Discard
		}
		r.progress = w
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Rebuilder) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithClock sets the time source stamped on snapshots.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Rebuilder) error {
		if now == nil {
			now = time.Now
		}
		r.clock = now
		return nil
	}
}

// NewRebuilder creates a new rebuilder.
// corpus may be nil for a rebuilder that only restores persisted snapshots.
func NewRebuilder(corpus Corpus, resolver Resolver, holder *index.Holder, opts ...Option) (*Rebuilder, error) {
	if holder == nil {
		return nil, ErrHolderRequired
	}

	r := &Rebuilder{
		corpus:   corpus,
		resolver: resolver,
		holder:   holder,
		config:   DefaultConfig(),
		progress: io.Discard,
		logger:   slog.Default(),
		clock:    time.Now,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Run executes a full rebuild: enumerate, resolve, index, persist, publish.
// The published index is untouched when any step fails.
func (r *Rebuilder) Run(ctx context.Context) (*Summary, error) {
	if r.corpus == nil || r.resolver == nil {
		return nil, ErrCorpusRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	summary := &Summary{}

	raw, corpusReport, err := r.corpus.Entries(ctx)
	summary.Corpus = corpusReport
	if err != nil {
		return summary, fmt.Errorf("reading corpus: %w", err)
	}
	fmt.Fprintf(r.progress, "Read %d source entries\n", len(raw))

	resolved, report, err := r.resolver.Resolve(ctx, raw)
	summary.Resolution = report
	if err != nil {
		return summary, fmt.Errorf("resolving entries: %w", err)
	}
	fmt.Fprintf(r.progress, "Resolved %s\n", report)

	idx, buildReport, err := index.Build(resolved,
		index.WithLogger(r.logger),
		index.WithClock(r.clock))
	if err != nil {
		return summary, fmt.Errorf("building index: %w", err)
	}
	summary.Build = buildReport

	entries := idx.Entries()
	summary.Metadata = core.NewMetadata(entries, idx.BuiltAt())

	if r.repo != nil {
		meta, err := r.persist(ctx, entries, summary.Metadata)
		if err != nil {
			return summary, fmt.Errorf("persisting snapshot: %w", err)
		}
		summary.Metadata = meta
		summary.Persisted = true
	}

	r.holder.Swap(idx)
	summary.Elapsed = time.Since(start)

	r.logger.Info("rebuild complete",
		"entries", idx.Len(),
		"duplicates", buildReport.Duplicates,
		"source_failures", len(report.SourceFailures),
		"structural_skips", report.StructuralSkips,
		"persisted", summary.Persisted,
		"elapsed", summary.Elapsed.Round(time.Millisecond))

	return summary, nil
}

// persist writes entries into a fresh generation and commits it.
func (r *Rebuilder) persist(ctx context.Context, entries []*core.ResolvedEntry, meta *core.Metadata) (*core.Metadata, error) {
	w, err := r.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}

	tracker := NewProgressTracker(r.progress, "Persisting", len(entries), r.config.ReportInterval)
	tracker.Start()

	bw := NewBatchWriter(w, r.config.BatchSize, r.config.MaxRetries, r.config.RetryDelay)
	if err := bw.WriteAll(ctx, entries, tracker.Increment); err != nil {
		// Abort with a fresh context so cancellation still cleans up.
		return nil, errors.Join(err, w.Abort(context.WithoutCancel(ctx)))
	}

	var committed *core.Metadata
	err = RetryWithBackoff(ctx, func() error {
		var err error
		committed, err = w.Commit(ctx, meta)
		if errors.Is(err, storage.ErrWriterFinished) {
			return Permanent(err)
		}
		return err
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return nil, errors.Join(err, w.Abort(context.WithoutCancel(ctx)))
	}
	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Persisted %d entries as generation %d in %v\n",
		len(entries), committed.Generation, elapsed.Round(time.Millisecond))

	return committed, nil
}

// Restore loads the persisted snapshot and publishes it without touching
// the sources. The rebuilt index must reproduce the committed checksum.
func (r *Rebuilder) Restore(ctx context.Context) (*core.Metadata, error) {
	if r.repo == nil {
		return nil, ErrNoRepository
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	meta, err := r.repo.Metadata(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*core.ResolvedEntry, 0, meta.Count)
	err = r.repo.ForEach(ctx, r.config.BatchSize, func(batch []*core.ResolvedEntry) error {
		entries = append(entries, batch...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	idx, _, err := index.Build(entries,
		index.WithLogger(r.logger),
		index.WithClock(func() time.Time { return meta.BuiltAt }))
	if err != nil {
		return nil, err
	}
	if idx.Checksum() != meta.Checksum {
		return nil, fmt.Errorf("%w: generation %d", ErrChecksumMismatch, meta.Generation)
	}

	r.holder.Swap(idx)
	r.logger.Info("snapshot restored", "generation", meta.Generation, "entries", idx.Len())
	return meta, nil
}
