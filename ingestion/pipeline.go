package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/compendium/core"
)

// Pipeline resolves raw entries concurrently on a worker pool.
type Pipeline struct {
	pool   *ants.Pool
	proc   processor
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent resolution.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new resolution pipeline.
func NewPipeline(resolver Resolver, opts ...Option) (*Pipeline, error) {
	if resolver == nil {
		return nil, ErrResolverRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		pool:   pool,
		proc:   processor{resolver: resolver},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Resolve merges every entry with its translations and returns the resolved
// entries in input order. Skipped and failed entries are absent from the
// result and recorded in the report. The call fails only when ctx is
// cancelled or the pool rejects work.
func (p *Pipeline) Resolve(ctx context.Context, entries []*core.RawEntry) ([]*core.ResolvedEntry, *Report, error) {
	if p.pool == nil || p.pool.IsClosed() {
		return nil, nil, ErrPipelineReleased
	}

	slots := make([]slot, len(entries))
	var wg sync.WaitGroup

	for i, raw := range entries {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			slots[i] = p.proc.process(ctx, raw)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, nil, fmt.Errorf("submitting entry %d: %w", i, err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	report := newReport(len(entries))
	resolved := make([]*core.ResolvedEntry, 0, len(entries))
	for i, s := range slots {
		report.record(entries[i], s)
		switch s.outcome {
		case outcomeResolved:
			resolved = append(resolved, s.entry)
		case outcomeStructural:
			p.logger.Warn("skipping structurally invalid entry", "position", i, "err", s.err)
		case outcomeFailed:
			p.logger.Error("error resolving entry", "id", idOf(entries[i]), "err", s.err)
		}
	}

	if n := len(report.TraditionUnset); n > 0 {
		p.logger.Warn("spells without a tradition path", "count", n)
	}
	p.logger.Info("resolution complete",
		"total", report.Total,
		"resolved", report.Resolved,
		"structural", report.StructuralSkips,
		"failed", len(report.SourceFailures))

	return resolved, report, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
