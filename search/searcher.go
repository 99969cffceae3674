package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/index"
	"github.com/poiesic/compendium/query"
)

// Searcher answers queries against the index published by a holder.
type Searcher struct {
	holder   *index.Holder
	parser   *query.Parser
	fallback bool
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithParser sets the query parser.
// Default is a parser over the default alias and tradition tables.
func WithParser(parser *query.Parser) Option {
	return func(s *Searcher) error {
		if parser == nil {
			return ErrParserRequired
		}
		s.parser = parser
		return nil
	}
}

// WithWordFallback enables or disables the word-by-word retry.
// Default is enabled.
func WithWordFallback(enabled bool) Option {
	return func(s *Searcher) error {
		s.fallback = enabled
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(holder *index.Holder, opts ...Option) (*Searcher, error) {
	if holder == nil {
		return nil, ErrHolderRequired
	}

	parser, err := query.NewParser()
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		holder:   holder,
		parser:   parser,
		fallback: true,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search parses raw and returns up to limit matching entries, best first.
// A limit below 1 returns every match.
func (s *Searcher) Search(ctx context.Context, raw string, limit int) ([]*core.ResolvedEntry, error) {
	return s.SearchWithMonitor(ctx, raw, limit, nil)
}

// SearchWithMonitor searches with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, raw string, limit int, monitor SearchMonitor) ([]*core.ResolvedEntry, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// One snapshot per call
	idx := s.holder.Load()
	if idx == nil {
		return nil, ErrNoIndex
	}

	monitor.Start(raw)

	q := s.parser.Parse(raw)
	monitor.AfterParse(q)
	if q.Tradition != nil && q.Tradition.Err != nil {
		s.logger.Debug("tradition filter matches nothing", "value", q.Tradition.Value, "err", q.Tradition.Err)
	}

	results := query.Execute(q, idx)
	monitor.AfterExecute(len(results))

	if len(results) == 0 && s.fallback && q.FreeText != nil {
		words := significantWords(*q.FreeText)
		if len(words) > 1 {
			joined := strings.Join(words, " ")
			q.FreeText, q.AllWords = &joined, true
			results = query.Execute(q, idx)
			monitor.AfterFallback(words, len(results))
		}
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	monitor.Finish(results)

	return results, nil
}

// Get returns the entry with the given id.
func (s *Searcher) Get(ctx context.Context, id string) (*core.ResolvedEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := s.holder.Load()
	if idx == nil {
		return nil, ErrNoIndex
	}
	e, ok := idx.Get(strings.TrimSpace(id))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e.ResolvedEntry, nil
}

// Parse exposes the searcher's parser for callers that display the
// interpreted query.
func (s *Searcher) Parse(raw string) query.Query {
	return s.parser.Parse(raw)
}
