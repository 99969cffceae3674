package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/compendium/core"
)

// Resolver produces resolved entries from raw entries.
// A Resolver holds no mutable state and is safe for concurrent use.
type Resolver struct {
	strategies []Strategy
	logger     *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver) error

// WithStrategies replaces the default tier order.
func WithStrategies(strategies ...Strategy) Option {
	return func(r *Resolver) error {
		if len(strategies) == 0 {
			return ErrNoStrategies
		}
		r.strategies = strategies
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewResolver creates a resolver over src using DefaultStrategies.
func NewResolver(src Source, opts ...Option) (*Resolver, error) {
	if src == nil {
		return nil, ErrSourceRequired
	}

	r := &Resolver{
		strategies: DefaultStrategies(src),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Resolve merges raw with its translations. Structurally invalid input
// fails with core.ErrStructural; a source failure fails with
// core.ErrSourceUnavailable.
func (r *Resolver) Resolve(ctx context.Context, raw *core.RawEntry) (*core.ResolvedEntry, error) {
	if err := core.ValidateRawEntry(raw); err != nil {
		return nil, err
	}

	name, nameTier, err := r.resolveField(ctx, raw, core.FieldName)
	if err != nil {
		return nil, err
	}
	description, descTier, err := r.resolveField(ctx, raw, core.FieldDescription)
	if err != nil {
		return nil, err
	}

	entry := &core.ResolvedEntry{
		ID:                  raw.ID,
		NameOriginal:        raw.NameOriginal,
		DescriptionLocal:    description,
		DescriptionOriginal: raw.DescriptionOriginal,
		Kind:                core.ClassifyKind(raw.Kind, raw.PackKey, raw.Fields),
		SourceType:          raw.Kind,
		PackKey:             raw.PackKey,
		Provenance: core.Provenance{
			Name:        nameTier,
			Description: descTier,
		},
	}
	entry.SetNameLocal(name)
	applyAttributes(entry, raw.Fields)

	if entry.TraditionUnset {
		r.logger.Debug("entry has no tradition path", "id", entry.ID, "kind", entry.Kind)
	}
	return entry, nil
}

// resolveField walks the strategies in order. Blank candidates fall through.
func (r *Resolver) resolveField(ctx context.Context, raw *core.RawEntry, field core.Field) (string, core.Tier, error) {
	for _, s := range r.strategies {
		text, ok, err := s.Lookup(ctx, raw, field)
		if err != nil {
			return "", core.TierOriginal, fmt.Errorf("resolving %s of %s from %s: %w", field, raw.ID, s.Tier(), err)
		}
		if ok && strings.TrimSpace(text) != "" {
			return text, s.Tier(), nil
		}
	}
	return "", core.TierOriginal, nil
}
