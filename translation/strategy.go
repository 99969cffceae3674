package translation

import (
	"context"

	"github.com/poiesic/compendium/core"
)

// Source exposes the two translation tiers. A missing key is a miss
// ("", false, nil), never an error; a read failure wraps
// core.ErrSourceUnavailable.
type Source interface {
	LookupTier1(ctx context.Context, id, packKey string, field core.Field) (string, bool, error)
	LookupTier2(ctx context.Context, id string, field core.Field) (string, bool, error)
}

// Strategy supplies a candidate text for one field of an entry.
type Strategy interface {
	Tier() core.Tier
	Lookup(ctx context.Context, raw *core.RawEntry, field core.Field) (string, bool, error)
}

// Tier1Strategy looks up the translation document keyed by id and pack.
type Tier1Strategy struct {
	Source Source
}

func (Tier1Strategy) Tier() core.Tier { return core.TierDocument }

func (s Tier1Strategy) Lookup(ctx context.Context, raw *core.RawEntry, field core.Field) (string, bool, error) {
	return s.Source.LookupTier1(ctx, raw.ID, raw.PackKey, field)
}

// Tier2Strategy looks up the language table entry keyed by id.
type Tier2Strategy struct {
	Source Source
}

func (Tier2Strategy) Tier() core.Tier { return core.TierTable }

func (s Tier2Strategy) Lookup(ctx context.Context, raw *core.RawEntry, field core.Field) (string, bool, error) {
	return s.Source.LookupTier2(ctx, raw.ID, field)
}

// OriginalStrategy returns the original-language text.
type OriginalStrategy struct{}

func (OriginalStrategy) Tier() core.Tier { return core.TierOriginal }

func (OriginalStrategy) Lookup(_ context.Context, raw *core.RawEntry, field core.Field) (string, bool, error) {
	switch field {
	case core.FieldName:
		return raw.NameOriginal, true, nil
	case core.FieldDescription:
		return raw.DescriptionOriginal, true, nil
	}
	return "", false, nil
}

// DefaultStrategies returns the standard tier order over src.
func DefaultStrategies(src Source) []Strategy {
	return []Strategy{
		Tier1Strategy{Source: src},
		Tier2Strategy{Source: src},
		OriginalStrategy{},
	}
}
