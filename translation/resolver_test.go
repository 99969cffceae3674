package translation

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/compendium/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type key struct {
	id    string
	field core.Field
}

// mapSource is an in-memory Source.
type mapSource struct {
	tier1 map[key]string // keyed by id+pack folded into id as "pack/id"
	tier2 map[key]string
	err   error
}

func newMapSource() *mapSource {
	return &mapSource{tier1: make(map[key]string), tier2: make(map[key]string)}
}

func (s *mapSource) LookupTier1(_ context.Context, id, pack string, field core.Field) (string, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	text, ok := s.tier1[key{pack + "/" + id, field}]
	return text, ok, nil
}

func (s *mapSource) LookupTier2(_ context.Context, id string, field core.Field) (string, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	text, ok := s.tier2[key{id, field}]
	return text, ok, nil
}

func fireball() *core.RawEntry {
	return &core.RawEntry{
		ID:                  "sxQZ6yqTn0czJxVd",
		Kind:                "spell",
		PackKey:             "spells-srd",
		NameOriginal:        "Fireball",
		DescriptionOriginal: "A roaring blast of fire.",
		Fields: core.Fields{
			"level":  map[string]any{"value": float64(3)},
			"traits": map[string]any{"value": []any{"fire", "evocation"}, "rarity": "common", "traditions": []any{"arcane", "primal"}},
		},
	}
}

func TestNewResolver(t *testing.T) {
	t.Run("requires a source", func(t *testing.T) {
		_, err := NewResolver(nil)
		assert.ErrorIs(t, err, ErrSourceRequired)
	})

	t.Run("rejects empty strategies", func(t *testing.T) {
		_, err := NewResolver(newMapSource(), WithStrategies())
		assert.ErrorIs(t, err, ErrNoStrategies)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		r, err := NewResolver(newMapSource(), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, r.logger)
	})
}

func TestResolve_TierPriority(t *testing.T) {
	raw := fireball()
	src := newMapSource()
	src.tier1[key{"spells-srd/" + raw.ID, core.FieldName}] = "Boule de feu"
	src.tier2[key{raw.ID, core.FieldName}] = "Feu"

	r, err := NewResolver(src)
	require.NoError(t, err)

	entry, err := r.Resolve(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Boule de feu", entry.NameLocal)
	assert.Equal(t, core.TierDocument, entry.Provenance.Name)

	delete(src.tier1, key{"spells-srd/" + raw.ID, core.FieldName})
	entry, err = r.Resolve(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Feu", entry.NameLocal)
	assert.Equal(t, core.TierTable, entry.Provenance.Name)

	delete(src.tier2, key{raw.ID, core.FieldName})
	entry, err = r.Resolve(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Fireball", entry.NameLocal)
	assert.Equal(t, core.TierOriginal, entry.Provenance.Name)
}

func TestResolve_FieldsResolveIndependently(t *testing.T) {
	raw := fireball()
	src := newMapSource()
	src.tier2[key{raw.ID, core.FieldName}] = "Boule de feu"
	src.tier1[key{"spells-srd/" + raw.ID, core.FieldDescription}] = "Une explosion rugissante."

	r, err := NewResolver(src)
	require.NoError(t, err)

	entry, err := r.Resolve(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, core.TierTable, entry.Provenance.Name)
	assert.Equal(t, core.TierDocument, entry.Provenance.Description)
	assert.Equal(t, "Une explosion rugissante.", entry.DescriptionLocal)
	assert.Equal(t, "A roaring blast of fire.", entry.DescriptionOriginal)
	assert.True(t, entry.Translated())
}

func TestResolve_BlankCandidateFallsThrough(t *testing.T) {
	raw := fireball()
	src := newMapSource()
	src.tier1[key{"spells-srd/" + raw.ID, core.FieldName}] = "   "
	src.tier2[key{raw.ID, core.FieldName}] = "Feu"

	r, err := NewResolver(src)
	require.NoError(t, err)

	entry, err := r.Resolve(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Feu", entry.NameLocal)
	assert.Equal(t, core.TierTable, entry.Provenance.Name)
}

func TestResolve_PackScopesTier1(t *testing.T) {
	raw := fireball()
	src := newMapSource()
	src.tier1[key{"other-pack/" + raw.ID, core.FieldName}] = "Boule de feu"

	r, err := NewResolver(src)
	require.NoError(t, err)

	entry, err := r.Resolve(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Fireball", entry.NameLocal)
}

func TestResolve_NormalizedNameTracksLocalName(t *testing.T) {
	raw := fireball()
	src := newMapSource()
	src.tier1[key{"spells-srd/" + raw.ID, core.FieldName}] = "Éclair  Foudroyant"

	r, err := NewResolver(src)
	require.NoError(t, err)

	entry, err := r.Resolve(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, core.Normalize(entry.NameLocal), entry.NameNormalized)
	assert.Equal(t, "eclair foudroyant", entry.NameNormalized)
}

func TestResolve_SourceUnavailable(t *testing.T) {
	src := newMapSource()
	src.err = errors.Join(core.ErrSourceUnavailable, errors.New("disk gone"))

	r, err := NewResolver(src)
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), fireball())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "tier1")
}

func TestResolve_Structural(t *testing.T) {
	r, err := NewResolver(newMapSource())
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  *core.RawEntry
		want error
	}{
		{"nil entry", nil, core.ErrStructural},
		{"missing id", &core.RawEntry{Kind: "spell"}, core.ErrMissingID},
		{"missing kind", &core.RawEntry{ID: "abc"}, core.ErrMissingKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), tt.raw)
			assert.ErrorIs(t, err, core.ErrStructural)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResolve_CustomStrategies(t *testing.T) {
	src := newMapSource()
	raw := fireball()
	src.tier1[key{"spells-srd/" + raw.ID, core.FieldName}] = "Boule de feu"
	src.tier2[key{raw.ID, core.FieldName}] = "Feu"

	r, err := NewResolver(src, WithStrategies(Tier2Strategy{Source: src}, OriginalStrategy{}))
	require.NoError(t, err)

	entry, err := r.Resolve(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Feu", entry.NameLocal)
}

func TestResolve_NoStrategyMatches(t *testing.T) {
	src := newMapSource()
	r, err := NewResolver(src, WithStrategies(Tier1Strategy{Source: src}))
	require.NoError(t, err)

	entry, err := r.Resolve(context.Background(), fireball())
	require.NoError(t, err)
	assert.Empty(t, entry.NameLocal)
	assert.Equal(t, core.TierOriginal, entry.Provenance.Name)
}

func TestResolve_Classification(t *testing.T) {
	r, err := NewResolver(newMapSource())
	require.NoError(t, err)

	entry, err := r.Resolve(context.Background(), fireball())
	require.NoError(t, err)
	assert.Equal(t, core.KindSpell, entry.Kind)
	assert.Equal(t, "spell", entry.SourceType)
	assert.Equal(t, "spells-srd", entry.PackKey)
	assert.Equal(t, []string{"evocation", "fire"}, entry.Traits)
	assert.Equal(t, "common", entry.Rarity)
	assert.Equal(t, []core.Tradition{core.TraditionArcane, core.TraditionPrimal}, entry.Traditions)
	assert.False(t, entry.TraditionUnset)
}
