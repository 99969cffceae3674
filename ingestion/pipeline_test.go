package ingestion

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/translation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSource implements translation.Source for testing.
type testSource struct {
	names     map[string]string // tier1 names by id
	labels    map[string]string // tier2 names by id
	failingID string
}

func (s *testSource) LookupTier1(_ context.Context, id, _ string, field core.Field) (string, bool, error) {
	if id == s.failingID {
		return "", false, fmt.Errorf("%w: %s unreadable", core.ErrSourceUnavailable, id)
	}
	if field != core.FieldName {
		return "", false, nil
	}
	text, ok := s.names[id]
	return text, ok, nil
}

func (s *testSource) LookupTier2(_ context.Context, id string, field core.Field) (string, bool, error) {
	if field != core.FieldName {
		return "", false, nil
	}
	text, ok := s.labels[id]
	return text, ok, nil
}

// slowResolver delays each entry by an amount that decreases with its
// position so later entries finish first.
type slowResolver struct {
	calls atomic.Int32
}

func (r *slowResolver) Resolve(_ context.Context, raw *core.RawEntry) (*core.ResolvedEntry, error) {
	r.calls.Add(1)
	var n int
	fmt.Sscanf(raw.ID, "entry-%d", &n)
	time.Sleep(time.Duration(20-n%20) * 100 * time.Microsecond)
	e := &core.ResolvedEntry{ID: raw.ID, Kind: core.KindRule}
	e.SetNameLocal(raw.NameOriginal)
	return e, nil
}

func rawEntries(n int) []*core.RawEntry {
	entries := make([]*core.RawEntry, n)
	for i := range entries {
		entries[i] = &core.RawEntry{
			ID:           fmt.Sprintf("entry-%d", i),
			Kind:         "journal",
			PackKey:      "rules",
			NameOriginal: fmt.Sprintf("Rule %d", i),
		}
	}
	return entries
}

func newTestPipeline(t *testing.T, resolver Resolver, opts ...Option) *Pipeline {
	t.Helper()
	p, err := NewPipeline(resolver, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Release)
	return p
}

func TestNewPipeline(t *testing.T) {
	t.Run("requires resolver", func(t *testing.T) {
		_, err := NewPipeline(nil)
		assert.ErrorIs(t, err, ErrResolverRequired)
	})

	t.Run("pool size clamps to one", func(t *testing.T) {
		p := newTestPipeline(t, &slowResolver{}, WithPoolSize(0))
		assert.Equal(t, 1, p.pool.Cap())
	})

	t.Run("custom pool size", func(t *testing.T) {
		p := newTestPipeline(t, &slowResolver{}, WithPoolSize(8))
		assert.Equal(t, 8, p.pool.Cap())
	})
}

func TestPipeline_PreservesOrder(t *testing.T) {
	resolver := &slowResolver{}
	p := newTestPipeline(t, resolver, WithPoolSize(8))

	entries := rawEntries(200)
	resolved, report, err := p.Resolve(context.Background(), entries)
	require.NoError(t, err)
	require.Len(t, resolved, len(entries))

	for i, e := range resolved {
		assert.Equal(t, entries[i].ID, e.ID)
	}
	assert.Equal(t, int32(200), resolver.calls.Load())
	assert.Equal(t, 200, report.Total)
	assert.Equal(t, 200, report.Resolved)
}

func TestPipeline_IsolatesFailures(t *testing.T) {
	src := &testSource{
		names:     map[string]string{"entry-0": "Règle zéro"},
		labels:    map[string]string{"entry-1": "Règle un"},
		failingID: "entry-3",
	}
	resolver, err := translation.NewResolver(src)
	require.NoError(t, err)
	p := newTestPipeline(t, resolver, WithPoolSize(4))

	entries := rawEntries(5)
	entries[2].Kind = ""
	entries = append(entries, nil)

	resolved, report, err := p.Resolve(context.Background(), entries)
	require.NoError(t, err)

	ids := make([]string, len(resolved))
	for i, e := range resolved {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"entry-0", "entry-1", "entry-4"}, ids)

	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 3, report.Resolved)
	assert.Equal(t, 2, report.StructuralSkips)
	require.Len(t, report.SourceFailures, 1)
	assert.Equal(t, "entry-3", report.SourceFailures[0].ID)
	assert.ErrorIs(t, report.SourceFailures[0].Err, core.ErrSourceUnavailable)

	assert.Equal(t, 1, report.NameTiers[core.TierDocument])
	assert.Equal(t, 1, report.NameTiers[core.TierTable])
	assert.Equal(t, 1, report.NameTiers[core.TierOriginal])
	assert.Equal(t, 2, report.TranslatedNames())
	assert.Equal(t, 0, report.TranslatedDescriptions())
	assert.Contains(t, report.String(), "3/6 resolved")
}

func TestPipeline_TraditionUnset(t *testing.T) {
	resolver, err := translation.NewResolver(&testSource{})
	require.NoError(t, err)
	p := newTestPipeline(t, resolver)

	entries := []*core.RawEntry{
		{ID: "with", Kind: "spell", NameOriginal: "Heal", Fields: core.Fields{"traits": map[string]any{"traditions": []any{"divine"}}}},
		{ID: "without", Kind: "spell", NameOriginal: "Odd", Fields: core.Fields{}},
		{ID: "feat", Kind: "feat", NameOriginal: "Power Attack", Fields: core.Fields{}},
	}

	_, report, err := p.Resolve(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"without"}, report.TraditionUnset)
}

func TestPipeline_EmptyInput(t *testing.T) {
	p := newTestPipeline(t, &slowResolver{})

	resolved, report, err := p.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resolved)
	assert.Equal(t, 0, report.Total)
}

func TestPipeline_Cancelled(t *testing.T) {
	p := newTestPipeline(t, &slowResolver{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := p.Resolve(ctx, rawEntries(10))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_Released(t *testing.T) {
	p, err := NewPipeline(&slowResolver{})
	require.NoError(t, err)
	p.Release()

	_, _, err = p.Resolve(context.Background(), rawEntries(1))
	assert.ErrorIs(t, err, ErrPipelineReleased)
}
