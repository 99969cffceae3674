package index

import (
	"sync"
	"testing"
	"time"

	"github.com/poiesic/compendium/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, name string, kind core.Kind, pack string, traits ...string) *core.ResolvedEntry {
	e := &core.ResolvedEntry{ID: id, Kind: kind, PackKey: pack, NameOriginal: name}
	e.SetNameLocal(name)
	e.SetTraits(traits)
	return e
}

func testEntries() []*core.ResolvedEntry {
	dragon := entry("id1", "Dragon Rouge", core.KindCreature, "pathfinder-bestiary", "Dragon", "Feu")
	dragon.NameOriginal = "Red Dragon"
	dragon.DescriptionLocal = "<p>Un <strong>dragon</strong> cracheur de feu.</p>"

	fireball := entry("id2", "Boule de feu", core.KindSpell, "spells-srd", "Feu", "Évocation")
	fireball.NameOriginal = "Fireball"
	fireball.SetTraditions([]core.Tradition{core.TraditionArcane, core.TraditionPrimal})

	heal := entry("id3", "Guérison", core.KindSpell, "spells-srd", "Guérison")
	heal.SetTraditions([]core.Tradition{core.TraditionDivine, core.TraditionPrimal})

	return []*core.ResolvedEntry{dragon, fireball, heal}
}

func build(t *testing.T, entries []*core.ResolvedEntry) (*Index, *BuildReport) {
	t.Helper()
	idx, report, err := Build(entries)
	require.NoError(t, err)
	return idx, report
}

func TestBuild(t *testing.T) {
	idx, report := build(t, testEntries())

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, 3, report.Entries)
	assert.Empty(t, report.Duplicates)
	assert.Equal(t, idx.Checksum(), report.Checksum)

	e, ok := idx.Get("id1")
	require.True(t, ok)
	assert.Equal(t, 0, e.Position)
	assert.Equal(t, "red dragon", e.NameOriginalNormalized)
	assert.Equal(t, "un dragon cracheur de feu.", e.DescriptionNormalized)
	assert.Equal(t, "pathfinder-bestiary", e.PackNormalized)
	assert.Equal(t, []string{"dragon", "feu"}, e.TraitsNormalized)

	_, ok = idx.Get("missing")
	assert.False(t, ok)
}

func TestBuild_Buckets(t *testing.T) {
	idx, _ := build(t, testEntries())

	tests := []struct {
		name string
		got  Postings
		want Postings
	}{
		{"kind creature", idx.ByKind(core.KindCreature), Postings{0}},
		{"kind spell", idx.ByKind(core.KindSpell), Postings{1, 2}},
		{"kind absent", idx.ByKind(core.KindFeat), nil},
		{"pack", idx.ByPack("spells-srd"), Postings{1, 2}},
		{"trait folded", idx.ByTrait("feu"), Postings{0, 1}},
		{"trait accent folded", idx.ByTrait("evocation"), Postings{1}},
		{"tradition", idx.ByTradition(core.TraditionPrimal), Postings{1, 2}},
		{"token from name", idx.ByToken("boule"), Postings{1}},
		{"token from original name", idx.ByToken("fireball"), Postings{1}},
		{"token from description", idx.ByToken("cracheur"), Postings{0}},
		{"token shared", idx.ByToken("de"), Postings{0, 1}},
		{"punctuation kept in token", idx.ByToken("feu."), Postings{0}},
		{"containing token", idx.ContainingToken("drag"), Postings{0}},
		{"containing token several", idx.ContainingToken("e"), Postings{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestBuild_EveryEntryInOneKindBucket(t *testing.T) {
	idx, _ := build(t, testEntries())

	counts := make(map[int]int)
	for _, kind := range idx.Kinds() {
		for _, pos := range idx.ByKind(kind) {
			counts[pos]++
		}
	}
	for pos := range idx.Len() {
		assert.Equal(t, 1, counts[pos], "position %d", pos)
	}
}

func TestBuild_Listings(t *testing.T) {
	idx, _ := build(t, testEntries())

	assert.Equal(t, []core.Kind{core.KindCreature, core.KindSpell}, idx.Kinds())
	assert.Equal(t, []string{"pathfinder-bestiary", "spells-srd"}, idx.Packs())
	assert.Equal(t, []string{"dragon", "evocation", "feu", "guerison"}, idx.Traits())
	assert.Equal(t, Postings{0, 1, 2}, idx.All())
	assert.Equal(t, testEntries()[1].ID, idx.Entries()[1].ID)
}

func TestBuild_Duplicates(t *testing.T) {
	entries := testEntries()
	first := entries[0]
	dup := entry("id1", "Impostor", core.KindFeat, "feats-srd")
	entries = append(entries, dup, dup, nil)

	idx, report := build(t, entries)

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []string{"id1"}, report.Duplicates)

	e, ok := idx.Get("id1")
	require.True(t, ok)
	assert.Same(t, first, e.ResolvedEntry)
	assert.Empty(t, idx.ByKind(core.KindFeat))
}

func TestBuild_Checksum(t *testing.T) {
	a, _ := build(t, testEntries())
	b, _ := build(t, testEntries())
	assert.Equal(t, a.Checksum(), b.Checksum())

	reordered := testEntries()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	c, _ := build(t, reordered)
	assert.NotEqual(t, a.Checksum(), c.Checksum())
}

func TestBuild_Clock(t *testing.T) {
	stamp := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	idx, report, err := Build(testEntries(), WithClock(func() time.Time { return stamp }))
	require.NoError(t, err)
	assert.Equal(t, stamp, idx.BuiltAt())
	assert.Zero(t, report.Duration)
}

func TestBuild_Empty(t *testing.T) {
	idx, report := build(t, nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.All())
	assert.Equal(t, 0, report.Entries)
}

func TestPostings(t *testing.T) {
	assert.Equal(t, Postings{2, 5}, Intersect(Postings{1, 2, 5, 9}, Postings{2, 3, 5}))
	assert.Empty(t, Intersect(Postings{1}, nil))
	assert.Equal(t, Postings{1, 2, 3, 5, 9}, Union(Postings{1, 5, 9}, Postings{2, 3, 5}))
	assert.Equal(t, Postings{4}, Union(Postings{4}))
	assert.Nil(t, Union())
}

func TestHolder(t *testing.T) {
	h := NewHolder(nil)
	assert.Nil(t, h.Load())

	old, _ := build(t, testEntries()[:1])
	assert.Nil(t, h.Swap(old))
	assert.Same(t, old, h.Load())

	next, _ := build(t, testEntries())
	assert.Same(t, old, h.Swap(next))
	assert.Same(t, next, h.Load())
}

// Readers racing a swap see either snapshot in full: an id found by bucket
// is always found by id in the same snapshot.
func TestHolder_ConcurrentSwap(t *testing.T) {
	small, _ := build(t, testEntries()[:1])
	large, _ := build(t, testEntries())
	h := NewHolder(small)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				idx := h.Load()
				for _, pos := range idx.ByKind(core.KindSpell) {
					e := idx.At(pos)
					got, ok := idx.Get(e.ID)
					if !ok || got != e {
						t.Errorf("inconsistent snapshot for %s", e.ID)
						return
					}
				}
				assert.Len(t, idx.All(), idx.Len())
			}
		}()
	}

	for i := range 200 {
		if i%2 == 0 {
			h.Swap(large)
		} else {
			h.Swap(small)
		}
	}
	close(stop)
	wg.Wait()
}
