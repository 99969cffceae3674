package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMetadata(t *testing.T) {
	entries := []*ResolvedEntry{
		{ID: "a", Kind: KindSpell, Provenance: Provenance{Name: TierDocument, Description: TierDocument}},
		{ID: "b", Kind: KindSpell, Provenance: Provenance{Name: TierTable}},
		{ID: "c", Kind: KindCreature},
		{ID: "d", Kind: KindFeat},
		{ID: "e", Kind: KindCreature},
		{ID: "f", Kind: KindCreature},
	}
	builtAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))

	m := NewMetadata(entries, builtAt)
	assert.Equal(t, 6, m.Count)
	assert.Equal(t, 2, m.TranslatedNames)
	assert.Equal(t, 1, m.TranslatedDescriptions)
	assert.Equal(t, map[Kind]int{KindSpell: 2, KindCreature: 3, KindFeat: 1}, m.KindCounts)
	assert.Equal(t, ChecksumOf(entries), m.Checksum)
	assert.Equal(t, time.UTC, m.BuiltAt.Location())
	assert.True(t, builtAt.Equal(m.BuiltAt))
	assert.Zero(t, m.Generation)

	assert.Equal(t, []Kind{KindCreature, KindSpell, KindFeat}, m.Kinds())
}

func TestMetadataKinds_TiesSortByName(t *testing.T) {
	m := &Metadata{KindCounts: map[Kind]int{KindTrait: 1, KindAction: 1, KindDeity: 1}}
	assert.Equal(t, []Kind{KindAction, KindDeity, KindTrait}, m.Kinds())
}
