package storage

import (
	"testing"
	"time"

	"github.com/poiesic/compendium/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry *core.ResolvedEntry
	}{
		{
			name:  "minimal entry",
			entry: &core.ResolvedEntry{ID: "abc", Kind: core.KindOther},
		},
		{
			name: "translated spell",
			entry: &core.ResolvedEntry{
				ID:                  "sxQZ6yqTn0czJxVd",
				NameLocal:           "Boule de feu",
				NameOriginal:        "Fireball",
				NameNormalized:      "boule de feu",
				DescriptionLocal:    "<p>Une explosion de flammes.</p>",
				DescriptionOriginal: "<p>A roaring blast of fire.</p>",
				Kind:                core.KindSpell,
				SourceType:          "spell",
				PackKey:             "spells-srd",
				Traits:              []string{"evocation", "fire"},
				Rarity:              "common",
				Traditions:          []core.Tradition{core.TraditionArcane, core.TraditionPrimal},
				Provenance:          core.Provenance{Name: core.TierDocument, Description: core.TierDocument},
				Details: core.SpellDetails{
					Rank: 3, Actions: "2", Range: "500 feet", Area: "20-foot burst", Defense: "basic reflex",
				},
			},
		},
		{
			name: "creature with stat block",
			entry: &core.ResolvedEntry{
				ID:         "Dr4gonR0ugeAbCdE",
				NameLocal:  "Dragon rouge adulte",
				Kind:       core.KindCreature,
				Traits:     []string{"dragon", "fire"},
				Rarity:     "uncommon",
				Provenance: core.Provenance{Name: core.TierTable},
				Details: core.CreatureDetails{
					Level:      14,
					Size:       "huge",
					Perception: 26,
					Senses:     []string{"darkvision", "scent (imprecise) 60 feet"},
					Languages:  []string{"common", "draconic"},
					Skills:     []core.Modifier{{Name: "athletics", Value: 28}, {Name: "stealth", Value: -1}},
					Abilities:  []core.Modifier{{Name: "str", Value: 7}},
					AC:         37,
					Fortitude:  27,
					Reflex:     23,
					Will:       25,
					HP:         325,
					Immunities: []string{"fire", "paralyzed"},
					Weaknesses: []string{"cold 15"},
					Speed:      "60 feet, fly 180 feet",
				},
			},
		},
		{
			name: "feat without level",
			entry: &core.ResolvedEntry{
				ID:   "feat1",
				Kind: core.KindAction,
				Details: core.FeatDetails{
					Actions: "reaction", Prerequisites: []string{"trained in Athletics"}, Trigger: "An enemy moves",
				},
			},
		},
		{
			name: "item",
			entry: &core.ResolvedEntry{
				ID:      "sword",
				Kind:    core.KindWeapon,
				Details: core.ItemDetails{Level: 0, Price: "1 gp", Bulk: "1", Usage: "held-in-one-hand", Damage: "1d8 slashing", Hands: "1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalEntry(tt.entry)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalEntry(data)
			require.NoError(t, err)
			assert.Equal(t, tt.entry, decoded)
		})
	}
}

func TestMarshalEntry_NilDetails(t *testing.T) {
	entry := &core.ResolvedEntry{ID: "x", Kind: core.KindRule}

	decoded, err := UnmarshalEntry(MarshalEntry(entry))
	require.NoError(t, err)
	assert.Nil(t, decoded.Details)
	_, hasLevel := decoded.Level()
	assert.False(t, hasLevel)
}

func TestUnmarshalEntry_EmptyCollectionsDecodeNil(t *testing.T) {
	entry := &core.ResolvedEntry{
		ID:         "c1",
		Kind:       core.KindCreature,
		Traits:     []string{},
		Traditions: []core.Tradition{},
		Details:    core.CreatureDetails{Level: 2, Senses: []string{}, Skills: []core.Modifier{}},
	}

	decoded, err := UnmarshalEntry(MarshalEntry(entry))
	require.NoError(t, err)
	assert.Nil(t, decoded.Traits)
	assert.Nil(t, decoded.Traditions)

	d, ok := decoded.Details.(core.CreatureDetails)
	require.True(t, ok)
	assert.Equal(t, 2, d.Level)
	assert.Nil(t, d.Senses)
	assert.Nil(t, d.Skills)
}

func TestUnmarshalEntry_Invalid(t *testing.T) {
	valid := MarshalEntry(&core.ResolvedEntry{ID: "abc", NameLocal: "Nom", Kind: core.KindSpell})

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty data", []byte{}, ErrTruncatedData},
		{"truncated", valid[:len(valid)/2], ErrSerializationFailed},
		{"trailing bytes", append(append([]byte{}, valid...), 0x01), ErrSerializationFailed},
		{"missing details flag", valid[:len(valid)-1], ErrSerializationFailed},
		{"details flag without details", append(append([]byte{}, valid[:len(valid)-1]...), 0x01), ErrSerializationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalEntry(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMarshalUnmarshalMetadata(t *testing.T) {
	meta := &core.Metadata{
		Generation:             12,
		Count:                  3,
		TranslatedNames:        2,
		TranslatedDescriptions: 1,
		KindCounts:             map[core.Kind]int{core.KindSpell: 2, core.KindCreature: 1},
		Checksum:               core.Checksum(0xdeadbeefcafe),
		BuiltAt:                time.Date(2026, 10, 17, 9, 30, 0, 123456000, time.UTC),
	}

	decoded, err := UnmarshalMetadata(MarshalMetadata(meta))
	require.NoError(t, err)
	assert.Equal(t, meta, decoded)

	_, err = UnmarshalMetadata(nil)
	assert.ErrorIs(t, err, ErrTruncatedData)
}
