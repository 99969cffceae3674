package core

import (
	"testing"
	"time"

	dts "github.com/mus-format/dts-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsMUS_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		details Details
	}{
		{"creature", CreatureDetails{
			Level:     3,
			Size:      "medium",
			Senses:    []string{"darkvision"},
			Skills:    []Modifier{{Name: "stealth", Value: -2}},
			Abilities: []Modifier{{Name: "str", Value: 4}},
			AC:        18,
			HP:        45,
			Speed:     "25 ft",
		}},
		{"spell", SpellDetails{Rank: 9, Actions: "3", Defense: "basic fortitude"}},
		{"feat", FeatDetails{Level: 1, HasLevel: true, Prerequisites: []string{"expert in Arcana"}}},
		{"item", ItemDetails{Level: 20, Price: "40000 gp", Bulk: "L"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := make([]byte, DetailsMUS.Size(tt.details))
			n := DetailsMUS.Marshal(tt.details, bs)
			assert.Equal(t, len(bs), n)

			got, read, err := DetailsMUS.Unmarshal(bs)
			require.NoError(t, err)
			assert.Equal(t, n, read)
			assert.IsType(t, tt.details, got)
			assert.Equal(t, tt.details, got)

			skipped, err := DetailsMUS.Skip(bs)
			require.NoError(t, err)
			assert.Equal(t, n, skipped)
		})
	}
}

func TestDetailsMUS_UnknownDTM(t *testing.T) {
	bs := make([]byte, dts.DTMSer.Size(99))
	dts.DTMSer.Marshal(99, bs)

	_, _, err := DetailsMUS.Unmarshal(bs)
	assert.ErrorContains(t, err, "unexpected 99 DTM")
}

func TestCreatureDetailsMUS_RejectsOversizedCollection(t *testing.T) {
	bs := make([]byte, 32)
	n := varint.Int.Marshal(1, bs)
	n += ord.String.Marshal("small", bs[n:])
	n += varint.Int.Marshal(5, bs[n:])
	n += varint.PositiveInt.Marshal(maxCollectionLen+1, bs[n:])

	_, _, err := CreatureDetailsMUS.Unmarshal(bs[:n])
	assert.ErrorIs(t, err, ErrLengthOutOfRange)
}

func TestMetadataMUS_BuiltAtDecodesUTC(t *testing.T) {
	paris := time.FixedZone("CEST", 2*60*60)
	meta := Metadata{
		Generation: 3,
		KindCounts: map[Kind]int{KindFeat: 1},
		BuiltAt:    time.Date(2026, 10, 17, 11, 30, 0, 5000, paris),
	}

	bs := make([]byte, MetadataMUS.Size(meta))
	MetadataMUS.Marshal(meta, bs)
	got, _, err := MetadataMUS.Unmarshal(bs)
	require.NoError(t, err)

	assert.Equal(t, time.UTC, got.BuiltAt.Location())
	assert.True(t, meta.BuiltAt.Equal(got.BuiltAt))
	assert.Equal(t, meta.KindCounts, got.KindCounts)
}

func TestValidateCollectionLen(t *testing.T) {
	assert.NoError(t, validateCollectionLen(0))
	assert.NoError(t, validateCollectionLen(maxCollectionLen))
	assert.ErrorIs(t, validateCollectionLen(maxCollectionLen+1), ErrLengthOutOfRange)
}
