package core

import (
	"slices"
	"time"
)

// Metadata describes one persisted snapshot generation.
type Metadata struct {
	Generation             uint64
	Count                  int
	TranslatedNames        int
	TranslatedDescriptions int
	KindCounts             map[Kind]int
	Checksum               Checksum
	BuiltAt                time.Time
}

// NewMetadata summarizes entries as they will be persisted.
// Generation is assigned by the repository on commit.
func NewMetadata(entries []*ResolvedEntry, builtAt time.Time) *Metadata {
	m := &Metadata{
		Count:      len(entries),
		KindCounts: make(map[Kind]int),
		Checksum:   ChecksumOf(entries),
		BuiltAt:    builtAt.UTC(),
	}
	for _, e := range entries {
		m.KindCounts[e.Kind]++
		if e.Provenance.Name.Translated() {
			m.TranslatedNames++
		}
		if e.Provenance.Description.Translated() {
			m.TranslatedDescriptions++
		}
	}
	return m
}

// Kinds returns the kinds present in the snapshot, most populous first.
func (m *Metadata) Kinds() []Kind {
	kinds := make([]Kind, 0, len(m.KindCounts))
	for k := range m.KindCounts {
		kinds = append(kinds, k)
	}
	slices.SortFunc(kinds, func(a, b Kind) int {
		if d := m.KindCounts[b] - m.KindCounts[a]; d != 0 {
			return d
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
	return kinds
}
