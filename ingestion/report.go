package ingestion

import (
	"fmt"

	"github.com/poiesic/compendium/core"
)

// Failure records an entry aborted by a source failure.
type Failure struct {
	ID  string
	Err error
}

// Report summarizes one resolution run.
type Report struct {
	Total           int
	Resolved        int
	StructuralSkips int
	SourceFailures  []Failure

	// TraditionUnset lists spells whose source schema had no tradition path.
	TraditionUnset []string

	NameTiers        map[core.Tier]int
	DescriptionTiers map[core.Tier]int
}

func newReport(total int) *Report {
	return &Report{
		Total:            total,
		NameTiers:        make(map[core.Tier]int),
		DescriptionTiers: make(map[core.Tier]int),
	}
}

func (r *Report) record(raw *core.RawEntry, s slot) {
	switch s.outcome {
	case outcomeResolved:
		r.Resolved++
		r.NameTiers[s.entry.Provenance.Name]++
		r.DescriptionTiers[s.entry.Provenance.Description]++
		if s.entry.TraditionUnset {
			r.TraditionUnset = append(r.TraditionUnset, s.entry.ID)
		}
	case outcomeStructural:
		r.StructuralSkips++
	case outcomeFailed:
		r.SourceFailures = append(r.SourceFailures, Failure{ID: idOf(raw), Err: s.err})
	}
}

// TranslatedNames returns how many names came from a translation tier.
func (r *Report) TranslatedNames() int {
	return r.NameTiers[core.TierDocument] + r.NameTiers[core.TierTable]
}

// TranslatedDescriptions returns how many descriptions came from a
// translation tier.
func (r *Report) TranslatedDescriptions() int {
	return r.DescriptionTiers[core.TierDocument] + r.DescriptionTiers[core.TierTable]
}

func (r *Report) String() string {
	return fmt.Sprintf("%d/%d resolved, %d structural skips, %d source failures, %d names translated (tier1 %d, tier2 %d)",
		r.Resolved, r.Total, r.StructuralSkips, len(r.SourceFailures),
		r.TranslatedNames(), r.NameTiers[core.TierDocument], r.NameTiers[core.TierTable])
}

func idOf(raw *core.RawEntry) string {
	if raw == nil {
		return ""
	}
	return raw.ID
}
