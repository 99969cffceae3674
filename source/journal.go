package source

import (
	"context"
	"log/slog"

	"github.com/poiesic/compendium/core"
)

// journalKinds maps journal page packs to entry kinds. Unlisted packs are rules.
var journalKinds = map[string]core.Kind{
	"journals-gmscreen":        core.KindRule,
	"journals-classes":         core.KindClass,
	"journals-ancestries":      core.KindAncestry,
	"journals-archetypes":      core.KindArchetype,
	"journals-domains":         core.KindDomain,
	"journals-remasterchanges": core.KindRule,
}

// JournalReader yields the journal pages of the translation tree as entries.
// The English text embedded in each page is the original; the French text
// is found again as the page's tier-1 document.
type JournalReader struct {
	store  *DocumentStore
	logger *slog.Logger
}

var _ Reader = (*JournalReader)(nil)

// NewJournalReader creates a reader over the journal pages of a store.
func NewJournalReader(store *DocumentStore, opts ...Option) (*JournalReader, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &JournalReader{store: store, logger: o.logger}, nil
}

// Name implements Reader.
func (r *JournalReader) Name() string { return "journals" }

// Entries implements Reader.
func (r *JournalReader) Entries(ctx context.Context) ([]*core.RawEntry, error) {
	var entries []*core.RawEntry
	for _, ref := range r.store.journalPages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, ok, err := r.store.load(ref)
		if err != nil {
			r.logger.Warn("skipping unreadable journal page", "path", ref.path, "err", err)
			continue
		}
		if !ok {
			continue
		}

		kind, ok := journalKinds[ref.pack]
		if !ok {
			kind = core.KindRule
		}
		name := doc.NameEN
		if name == "" {
			name = doc.NameFR
		}
		entries = append(entries, &core.RawEntry{
			ID:                  doc.ID,
			Kind:                string(kind),
			PackKey:             ref.pack,
			NameOriginal:        name,
			DescriptionOriginal: doc.DescriptionEN,
		})
	}
	r.logger.Info("read journal pages", "entries", len(entries))
	return entries, nil
}
