package source

import (
	"context"
	"strings"

	"github.com/poiesic/compendium/core"
)

// journalDescribed lists the packs whose translated description defers to a
// journal page when it links one.
var journalDescribed = map[string]bool{
	"classes":    true,
	"ancestries": true,
	"archetypes": true,
}

// Translations serves tiered lookups: tier 1 from translation documents,
// tier 2 from the translated language table. Either source may be nil.
type Translations struct {
	docs  *DocumentStore
	table *TableSource
}

// NewTranslations combines the two translation sources.
func NewTranslations(docs *DocumentStore, table *TableSource) *Translations {
	return &Translations{docs: docs, table: table}
}

// LookupTier1 returns the translated field from the document keyed by
// (id, pack). Empty text is a miss.
func (t *Translations) LookupTier1(ctx context.Context, id, pack string, field core.Field) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if t.docs == nil {
		return "", false, nil
	}

	doc, ok, err := t.docs.Lookup(pack, id)
	if err != nil || !ok {
		return "", false, err
	}

	switch field {
	case core.FieldName:
		return nonEmpty(doc.NameFR)
	case core.FieldDescription:
		if journalDescribed[pack] {
			if text, ok, err := t.journalDescription(doc); err != nil || ok {
				return text, ok, err
			}
		}
		return nonEmpty(doc.DescriptionFR)
	}
	return "", false, nil
}

func (t *Translations) journalDescription(doc *Document) (string, bool, error) {
	pageID, ok := doc.JournalPage()
	if !ok {
		return "", false, nil
	}
	page, ok, err := t.docs.JournalPage(pageID)
	if err != nil || !ok {
		return "", false, err
	}
	return nonEmpty(page.DescriptionFR)
}

// LookupTier2 returns the translated field from the language table.
func (t *Translations) LookupTier2(ctx context.Context, id string, field core.Field) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if t.table == nil {
		return "", false, nil
	}
	text, ok := t.table.Lookup(id, field)
	if !ok {
		return "", false, nil
	}
	return nonEmpty(text)
}

func nonEmpty(s string) (string, bool, error) {
	if strings.TrimSpace(s) == "" {
		return "", false, nil
	}
	return s, true, nil
}
