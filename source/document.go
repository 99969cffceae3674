package source

import (
	"regexp"
	"strings"
)

// Translation document markers.
const (
	descENMarker = "-- Desc (en) --"
	descFRMarker = "-- Desc (fr) --"
	descEndMark  = "-- End desc ---"
	itemsMarker  = "----- Items"
)

var (
	nameENRe = regexp.MustCompile(`(?m)^Name:[ \t]*(.+?)[ \t]*$`)
	nameFRRe = regexp.MustCompile(`(?m)^Nom:[ \t]*(.+?)[ \t]*$`)
	statusRe = regexp.MustCompile(`(?m)^État:[ \t]*(.+?)[ \t]*$`)
)

var journalRefRe = regexp.MustCompile(
	`@UUID\[Compendium\.pf2e\.journals\.JournalEntry\.[^.\]]+\.JournalEntryPage\.([^\]]+)\]`)

// Document is one parsed pf2-fr translation file.
type Document struct {
	ID            string
	Pack          string
	NameEN        string
	NameFR        string
	DescriptionEN string
	DescriptionFR string
	Status        string
}

// DocumentID extracts the Foundry id from a translation file stem.
// Stems are either the bare id or decorated with a prefix, as in
// "common-03-sxQZ6yqTn0czJxVd"; the id is the last dash-separated segment
// when it looks like one, the whole stem otherwise.
func DocumentID(stem string) string {
	parts := strings.Split(stem, "-")
	if last := parts[len(parts)-1]; looksLikeID(last) {
		return last
	}
	return stem
}

func looksLikeID(s string) bool {
	if len(s) != 16 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}

// ParseDocument parses the contents of a translation file. The id comes
// from the file stem. Documents with neither an English nor a French name
// are rejected with ErrNotDocument.
func ParseDocument(pack, stem, content string) (*Document, error) {
	// Embedded item translations follow the entry itself.
	head := content
	if i := strings.Index(content, itemsMarker); i >= 0 {
		head = content[:i]
	}

	doc := &Document{
		ID:            DocumentID(stem),
		Pack:          pack,
		NameEN:        firstMatch(nameENRe, head),
		NameFR:        firstMatch(nameFRRe, head),
		Status:        firstMatch(statusRe, head),
		DescriptionEN: section(head, descENMarker, descFRMarker, descEndMark),
		DescriptionFR: section(head, descFRMarker, descEndMark),
	}
	if doc.NameEN == "" && doc.NameFR == "" {
		return nil, ErrNotDocument
	}
	return doc, nil
}

// JournalPage returns the journal page id referenced by the French (or,
// failing that, English) description, if any.
func (d *Document) JournalPage() (string, bool) {
	for _, desc := range []string{d.DescriptionFR, d.DescriptionEN} {
		if m := journalRefRe.FindStringSubmatch(desc); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func firstMatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// section returns the trimmed text after start up to the earliest of the
// end markers, or the end of s.
func section(s, start string, ends ...string) string {
	i := strings.Index(s, start)
	if i < 0 {
		return ""
	}
	body := s[i+len(start):]
	cut := len(body)
	for _, end := range ends {
		if j := strings.Index(body, end); j >= 0 && j < cut {
			cut = j
		}
	}
	return strings.TrimSpace(body[:cut])
}
