package render

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/poiesic/compendium/core"
)

// Markdown renders e as a standalone Markdown note: title, summary list,
// description paragraphs and the attribute sections.
func Markdown(e *core.ResolvedEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", displayName(e))
	if original := originalName(e); original != "" {
		fmt.Fprintf(&b, "*%s*\n\n", original)
	}

	label := typeLabel(e)
	if level, ok := e.Level(); ok {
		label = fmt.Sprintf("%s %d", label, level)
	}
	fmt.Fprintf(&b, "- **Type** %s\n", label)
	if e.PackKey != "" {
		fmt.Fprintf(&b, "- **Pack** %s\n", e.PackKey)
	}
	fmt.Fprintf(&b, "- **ID** `%s`\n", e.ID)
	if traits := traitNames(e); len(traits) > 0 {
		fmt.Fprintf(&b, "- **Traits** %s\n", strings.Join(traits, ", "))
	}
	if !e.Translated() {
		b.WriteString("- **Traduction** aucune\n")
	}

	if text := core.PlainText(description(e)); text != "" {
		b.WriteString("\n")
		for _, para := range strings.Split(text, "\n") {
			if para = strings.TrimSpace(para); para != "" {
				b.WriteString(para + "\n\n")
			}
		}
	}

	for _, section := range Sections(e) {
		b.WriteString("\n")
		for _, attr := range section {
			fmt.Fprintf(&b, "- **%s** %s\n", attr.Label, attr.Value)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FileName returns a file-system safe name for the Markdown note of e.
// The short id suffix keeps entries with the same name apart.
func FileName(e *core.ResolvedEntry) string {
	name := slug.Make(displayName(e))
	if name == "" {
		name = "entry"
	}
	if e.ID == "" {
		return name + ".md"
	}
	return fmt.Sprintf("%s-%s.md", name, strings.ToLower(shortID(e.ID)))
}

// traitNames lists rarity (when not common) followed by the traits.
func traitNames(e *core.ResolvedEntry) []string {
	var names []string
	rarity := strings.ToLower(e.Rarity)
	if rarity != "" && rarity != "common" {
		names = append(names, e.Rarity)
	}
	for _, t := range e.Traits {
		if isRarity(t) {
			continue
		}
		names = append(names, t)
	}
	return names
}

func isRarity(trait string) bool {
	switch strings.ToLower(trait) {
	case "common", "uncommon", "rare", "unique":
		return true
	}
	return false
}
