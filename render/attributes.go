package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/compendium/core"
)

// Attribute is one labeled value of an entry's details.
type Attribute struct {
	Label string
	Value string
}

// Section is a group of attributes displayed together.
type Section []Attribute

func (s Section) add(label, value string) Section {
	if value == "" {
		return s
	}
	return append(s, Attribute{Label: label, Value: value})
}

// Sections returns the kind-specific attribute groups of e, selected by its
// details variant. Empty values and empty groups are dropped.
func Sections(e *core.ResolvedEntry) []Section {
	var sections []Section
	switch d := e.Details.(type) {
	case core.CreatureDetails:
		sections = creatureSections(d)
	case core.SpellDetails:
		sections = spellSections(e, d)
	case core.FeatDetails:
		sections = featSections(d)
	case core.ItemDetails:
		sections = itemSections(d)
	}

	out := sections[:0]
	for _, s := range sections {
		if len(s) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func creatureSections(d core.CreatureDetails) []Section {
	perception := Modifier(d.Perception)
	if len(d.Senses) > 0 {
		perception += "; " + strings.Join(d.Senses, ", ")
	}
	senses := Section{}.
		add("Taille", d.Size).
		add("Perception", perception).
		add("Langues", strings.Join(d.Languages, ", ")).
		add("Compétences", modifierList(d.Skills)).
		add("Caractéristiques", modifierList(d.Abilities))

	defense := Section{}.
		add("CA", strconv.Itoa(d.AC)).
		add("Sauvegardes", fmt.Sprintf("Réf %s; Vig %s; Vol %s",
			Modifier(d.Reflex), Modifier(d.Fortitude), Modifier(d.Will))).
		add("PV", strconv.Itoa(d.HP)).
		add("Immunités", strings.Join(d.Immunities, ", ")).
		add("Résistances", strings.Join(d.Resistances, ", ")).
		add("Faiblesses", strings.Join(d.Weaknesses, ", "))

	movement := Section{}.add("Vitesse", d.Speed)

	return []Section{senses, defense, movement}
}

func spellSections(e *core.ResolvedEntry, d core.SpellDetails) []Section {
	header := Section{}.
		add("Rang", strconv.Itoa(d.Rank)).
		add("Traditions", traditionList(e.Traditions))

	casting := Section{}.
		add("Incantation", ActionGlyph(d.Actions)).
		add("Portée", d.Range).
		add("Zone", d.Area).
		add("Cibles", d.Targets).
		add("Défense", d.Defense).
		add("Durée", d.Duration)

	return []Section{header, casting}
}

func featSections(d core.FeatDetails) []Section {
	var level string
	if d.HasLevel {
		level = strconv.Itoa(d.Level)
	}
	return []Section{Section{}.
		add("Niveau", level).
		add("Actions", ActionGlyph(d.Actions)).
		add("Prérequis", strings.Join(d.Prerequisites, "; ")).
		add("Fréquence", d.Frequency).
		add("Déclencheur", d.Trigger)}
}

func itemSections(d core.ItemDetails) []Section {
	return []Section{Section{}.
		add("Prix", d.Price).
		add("Niveau", strconv.Itoa(d.Level)).
		add("Encombrement", d.Bulk).
		add("Utilisation", d.Usage).
		add("Mains", d.Hands).
		add("Dégâts", d.Damage)}
}
