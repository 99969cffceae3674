package render

import (
	"strconv"
	"strings"

	"github.com/poiesic/compendium/core"
)

var kindLabels = map[core.Kind]string{
	core.KindCreature:   "Créature",
	core.KindHazard:     "Danger",
	core.KindSpell:      "Sort",
	core.KindFeat:       "Don",
	core.KindAction:     "Action",
	core.KindEquipment:  "Équipement",
	core.KindTreasure:   "Trésor",
	core.KindContainer:  "Contenant",
	core.KindWeapon:     "Arme",
	core.KindArmor:      "Armure",
	core.KindShield:     "Bouclier",
	core.KindConsumable: "Consommable",
	core.KindAncestry:   "Ascendance",
	core.KindHeritage:   "Héritage",
	core.KindBackground: "Historique",
	core.KindClass:      "Classe",
	core.KindArchetype:  "Archétype",
	core.KindDeity:      "Divinité",
	core.KindEffect:     "Effet",
	core.KindCondition:  "État",
	core.KindFamiliar:   "Familier",
	core.KindVehicle:    "Véhicule",
	core.KindCompanion:  "Compagnon",
	core.KindEidolon:    "Eidolon",
	core.KindRule:       "Règle",
	core.KindDomain:     "Domaine",
	core.KindTrait:      "Trait",
	core.KindAbility:    "Capacité",
	core.KindMaterial:   "Matériau",
	core.KindGlossary:   "Glossaire",
	core.KindOther:      "Autre",
}

// KindLabel returns the display label of a kind.
func KindLabel(k core.Kind) string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	if k == "" {
		return "?"
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// typeLabel is the title label of an entry. Cantrips and focus spells are
// labeled apart from ordinary spells.
func typeLabel(e *core.ResolvedEntry) string {
	if e.Kind == core.KindSpell {
		switch {
		case e.HasTrait("cantrip"):
			return "Tour de magie"
		case e.HasTrait("focus"):
			return "Sort focalisé"
		}
	}
	return KindLabel(e.Kind)
}

var traditionLabels = map[core.Tradition]string{
	core.TraditionArcane: "arcanique",
	core.TraditionDivine: "divine",
	core.TraditionOccult: "occulte",
	core.TraditionPrimal: "primordiale",
}

func traditionList(traditions []core.Tradition) string {
	labels := make([]string, 0, len(traditions))
	for _, t := range traditions {
		if label, ok := traditionLabels[t]; ok {
			labels = append(labels, label)
			continue
		}
		labels = append(labels, string(t))
	}
	return strings.Join(labels, ", ")
}

var actionGlyphs = map[string]string{
	"1":        "◆",
	"2":        "◆◆",
	"3":        "◆◆◆",
	"reaction": "↺",
	"free":     "◇",
	"passive":  "—",
}

// ActionGlyph maps an action cost to its symbol. Unknown costs, such as
// "1 minute", are returned unchanged.
func ActionGlyph(actions string) string {
	if glyph, ok := actionGlyphs[strings.ToLower(strings.TrimSpace(actions))]; ok {
		return glyph
	}
	return actions
}

// Modifier formats a signed bonus.
func Modifier(v int) string {
	if v >= 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func modifierList(mods []core.Modifier) string {
	parts := make([]string, 0, len(mods))
	for _, m := range mods {
		parts = append(parts, m.Name+" "+Modifier(m.Value))
	}
	return strings.Join(parts, ", ")
}

func tierLabel(t core.Tier) string {
	switch t {
	case core.TierDocument:
		return "document"
	case core.TierTable:
		return "table"
	}
	return "original"
}
