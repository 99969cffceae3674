package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	fireballID = "sxQZ6yqTn0czJxVd"
	dragonID   = "Dr4gonR0ugeAbCdE"
	wizardID   = "W1zardCla55AbCdE"
	pageID     = "Pag3W1zardAbCdEf"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// fixtureLayout builds a small Foundry checkout and pf2-fr checkout.
func fixtureLayout(t *testing.T) Layout {
	t.Helper()
	root := t.TempDir()
	layout := Layout{
		FoundryRoot:     filepath.Join(root, "pf2e"),
		TranslationRoot: filepath.Join(root, "pf2-fr"),
	}

	packs := filepath.Join(layout.FoundryRoot, "packs", "pf2e")
	writeFile(t, filepath.Join(packs, "spells-srd", "fireball.json"), `{
		"_id": "`+fireballID+`", "type": "spell", "name": "Fireball",
		"system": {"description": {"value": "<p>A roaring blast of fire.</p>"},
		           "traits": {"value": ["fire"], "rarity": "common", "traditions": ["arcane", "primal"]},
		           "level": {"value": 3}}
	}`)
	writeFile(t, filepath.Join(packs, "spells-srd", "_folders.json"), `[]`)
	writeFile(t, filepath.Join(packs, "pathfinder-bestiary", "dragons", "red.json"), `{
		"_id": "`+dragonID+`", "type": "npc", "name": "Red Dragon",
		"system": {"description": {"value": ""}, "details": {"level": {"value": 10}}}
	}`)
	writeFile(t, filepath.Join(packs, "classes", "wizard.json"), `{
		"_id": "`+wizardID+`", "type": "class", "name": "Wizard",
		"system": {"description": {"value": "<p>Study.</p>"}}
	}`)
	writeFile(t, filepath.Join(packs, "journals", "pages.json"), `{"_id": "JournalEntryAAAA", "name": "Classes"}`)

	data := filepath.Join(layout.TranslationRoot, "data")
	writeFile(t, filepath.Join(data, "spells-srd", "common-03-"+fireballID+".htm"),
		"Name: Fireball\nNom: Boule de feu\nÉtat: libre\n\n------ Description (en) ------\n"+
			"-- Desc (en) --\n<p>A roaring blast of fire.</p>\n-- Desc (fr) --\n<p>Une explosion de flammes.</p>\n-- End desc ---\n")
	writeFile(t, filepath.Join(data, "classes", wizardID+".htm"),
		"Name: Wizard\nNom: Magicien\n\n-- Desc (en) --\n@UUID[Compendium.pf2e.journals.JournalEntry.X1.JournalEntryPage."+pageID+"]{Wizard}\n"+
			"-- Desc (fr) --\n@UUID[Compendium.pf2e.journals.JournalEntry.X1.JournalEntryPage."+pageID+"]{Magicien}\n-- End desc ---\n")
	writeFile(t, filepath.Join(data, "journals", "pages-Classes", pageID+".htm"),
		"Name: Wizard\nNom: Magicien\n\n-- Desc (en) --\n<p>You are an eternal student.</p>\n"+
			"-- Desc (fr) --\n<p>Vous êtes un éternel étudiant.</p>\n-- End desc ---\n")

	writeFile(t, layout.EnglishTablePath(), `{"PF2E": {
		"TraitFire": "Fire", "TraitDescriptionFire": "Effects with this trait deal fire damage.",
		"ConditionTypeBlinded": "Blinded",
		"Skill": {"Acrobatics": "Acrobatics"}
	}}`)
	writeFile(t, layout.FrenchTablePath(), `{"PF2E": {
		"TraitFire": "Feu", "TraitDescriptionFire": "Les effets avec ce trait infligent des dégâts de feu.",
		"ConditionTypeBlinded": "Aveuglé",
		"Skill": {"Acrobatics": "Acrobaties"}
	}}`)
	return layout
}
