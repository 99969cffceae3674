package source

import (
	"path/filepath"
	"testing"

	"github.com/poiesic/compendium/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func englishTable() *LanguageTable {
	return NewLanguageTable(LangEnglish, map[string]any{
		"PF2E": map[string]any{
			"TraitFire":                           "Fire",
			"TraitDescriptionFire":                "Fire damage.",
			"TraitDescriptionAquatic":             "Lives in water.",
			"ConditionTypeBlinded":                "Blinded",
			"PreciousMaterialAdamantine":          "Adamantine",
			"PreciousMaterialAdamantineDescription": "A very hard metal.",
			"PreciousMaterialGradeHigh":           "High-Grade",
			"PreciousMaterialSilver":              "Silver",
			"AttackEffectGrab":                    "Grab",
			"ActorSizeLarge":                      "Large",
			"ActorSizeLabel":                      "Size",
			"NPC": map[string]any{
				"Abilities": map[string]any{
					"Glossary": map[string]any{"Grab": "The creature grabs.", "Darkvision": "Sees in darkness."},
				},
			},
			"Skill":  map[string]any{"Acrobatics": "Acrobatics", "Lore": map[string]any{"Label": "Lore"}},
			"Damage": map[string]any{"IWR": map[string]any{"Type": map[string]any{"fire": "Fire"}}},
			"Count":  3.0,
		},
	})
}

func TestLanguageTable(t *testing.T) {
	table := englishTable()

	v, ok := table.Get("PF2E.NPC.Abilities.Glossary.Grab")
	require.True(t, ok)
	assert.Equal(t, "The creature grabs.", v)

	_, ok = table.Get("PF2E.Count")
	assert.False(t, ok, "non-string leaves are dropped")

	skills := table.Children("PF2E.Skill")
	assert.Equal(t, map[string]string{"Acrobatics": "Acrobatics"}, skills)
}

func TestLoadLanguageTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr.json")
	writeFile(t, path, `{"PF2E": {"TraitFire": "Feu"}}`)

	table, err := LoadLanguageTable(path)
	require.NoError(t, err)
	assert.Equal(t, LangFrench, table.Lang)
	assert.Equal(t, 1, table.Len())

	bad := filepath.Join(t.TempDir(), "en.json")
	writeFile(t, bad, `[1, 2]`)
	_, err = LoadLanguageTable(bad)
	assert.ErrorIs(t, err, ErrNotTable)
}

func TestDerive(t *testing.T) {
	derived := Derive(englishTable(), DefaultRules)

	byID := make(map[string]Derived)
	for _, d := range derived {
		byID[d.ID] = d
	}

	tests := []struct {
		id          string
		kind        core.Kind
		name        string
		description string
	}{
		{"trait-fire", core.KindTrait, "Fire", "Fire damage."},
		{"trait-aquatic", core.KindTrait, "Aquatic", "Lives in water."},
		{"condition-blinded", core.KindCondition, "Blinded", ""},
		{"material-adamantine", core.KindMaterial, "Adamantine", "A very hard metal."},
		{"npc-ability-grab", core.KindAbility, "Grab", "The creature grabs."},
		{"npc-ability-darkvision", core.KindAbility, "Darkvision", "Sees in darkness."},
		{"glossary-size-large", core.KindGlossary, "Large", "Category: Size"},
		{"glossary-skill-acrobatics", core.KindGlossary, "Acrobatics", "Category: Skill"},
		{"glossary-damage-fire", core.KindGlossary, "Fire", "Category: Damage Type"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			d, ok := byID[tt.id]
			require.True(t, ok)
			assert.Equal(t, string(tt.kind), d.Kind)
			assert.Equal(t, tt.name, d.Name)
			assert.Equal(t, tt.description, d.Description)
		})
	}

	assert.NotContains(t, byID, "material-silver", "materials without description are skipped")
	assert.NotContains(t, byID, "glossary-size-label")
	assert.NotContains(t, byID, "material-gradehigh")
	assert.Len(t, derived, len(tests))
}

func TestDerive_Deterministic(t *testing.T) {
	first := Derive(englishTable(), DefaultRules)
	for range 5 {
		assert.Equal(t, first, Derive(englishTable(), DefaultRules))
	}
	assert.Nil(t, Derive(nil, DefaultRules))
}

func TestTableSource(t *testing.T) {
	french := NewLanguageTable(LangFrench, map[string]any{
		"PF2E": map[string]any{
			"TraitFire":            "Feu",
			"TraitDescriptionFire": "Dégâts de feu.",
			"ActorSizeLarge":       "Grande",
		},
	})
	src := NewTableSource(french, DefaultRules)

	name, ok := src.Lookup("trait-fire", core.FieldName)
	require.True(t, ok)
	assert.Equal(t, "Feu", name)

	desc, ok := src.Lookup("glossary-size-large", core.FieldDescription)
	require.True(t, ok)
	assert.Equal(t, "Catégorie : Taille", desc)

	_, ok = src.Lookup("trait-cold", core.FieldName)
	assert.False(t, ok)

	assert.Zero(t, NewTableSource(nil, DefaultRules).Len())
}
