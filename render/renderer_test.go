package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/poiesic/compendium/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r, err := NewRenderer(&out, opts...)
	require.NoError(t, err)
	return r, &out
}

func fireball() *core.ResolvedEntry {
	e := &core.ResolvedEntry{
		ID:                  "sxQZ6yqTn0czJxVd",
		NameOriginal:        "Fireball",
		DescriptionLocal:    "<p>Une explosion de flammes jaillit du point désigné et inflige des dégâts à toutes les créatures dans la zone, y compris vous si vous êtes assez imprudent pour vous y trouver.</p>",
		DescriptionOriginal: "<p>A roaring blast of fire.</p>",
		Kind:                core.KindSpell,
		PackKey:             "spells-srd",
		Rarity:              "uncommon",
		Provenance:          core.Provenance{Name: core.TierDocument, Description: core.TierDocument},
		Details: core.SpellDetails{
			Rank:     3,
			Actions:  "2",
			Range:    "150 pieds",
			Area:     "explosion de 6 m",
			Defense:  "Réflexes basique",
			Duration: "",
		},
	}
	e.SetNameLocal("Boule de feu")
	e.SetTraits([]string{"fire", "manipulate", "uncommon"})
	e.SetTraditions([]core.Tradition{core.TraditionPrimal, core.TraditionArcane})
	return e
}

func TestNewRenderer(t *testing.T) {
	_, err := NewRenderer(nil)
	assert.ErrorIs(t, err, ErrNoWriter)

	var out bytes.Buffer
	_, err = NewRenderer(&out, WithWidth(0))
	assert.ErrorIs(t, err, ErrInvalidWidth)

	r, err := NewRenderer(&out)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, r.Width())
	assert.Nil(t, r.md)

	r, err = NewRenderer(&out, WithWidth(10))
	require.NoError(t, err)
	assert.Equal(t, minWidth, r.Width())

	r, err = NewRenderer(&out, WithMarkdown(true))
	require.NoError(t, err)
	assert.NotNil(t, r.md)
}

func TestCompact(t *testing.T) {
	t.Run("translated entry", func(t *testing.T) {
		r, out := newTestRenderer(t)
		require.NoError(t, r.Compact(1, fireball()))

		got := out.String()
		assert.Contains(t, got, " 1. Boule de feu ")
		assert.Contains(t, got, "(Fireball)")
		assert.Contains(t, got, "[Sort]")
		assert.Contains(t, got, "Niv.3")
		assert.Contains(t, got, "← spells-srd")
		assert.Contains(t, got, "#sxQZ6yqT")
		assert.NotContains(t, got, "sxQZ6yqTn0")
		assert.NotContains(t, got, "[EN]")
		assert.Contains(t, got, "[uncommon] [fire] [manipulate]")
		assert.Contains(t, got, "Une explosion de flammes")
		assert.Contains(t, got, "...")
	})

	t.Run("untranslated entry", func(t *testing.T) {
		e := &core.ResolvedEntry{
			ID:                  "abc",
			NameOriginal:        "Longsword",
			DescriptionOriginal: "A sword.",
			Kind:                core.KindWeapon,
			PackKey:             "equipment-srd",
		}
		e.SetNameLocal("Longsword")

		r, out := newTestRenderer(t)
		require.NoError(t, r.Compact(12, e))

		got := out.String()
		assert.Contains(t, got, " 12. Longsword ")
		assert.NotContains(t, got, "(Longsword)")
		assert.Contains(t, got, "[Arme]")
		assert.Contains(t, got, "[EN]")
		assert.Contains(t, got, "#abc")
		assert.NotContains(t, got, "Niv.")
		assert.Contains(t, got, "A sword.")
	})

	t.Run("no color on plain writer", func(t *testing.T) {
		r, out := newTestRenderer(t)
		require.NoError(t, r.Compact(1, fireball()))
		assert.NotContains(t, out.String(), "\x1b[")
	})
}

func TestFull(t *testing.T) {
	tests := []struct {
		name     string
		entry    func() *core.ResolvedEntry
		contains []string
		excludes []string
	}{
		{
			name:  "spell",
			entry: fireball,
			contains: []string{
				" BOULE DE FEU ", "Sort 3", "(Fireball)",
				"Traditions arcanique, primordiale",
				"Incantation ◆◆", "Portée 150 pieds", "Zone explosion de 6 m",
				"Défense Réflexes basique",
				"Pack: spells-srd | ID: sxQZ6yqTn0czJxVd | Nom: document | Description: document",
				"imprudent",
			},
			excludes: []string{"Durée", "Cibles"},
		},
		{
			name: "cantrip",
			entry: func() *core.ResolvedEntry {
				e := &core.ResolvedEntry{ID: "c1", Kind: core.KindSpell, Details: core.SpellDetails{Rank: 1}}
				e.SetNameLocal("Rayon de givre")
				e.SetTraits([]string{"cantrip", "cold"})
				return e
			},
			contains: []string{"Tour de magie 1", "[cantrip] [cold]"},
		},
		{
			name: "focus spell",
			entry: func() *core.ResolvedEntry {
				e := &core.ResolvedEntry{ID: "f1", Kind: core.KindSpell, Details: core.SpellDetails{Rank: 2}}
				e.SetNameLocal("Lumière guidante")
				e.SetTraits([]string{"focus"})
				return e
			},
			contains: []string{"Sort focalisé 2"},
		},
		{
			name: "creature",
			entry: func() *core.ResolvedEntry {
				e := &core.ResolvedEntry{
					ID:           "gob",
					NameOriginal: "Goblin Warrior",
					Kind:         core.KindCreature,
					Details: core.CreatureDetails{
						Level:      -1,
						Size:       "petite",
						Perception: 2,
						Senses:     []string{"vision dans le noir"},
						Languages:  []string{"commun", "gobelin"},
						Skills:     []core.Modifier{{Name: "Acrobaties", Value: 5}},
						Abilities:  []core.Modifier{{Name: "For", Value: 0}, {Name: "Dex", Value: 3}},
						AC:         16,
						Fortitude:  5,
						Reflex:     7,
						Will:       3,
						HP:         6,
						Weaknesses: []string{"feu 2"},
						Speed:      "7,5 m",
					},
				}
				e.SetNameLocal("Guerrier gobelin")
				return e
			},
			contains: []string{
				"Créature -1", "Taille petite", "Perception +2; vision dans le noir",
				"Langues commun, gobelin", "Compétences Acrobaties +5", "For +0, Dex +3",
				"CA 16", "Réf +7; Vig +5; Vol +3", "PV 6", "Faiblesses feu 2", "Vitesse 7,5 m",
				"Nom: original",
			},
			excludes: []string{"Immunités", "Résistances"},
		},
		{
			name: "feat",
			entry: func() *core.ResolvedEntry {
				e := &core.ResolvedEntry{
					ID:   "feat1",
					Kind: core.KindFeat,
					Details: core.FeatDetails{
						Level:         4,
						HasLevel:      true,
						Actions:       "reaction",
						Prerequisites: []string{"expert en Athlétisme", "Force 14"},
						Trigger:       "Un ennemi vous rate.",
					},
				}
				e.SetNameLocal("Riposte")
				return e
			},
			contains: []string{"Don 4", "Niveau 4", "Actions ↺", "Prérequis expert en Athlétisme; Force 14", "Déclencheur Un ennemi vous rate."},
			excludes: []string{"Fréquence"},
		},
		{
			name: "action without level",
			entry: func() *core.ResolvedEntry {
				e := &core.ResolvedEntry{ID: "a1", Kind: core.KindAction, Details: core.FeatDetails{Actions: "1"}}
				e.SetNameLocal("Frapper")
				return e
			},
			contains: []string{"Action", "Actions ◆"},
			excludes: []string{"Niveau", "Action 0"},
		},
		{
			name: "item",
			entry: func() *core.ResolvedEntry {
				e := &core.ResolvedEntry{
					ID:   "ls",
					Kind: core.KindWeapon,
					Details: core.ItemDetails{
						Level:  0,
						Price:  "1 po",
						Bulk:   "1",
						Hands:  "1",
						Damage: "1d8 tranchant",
					},
				}
				e.SetNameLocal("Épée longue")
				return e
			},
			contains: []string{"ÉPÉE LONGUE", "Arme 0", "Prix 1 po", "Encombrement 1", "Dégâts 1d8 tranchant"},
			excludes: []string{"Utilisation"},
		},
		{
			name: "no details",
			entry: func() *core.ResolvedEntry {
				e := &core.ResolvedEntry{ID: "r1", Kind: core.KindCondition, DescriptionLocal: "<p>Vous êtes à terre.</p>"}
				e.SetNameLocal("À terre")
				return e
			},
			contains: []string{"État", "Vous êtes à terre."},
			excludes: []string{"Niveau", "Prix"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestRenderer(t)
			require.NoError(t, r.Full(tt.entry()))

			got := out.String()
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestParagraphs_Wrapping(t *testing.T) {
	r, _ := newTestRenderer(t, WithWidth(50))
	text := core.PlainText(fireball().DescriptionLocal + "<p>Second paragraphe.</p>")

	body, err := r.paragraphs(text)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	assert.Greater(t, len(lines), 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, indent), line)
		assert.LessOrEqual(t, len([]rune(line)), 50, line)
	}
	assert.Equal(t, indent+"Second paragraphe.", lines[len(lines)-1])
}

func TestFull_Markdown(t *testing.T) {
	r, out := newTestRenderer(t, WithMarkdown(true))
	require.NoError(t, r.Full(fireball()))

	got := out.String()
	assert.Contains(t, got, "explosion")
	assert.Contains(t, got, "Incantation ◆◆")
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"empty", "", 120, ""},
		{"short", "<p>Un coup.</p>", 120, "Un coup."},
		{"flattened", "<p>Un</p><p>deux</p>", 120, "Un deux"},
		{"truncated", "abcdefghijklmnop", 10, "abcdefg..."},
		{"exact", "abcdefghij", 10, "abcdefghij"},
		{"accents count as cells", "éééééééééééé", 10, "ééééééé..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Excerpt(tt.input, tt.width))
		})
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "◆◆◆", ActionGlyph("3"))
	assert.Equal(t, "◇", ActionGlyph("free"))
	assert.Equal(t, "↺", ActionGlyph(" Reaction "))
	assert.Equal(t, "1 minute", ActionGlyph("1 minute"))

	assert.Equal(t, "+0", Modifier(0))
	assert.Equal(t, "+4", Modifier(4))
	assert.Equal(t, "-2", Modifier(-2))

	assert.Equal(t, "Créature", KindLabel(core.KindCreature))
	assert.Equal(t, "Mystery", KindLabel(core.Kind("mystery")))
	assert.Equal(t, "?", KindLabel(""))
}
