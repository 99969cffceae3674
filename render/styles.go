package render

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Accent (soft purple): titles, highlights
// - Muted (gray): secondary info, ids, rules
// - Rarity colors follow the game's convention: uncommon, rare, unique
const (
	colorAccent   = lipgloss.Color("#A78BFA")
	colorMuted    = lipgloss.Color("#6C7086")
	colorLabel    = lipgloss.Color("2")
	colorLevel    = lipgloss.Color("3")
	colorPack     = lipgloss.Color("5")
	colorTrait    = lipgloss.Color("6")
	colorWarning  = lipgloss.Color("1")
	colorUncommon = lipgloss.Color("3")
	colorRare     = lipgloss.Color("5")
	colorUnique   = lipgloss.Color("1")
)

// Styles holds every style used by a Renderer.
// Styles are created from a lipgloss.Renderer so that the color profile
// follows the writer they are rendered to.
type Styles struct {
	Title        lipgloss.Style
	Heading      lipgloss.Style
	Original     lipgloss.Style
	Kind         lipgloss.Style
	Level        lipgloss.Style
	Pack         lipgloss.Style
	Untranslated lipgloss.Style
	Muted        lipgloss.Style
	Label        lipgloss.Style
	Trait        lipgloss.Style
	Rule         lipgloss.Style
	Rarity       map[string]lipgloss.Style
}

// NewStyles builds the palette for r.
func NewStyles(r *lipgloss.Renderer) *Styles {
	muted := r.NewStyle().Foreground(colorMuted)
	return &Styles{
		Title:        r.NewStyle().Foreground(colorAccent).Bold(true),
		Heading:      r.NewStyle().Bold(true),
		Original:     muted,
		Kind:         muted,
		Level:        r.NewStyle().Foreground(colorLevel),
		Pack:         r.NewStyle().Foreground(colorPack),
		Untranslated: r.NewStyle().Foreground(colorWarning).Bold(true),
		Muted:        muted,
		Label:        r.NewStyle().Foreground(colorLabel),
		Trait:        r.NewStyle().Foreground(colorTrait),
		Rule:         r.NewStyle().Foreground(colorAccent),
		Rarity: map[string]lipgloss.Style{
			"uncommon": r.NewStyle().Foreground(colorUncommon),
			"rare":     r.NewStyle().Foreground(colorRare),
			"unique":   r.NewStyle().Foreground(colorUnique),
		},
	}
}

// RarityStyle returns the style for a rarity, falling back to the trait style.
func (s *Styles) RarityStyle(rarity string) lipgloss.Style {
	if style, ok := s.Rarity[rarity]; ok {
		return style
	}
	return s.Trait
}
