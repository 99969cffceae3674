package source

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"github.com/poiesic/compendium/core"
)

// Derived is an entry synthesized from a language table rather than read
// from a pack.
type Derived struct {
	ID          string
	Kind        string
	Pack        string
	Name        string
	Description string
}

// LanguageRule derives one family of entries from a language table.
// Rules run on both tables: the English run yields corpus entries, the
// French run yields their tier-2 translations under the same ids.
type LanguageRule struct {
	Name   string
	Derive func(t *LanguageTable) []Derived
}

// DefaultRules derives traits, conditions, precious materials, NPC ability
// glossary entries and general glossary terms.
var DefaultRules = []LanguageRule{
	{Name: "traits", Derive: deriveTraits},
	{Name: "conditions", Derive: deriveConditions},
	{Name: "materials", Derive: deriveMaterials},
	{Name: "npc-abilities", Derive: deriveAbilities},
	{Name: "glossary", Derive: deriveGlossary},
}

// Derive applies rules in order. Within a rule entries are sorted by id;
// a repeated id keeps its first derivation.
func Derive(t *LanguageTable, rules []LanguageRule) []Derived {
	if t == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []Derived
	for _, rule := range rules {
		derived := rule.Derive(t)
		slices.SortFunc(derived, func(a, b Derived) int { return strings.Compare(a.ID, b.ID) })
		for _, d := range derived {
			if _, dup := seen[d.ID]; dup {
				continue
			}
			seen[d.ID] = struct{}{}
			out = append(out, d)
		}
	}
	return out
}

func deriveTraits(t *LanguageTable) []Derived {
	pf := t.Children("PF2E")
	var out []Derived
	for _, key := range sortedKeys(pf) {
		suffix, ok := strings.CutPrefix(key, "TraitDescription")
		if !ok || suffix == "" {
			continue
		}
		name := pf["Trait"+suffix]
		if name == "" {
			name = suffix
		}
		out = append(out, Derived{
			ID:          "trait-" + slug.Make(suffix),
			Kind:        string(core.KindTrait),
			Pack:        "traits",
			Name:        name,
			Description: pf[key],
		})
	}
	return out
}

func deriveConditions(t *LanguageTable) []Derived {
	pf := t.Children("PF2E")
	var out []Derived
	for _, key := range sortedKeys(pf) {
		suffix, ok := strings.CutPrefix(key, "ConditionType")
		if !ok || suffix == "" {
			continue
		}
		out = append(out, Derived{
			ID:   "condition-" + slug.Make(suffix),
			Kind: string(core.KindCondition),
			Pack: "conditions",
			Name: pf[key],
		})
	}
	return out
}

// deriveMaterials keeps only materials with a description.
func deriveMaterials(t *LanguageTable) []Derived {
	pf := t.Children("PF2E")
	var out []Derived
	for _, key := range sortedKeys(pf) {
		rest, ok := strings.CutPrefix(key, "PreciousMaterial")
		if !ok {
			continue
		}
		material, ok := strings.CutSuffix(rest, "Description")
		if !ok || material == "" || strings.Contains(material, "Grade") || strings.Contains(material, "Label") {
			continue
		}
		name := pf["PreciousMaterial"+material]
		if name == "" {
			name = material
		}
		out = append(out, Derived{
			ID:          "material-" + slug.Make(material),
			Kind:        string(core.KindMaterial),
			Pack:        "materials",
			Name:        name,
			Description: pf[key],
		})
	}
	return out
}

// deriveAbilities names glossary abilities after their attack effect label
// when one exists ("Grab" is "Agrippement" in French).
func deriveAbilities(t *LanguageTable) []Derived {
	effects := make(map[string]string)
	for key, value := range t.Children("PF2E") {
		if suffix, ok := strings.CutPrefix(key, "AttackEffect"); ok && suffix != "" {
			effects[strings.ToLower(suffix)] = value
		}
	}

	glossary := t.Children("PF2E.NPC.Abilities.Glossary")
	var out []Derived
	for _, key := range sortedKeys(glossary) {
		name := effects[strings.ToLower(key)]
		if name == "" {
			name = key
		}
		out = append(out, Derived{
			ID:          "npc-ability-" + slug.Make(key),
			Kind:        string(core.KindAbility),
			Pack:        "npc-abilities",
			Name:        name,
			Description: glossary[key],
		})
	}
	return out
}

type glossaryCategory struct {
	source string // key prefix under PF2E, or a nested section when nested is set
	nested bool
	id     string
	labels map[Lang]string
}

var glossaryCategories = []glossaryCategory{
	{source: "ActorSize", id: "size", labels: map[Lang]string{LangEnglish: "Size", LangFrench: "Taille"}},
	{source: "ProficiencyLevel", id: "proficiency", labels: map[Lang]string{LangEnglish: "Proficiency Rank", LangFrench: "Niveau de maîtrise"}},
	{source: "DCAdjustment", id: "dc", labels: map[Lang]string{LangEnglish: "DC Adjustment", LangFrench: "Ajustement DD"}},
	{source: "ActionType", id: "action-type", labels: map[Lang]string{LangEnglish: "Action Type", LangFrench: "Type d'action"}},
	{source: "PreparationType", id: "preparation", labels: map[Lang]string{LangEnglish: "Preparation Type", LangFrench: "Type de préparation"}},
	{source: "WeaponGroup", id: "weapon-group", labels: map[Lang]string{LangEnglish: "Weapon Group", LangFrench: "Groupe d'armes"}},
	{source: "ArmorGroup", id: "armor-group", labels: map[Lang]string{LangEnglish: "Armor Group", LangFrench: "Groupe d'armures"}},
	{source: "WeaponType", id: "weapon-type", labels: map[Lang]string{LangEnglish: "Weapon Type", LangFrench: "Type d'arme"}},
	{source: "ArmorType", id: "armor-type", labels: map[Lang]string{LangEnglish: "Armor Type", LangFrench: "Type d'armure"}},
	{source: "Currency", id: "currency", labels: map[Lang]string{LangEnglish: "Currency", LangFrench: "Devise"}},
	{source: "PF2E.Skill", nested: true, id: "skill", labels: map[Lang]string{LangEnglish: "Skill", LangFrench: "Compétence"}},
	{source: "PF2E.Damage.IWR.Type", nested: true, id: "damage", labels: map[Lang]string{LangEnglish: "Damage Type", LangFrench: "Type de dégât"}},
	{source: "PF2E.Area.Shape", nested: true, id: "area", labels: map[Lang]string{LangEnglish: "Area Shape", LangFrench: "Forme de zone"}},
}

func deriveGlossary(t *LanguageTable) []Derived {
	pf := t.Children("PF2E")
	var out []Derived
	for _, cat := range glossaryCategories {
		var terms map[string]string
		if cat.nested {
			terms = t.Children(cat.source)
		} else {
			terms = make(map[string]string)
			for key, value := range pf {
				suffix, ok := strings.CutPrefix(key, cat.source)
				if !ok || suffix == "" || skipGlossaryKey(suffix) {
					continue
				}
				terms[suffix] = value
			}
		}

		description := glossaryDescription(t.Lang, cat)
		for _, term := range sortedKeys(terms) {
			if strings.TrimSpace(terms[term]) == "" {
				continue
			}
			out = append(out, Derived{
				ID:          fmt.Sprintf("glossary-%s-%s", cat.id, slug.Make(term)),
				Kind:        string(core.KindGlossary),
				Pack:        "glossary",
				Name:        terms[term],
				Description: description,
			})
		}
	}
	return out
}

func skipGlossaryKey(suffix string) bool {
	return strings.Contains(suffix, "Label") || strings.Contains(suffix, "Header") || strings.Contains(suffix, "Title")
}

func glossaryDescription(lang Lang, cat glossaryCategory) string {
	if lang == LangFrench {
		return "Catégorie : " + cat.labels[LangFrench]
	}
	return "Category: " + cat.labels[LangEnglish]
}

// TableSource is the tier-2 lookup: entries derived from the translated
// language table, keyed by id.
type TableSource struct {
	byID map[string]Derived
}

// NewTableSource derives entries from a translated table. A nil table
// yields an empty source.
func NewTableSource(t *LanguageTable, rules []LanguageRule) *TableSource {
	s := &TableSource{byID: make(map[string]Derived)}
	for _, d := range Derive(t, rules) {
		s.byID[d.ID] = d
	}
	return s
}

// Len returns the number of derived entries.
func (s *TableSource) Len() int {
	return len(s.byID)
}

// Lookup returns the translated field of an entry.
func (s *TableSource) Lookup(id string, field core.Field) (string, bool) {
	d, ok := s.byID[id]
	if !ok {
		return "", false
	}
	switch field {
	case core.FieldName:
		return d.Name, true
	case core.FieldDescription:
		return d.Description, true
	}
	return "", false
}

// LanguageReader yields the entries derived from the original-language table.
type LanguageReader struct {
	table  *LanguageTable
	rules  []LanguageRule
	logger *slog.Logger
}

var _ Reader = (*LanguageReader)(nil)

// NewLanguageReader creates a reader over the original-language table
// using DefaultRules.
func NewLanguageReader(table *LanguageTable, opts ...Option) (*LanguageReader, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &LanguageReader{table: table, rules: DefaultRules, logger: o.logger}, nil
}

// Name implements Reader.
func (r *LanguageReader) Name() string { return "language" }

// Entries implements Reader.
func (r *LanguageReader) Entries(ctx context.Context) ([]*core.RawEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.table == nil {
		return nil, fmt.Errorf("%w: no language table", core.ErrNoSources)
	}

	derived := Derive(r.table, r.rules)
	entries := make([]*core.RawEntry, len(derived))
	for i, d := range derived {
		entries[i] = &core.RawEntry{
			ID:                  d.ID,
			Kind:                d.Kind,
			PackKey:             d.Pack,
			NameOriginal:        d.Name,
			DescriptionOriginal: d.Description,
		}
	}
	r.logger.Info("derived language entries", "lang", r.table.Lang, "entries", len(entries))
	return entries, nil
}
