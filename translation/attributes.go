package translation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/poiesic/compendium/core"
)

// applyAttributes copies the untranslated attributes of raw fields onto e.
func applyAttributes(e *core.ResolvedEntry, f core.Fields) {
	e.SetTraits(f.Strings("traits", "value"))
	e.Rarity, _ = f.String("traits", "rarity")

	traditions, present := extractTraditions(f)
	e.SetTraditions(traditions)
	e.TraditionUnset = !present && e.Kind == core.KindSpell

	e.Details = extractDetails(e.Kind, f)
}

// extractTraditions reads traditions from the current schema
// (traits.traditions) or the legacy one (traditions.value) and reports
// whether either path exists. Unknown values are dropped.
func extractTraditions(f core.Fields) ([]core.Tradition, bool) {
	var raw []string
	switch {
	case f.Has("traits", "traditions"):
		raw = f.Strings("traits", "traditions")
	case f.Has("traditions"):
		raw = f.Strings("traditions")
	default:
		return nil, false
	}

	out := make([]core.Tradition, 0, len(raw))
	for _, v := range raw {
		if t, ok := core.ParseTradition(v); ok {
			out = append(out, t)
		}
	}
	return out, true
}

func extractDetails(kind core.Kind, f core.Fields) core.Details {
	if f == nil {
		return nil
	}
	switch kind {
	case core.KindCreature:
		return creatureDetails(f)
	case core.KindSpell:
		return spellDetails(f)
	case core.KindFeat, core.KindAction:
		return featDetails(f)
	case core.KindEquipment, core.KindWeapon, core.KindArmor, core.KindShield,
		core.KindConsumable, core.KindTreasure, core.KindContainer:
		return itemDetails(f)
	}
	return nil
}

var abilityOrder = []string{"str", "dex", "con", "int", "wis", "cha"}

func creatureDetails(f core.Fields) core.CreatureDetails {
	var d core.CreatureDetails
	d.Level, _ = f.Int("details", "level")
	d.Size, _ = f.String("traits", "size")

	if v, ok := f.Int("perception", "mod"); ok {
		d.Perception = v
		d.Senses = f.Strings("perception", "senses")
	} else {
		d.Perception, _ = f.Int("attributes", "perception")
		d.Senses = f.Strings("traits", "senses")
	}

	d.Languages = f.Strings("details", "languages")
	if len(d.Languages) == 0 {
		d.Languages = f.Strings("traits", "languages")
	}

	if skills, ok := f.Object("skills"); ok {
		names := make([]string, 0, len(skills))
		for name := range skills {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			v, ok := skills.Int(name, "base")
			if !ok {
				v, ok = skills.Int(name)
			}
			if ok {
				d.Skills = append(d.Skills, core.Modifier{Name: name, Value: v})
			}
		}
	}

	for _, ab := range abilityOrder {
		if v, ok := f.Int("abilities", ab, "mod"); ok {
			d.Abilities = append(d.Abilities, core.Modifier{Name: ab, Value: v})
		}
	}

	d.AC, _ = f.Int("attributes", "ac")
	d.Fortitude, _ = f.Int("saves", "fortitude")
	d.Reflex, _ = f.Int("saves", "reflex")
	d.Will, _ = f.Int("saves", "will")
	d.HP, _ = f.Int("attributes", "hp", "max")
	d.Immunities = f.Strings("attributes", "immunities")
	d.Resistances = f.Strings("attributes", "resistances")
	d.Weaknesses = f.Strings("attributes", "weaknesses")
	d.Speed = speed(f)
	return d
}

func speed(f core.Fields) string {
	var parts []string
	if v, ok := f.Int("attributes", "speed"); ok {
		parts = append(parts, fmt.Sprintf("%d ft", v))
	}
	for _, other := range f.Strings("attributes", "speed", "otherSpeeds") {
		parts = append(parts, other+" ft")
	}
	return strings.Join(parts, ", ")
}

func spellDetails(f core.Fields) core.SpellDetails {
	var d core.SpellDetails
	d.Rank, _ = f.Int("level")
	d.Actions, _ = f.String("time")
	d.Range, _ = f.String("range")
	d.Targets, _ = f.String("target")
	d.Duration, _ = f.String("duration")

	if area, ok := f.Object("area"); ok {
		typ, _ := area.String("type")
		size, hasSize := area.Int("value")
		switch {
		case typ != "" && hasSize:
			d.Area = fmt.Sprintf("%d-foot %s", size, typ)
		case typ != "":
			d.Area = typ
		}
	}

	if save, ok := f.String("defense", "save", "statistic"); ok && save != "" {
		d.Defense = save
		if basic, _ := f.Lookup("defense", "save", "basic"); basic == true {
			d.Defense = "basic " + save
		}
	} else if save, ok := f.String("save", "value"); ok && save != "" {
		d.Defense = save
		if basic, _ := f.String("save", "basic"); basic != "" {
			d.Defense = basic + " " + save
		}
	}
	return d
}

func featDetails(f core.Fields) core.FeatDetails {
	var d core.FeatDetails
	d.Level, d.HasLevel = f.Int("level")

	actionType, _ := f.String("actionType")
	switch actionType {
	case "action":
		if n, ok := f.Int("actions"); ok {
			d.Actions = fmt.Sprintf("%d", n)
		}
	case "reaction", "free":
		d.Actions = actionType
	}

	d.Prerequisites = f.Strings("prerequisites")
	d.Trigger, _ = f.String("trigger")

	if freq, ok := f.Object("frequency"); ok {
		limit, hasLimit := freq.Int("max")
		per, _ := freq.String("per")
		if hasLimit && per != "" {
			d.Frequency = fmt.Sprintf("%d/%s", limit, per)
		}
	}
	return d
}

var denominations = []string{"pp", "gp", "sp", "cp"}

func itemDetails(f core.Fields) core.ItemDetails {
	var d core.ItemDetails
	d.Level, _ = f.Int("level")

	if coins, ok := f.Object("price", "value"); ok {
		var parts []string
		for _, denom := range denominations {
			if n, ok := coins.Int(denom); ok && n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", n, denom))
			}
		}
		d.Price = strings.Join(parts, ", ")
	}

	bulk, ok := f.String("bulk")
	if !ok {
		bulk, _ = f.String("weight")
	}
	d.Bulk = bulkLabel(bulk)

	d.Usage, _ = f.String("usage")
	d.Hands = handsFor(d.Usage)

	if dmg, ok := f.Object("damage"); ok {
		dice, _ := dmg.Int("dice")
		die, _ := dmg.String("die")
		typ, _ := dmg.String("damageType")
		if dice > 0 && die != "" {
			d.Damage = strings.TrimSpace(fmt.Sprintf("%d%s %s", dice, die, typ))
		}
	}
	return d
}

// bulkLabel renders light bulk as "L" and no bulk as "-".
func bulkLabel(bulk string) string {
	switch bulk {
	case "":
		return ""
	case "0":
		return "-"
	case "0.1", "L", "l":
		return "L"
	}
	return bulk
}

func handsFor(usage string) string {
	switch usage {
	case "held-in-one-hand":
		return "1"
	case "held-in-two-hands":
		return "2"
	case "held-in-one-plus-hands":
		return "1+"
	}
	return ""
}
