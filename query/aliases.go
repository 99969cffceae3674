package query

import "github.com/poiesic/compendium/core"

// filterKey identifies a value-taking filter.
type filterKey int

const (
	filterPack filterKey = iota + 1
	filterTrait
	filterTradition
)

var filterAliases = map[string]filterKey{
	"pack":      filterPack,
	"trait":     filterTrait,
	"tradition": filterTradition,
	"trad":      filterTradition,
}

// DefaultKindAliases maps normalized keywords, French and English, to kinds.
var DefaultKindAliases = map[string]core.Kind{
	"creature":    core.KindCreature,
	"monstre":     core.KindCreature,
	"npc":         core.KindCreature,
	"pnj":         core.KindCreature,
	"sort":        core.KindSpell,
	"spell":       core.KindSpell,
	"don":         core.KindFeat,
	"feat":        core.KindFeat,
	"equipement":  core.KindEquipment,
	"equip":       core.KindEquipment,
	"objet":       core.KindEquipment,
	"item":        core.KindEquipment,
	"arme":        core.KindWeapon,
	"weapon":      core.KindWeapon,
	"armure":      core.KindArmor,
	"armor":       core.KindArmor,
	"bouclier":    core.KindShield,
	"shield":      core.KindShield,
	"consommable": core.KindConsumable,
	"consumable":  core.KindConsumable,
	"action":      core.KindAction,
	"danger":      core.KindHazard,
	"hazard":      core.KindHazard,
	"etat":        core.KindCondition,
	"condition":   core.KindCondition,
	"classe":      core.KindClass,
	"class":       core.KindClass,
	"ascendance":  core.KindAncestry,
	"ancestry":    core.KindAncestry,
	"historique":  core.KindBackground,
	"background":  core.KindBackground,
	"archetype":   core.KindArchetype,
	"divinite":    core.KindDeity,
	"deity":       core.KindDeity,
	"compagnon":   core.KindCompanion,
	"companion":   core.KindCompanion,
	"regle":       core.KindRule,
	"rule":        core.KindRule,
	"traitdef":    core.KindTrait,
	"definition":  core.KindTrait,
	"capacite":    core.KindAbility,
	"ability":     core.KindAbility,
	"npca":        core.KindAbility,
	"materiau":    core.KindMaterial,
	"material":    core.KindMaterial,
	"glossaire":   core.KindGlossary,
	"gloss":       core.KindGlossary,
	"ref":         core.KindGlossary,
}

// DefaultTraditionNames maps normalized tradition names, English and
// French, to traditions.
var DefaultTraditionNames = map[string]core.Tradition{
	"arcane":     core.TraditionArcane,
	"arcanique":  core.TraditionArcane,
	"divine":     core.TraditionDivine,
	"divin":      core.TraditionDivine,
	"occult":     core.TraditionOccult,
	"occulte":    core.TraditionOccult,
	"primal":     core.TraditionPrimal,
	"primordial": core.TraditionPrimal,
}
