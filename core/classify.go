package core

import "strings"

// documentKinds maps raw Foundry document types to kinds.
var documentKinds = map[string]Kind{
	"npc":        KindCreature,
	"creature":   KindCreature,
	"character":  KindCreature,
	"hazard":     KindHazard,
	"spell":      KindSpell,
	"feat":       KindFeat,
	"action":     KindAction,
	"equipment":  KindEquipment,
	"treasure":   KindTreasure,
	"backpack":   KindContainer,
	"weapon":     KindWeapon,
	"armor":      KindArmor,
	"shield":     KindShield,
	"consumable": KindConsumable,
	"ancestry":   KindAncestry,
	"heritage":   KindHeritage,
	"background": KindBackground,
	"class":      KindClass,
	"archetype":  KindArchetype,
	"deity":      KindDeity,
	"effect":     KindEffect,
	"condition":  KindCondition,
	"familiar":   KindFamiliar,
	"vehicle":    KindVehicle,
	"trait":      KindTrait,
	"ability":    KindAbility,
	"material":   KindMaterial,
	"glossary":   KindGlossary,
	"rule":       KindRule,
	"domain":     KindDomain,
}

// packKinds maps pack name fragments to kinds. Order matters: the first
// fragment contained in the pack name wins.
var packKinds = []struct {
	fragment string
	kind     Kind
}{
	{"pathfinder-bestiary", KindCreature},
	{"bestiary", KindCreature},
	{"monster-core", KindCreature},
	{"npc", KindCreature},
	{"hazards", KindHazard},
	{"spells", KindSpell},
	{"feats", KindFeat},
	{"actions", KindAction},
	{"equipment", KindEquipment},
	{"weapons", KindWeapon},
	{"armor", KindArmor},
	{"consumables", KindConsumable},
	{"ancestries", KindAncestry},
	{"heritages", KindHeritage},
	{"backgrounds", KindBackground},
	{"classes", KindClass},
	{"archetypes", KindArchetype},
	{"deities", KindDeity},
	{"conditions", KindCondition},
	{"familiar", KindFamiliar},
	{"vehicles", KindVehicle},
	{"animal-companions", KindCompanion},
	{"eidolons", KindEidolon},
}

// ClassifyKind assigns a kind from the raw document type, falling back to
// structural hints in fields and then to the pack name.
func ClassifyKind(rawKind, packKey string, fields Fields) Kind {
	if k, ok := documentKinds[strings.ToLower(rawKind)]; ok {
		return k
	}
	switch {
	case fields.Has("attributes", "hp"):
		return KindCreature
	case fields.Has("traditions"):
		return KindSpell
	case fields.Has("prerequisites"):
		return KindFeat
	case fields.Has("price"):
		return KindEquipment
	}
	return ClassifyPack(packKey)
}

// ClassifyPack assigns a kind from a pack name alone.
func ClassifyPack(packKey string) Kind {
	p := strings.ToLower(packKey)
	p = strings.TrimSuffix(p, ".json")
	p = strings.ReplaceAll(p, "-srd", "")
	for _, pk := range packKinds {
		if strings.Contains(p, pk.fragment) {
			return pk.kind
		}
	}
	return KindOther
}
