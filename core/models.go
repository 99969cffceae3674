package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// Kind is the classified category of a compendium entry.
// Kinds are assigned by ClassifyKind and used as the index's type buckets.
type Kind string

const (
	KindCreature   Kind = "creature"
	KindHazard     Kind = "hazard"
	KindSpell      Kind = "spell"
	KindFeat       Kind = "feat"
	KindAction     Kind = "action"
	KindEquipment  Kind = "equipment"
	KindTreasure   Kind = "treasure"
	KindContainer  Kind = "container"
	KindWeapon     Kind = "weapon"
	KindArmor      Kind = "armor"
	KindShield     Kind = "shield"
	KindConsumable Kind = "consumable"
	KindAncestry   Kind = "ancestry"
	KindHeritage   Kind = "heritage"
	KindBackground Kind = "background"
	KindClass      Kind = "class"
	KindArchetype  Kind = "archetype"
	KindDeity      Kind = "deity"
	KindEffect     Kind = "effect"
	KindCondition  Kind = "condition"
	KindFamiliar   Kind = "familiar"
	KindVehicle    Kind = "vehicle"
	KindCompanion  Kind = "companion"
	KindEidolon    Kind = "eidolon"
	KindRule       Kind = "rule"
	KindDomain     Kind = "domain"
	KindTrait      Kind = "trait"
	KindAbility    Kind = "ability"
	KindMaterial   Kind = "material"
	KindGlossary   Kind = "glossary"
	KindOther      Kind = "other"
)

// Tradition is a spellcasting tradition.
type Tradition string

const (
	TraditionArcane Tradition = "arcane"
	TraditionDivine Tradition = "divine"
	TraditionOccult Tradition = "occult"
	TraditionPrimal Tradition = "primal"
)

// Traditions lists every known tradition in display order.
var Traditions = []Tradition{TraditionArcane, TraditionDivine, TraditionOccult, TraditionPrimal}

// ParseTradition maps a raw source value onto a known tradition.
func ParseTradition(s string) (Tradition, bool) {
	t := Tradition(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Traditions, t) {
		return t, true
	}
	return "", false
}

// Field names a translatable text field of an entry.
type Field int

const (
	FieldName Field = iota + 1
	FieldDescription
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldDescription:
		return "description"
	}
	return "unknown"
}

// Tier identifies which translation source supplied a text field.
type Tier int

const (
	// TierOriginal means the original-language text was used.
	TierOriginal Tier = iota
	// TierDocument is a long-form translated document keyed by id and pack.
	TierDocument
	// TierTable is a short string from a flat language table keyed by id.
	TierTable
)

func (t Tier) String() string {
	switch t {
	case TierDocument:
		return "tier1"
	case TierTable:
		return "tier2"
	}
	return "original"
}

// Translated reports whether the text came from a translation source.
func (t Tier) Translated() bool {
	return t == TierDocument || t == TierTable
}

// Provenance records which tier supplied each text field.
// Name and description resolve independently.
type Provenance struct {
	Name        Tier
	Description Tier
}

// RawEntry is one record of the original-language corpus.
type RawEntry struct {
	ID                  string
	Kind                string // raw document type, e.g. "npc", "spell", "weapon"
	PackKey             string
	NameOriginal        string
	DescriptionOriginal string
	Fields              Fields // semi-structured "system" attributes
}

// ResolvedEntry is the merged bilingual record used by everything downstream.
type ResolvedEntry struct {
	ID                  string
	NameLocal           string
	NameOriginal        string
	NameNormalized      string
	DescriptionLocal    string
	DescriptionOriginal string
	Kind                Kind
	SourceType          string
	PackKey             string
	Traits              []string
	Rarity              string
	Traditions          []Tradition
	TraditionUnset      bool
	Provenance          Provenance
	Details             Details
}

// SetNameLocal replaces the local name and recomputes its normalized form.
func (e *ResolvedEntry) SetNameLocal(name string) {
	e.NameLocal = name
	e.NameNormalized = Normalize(name)
}

// SetTraits stores traits as a sorted set.
func (e *ResolvedEntry) SetTraits(traits []string) {
	e.Traits = normalizeSet(traits)
}

// SetTraditions stores traditions as a sorted set.
func (e *ResolvedEntry) SetTraditions(traditions []Tradition) {
	if len(traditions) == 0 {
		e.Traditions = nil
		return
	}
	out := slices.Clone(traditions)
	slices.Sort(out)
	e.Traditions = slices.Compact(out)
}

// Translated reports whether any text field came from a translation.
func (e *ResolvedEntry) Translated() bool {
	return e.Provenance.Name.Translated() || e.Provenance.Description.Translated()
}

// HasTrait reports whether the entry carries the trait, compared in normalized form.
func (e *ResolvedEntry) HasTrait(trait string) bool {
	want := Normalize(trait)
	for _, t := range e.Traits {
		if Normalize(t) == want {
			return true
		}
	}
	return false
}

// Level returns the entry level when its details carry one.
func (e *ResolvedEntry) Level() (int, bool) {
	if e.Details == nil {
		return 0, false
	}
	return e.Details.EntryLevel()
}

func normalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Checksum is a content fingerprint for a snapshot.
type Checksum uint64

// ChecksumOf hashes entry ids and local names in order using BLAKE2b.
// Identical corpora produce identical checksums.
func ChecksumOf(entries []*ResolvedEntry) Checksum {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	for _, e := range entries {
		h.Write([]byte(e.ID))
		h.Write([]byte{0})
		h.Write([]byte(e.NameLocal))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return Checksum(binary.LittleEndian.Uint64(sum))
}
