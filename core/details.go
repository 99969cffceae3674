package core

import com "github.com/mus-format/common-go"

// Data type markers written ahead of each Details variant in the snapshot.
const (
	CreatureDetailsDTM com.DTM = iota + 1
	SpellDetailsDTM
	FeatDetailsDTM
	ItemDetailsDTM
)

// Details is the kind-specific attribute set of an entry.
// Each variant carries only the attributes relevant to its kind;
// kinds without a stat block carry nil Details.
type Details interface {
	EntryLevel() (int, bool)
}

// Modifier is a signed bonus such as a save or skill modifier.
type Modifier struct {
	Name  string
	Value int
}

// CreatureDetails holds a creature or companion stat block.
type CreatureDetails struct {
	Level       int
	Size        string
	Perception  int
	Senses      []string
	Languages   []string
	Skills      []Modifier
	Abilities   []Modifier
	AC          int
	Fortitude   int
	Reflex      int
	Will        int
	HP          int
	Immunities  []string
	Resistances []string
	Weaknesses  []string
	Speed       string
}

func (d CreatureDetails) EntryLevel() (int, bool) { return d.Level, true }

// SpellDetails holds spell casting data.
type SpellDetails struct {
	Rank     int
	Actions  string
	Range    string
	Area     string
	Targets  string
	Duration string
	Defense  string
}

func (d SpellDetails) EntryLevel() (int, bool) { return d.Rank, true }

// FeatDetails holds feat and action data.
type FeatDetails struct {
	Level         int
	HasLevel      bool
	Actions       string
	Prerequisites []string
	Trigger       string
	Frequency     string
}

func (d FeatDetails) EntryLevel() (int, bool) { return d.Level, d.HasLevel }

// ItemDetails holds equipment, weapon, armor and consumable data.
type ItemDetails struct {
	Level  int
	Price  string
	Bulk   string
	Usage  string
	Damage string
	Hands  string
}

func (d ItemDetails) EntryLevel() (int, bool) { return d.Level, true }

var (
	_ Details = CreatureDetails{}
	_ Details = SpellDetails{}
	_ Details = FeatDetails{}
	_ Details = ItemDetails{}
)
