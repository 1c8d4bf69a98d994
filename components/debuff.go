package components

import "github.com/yohamta/donburi"

type DebuffKind int

const (
	DebuffPoison DebuffKind = iota
	DebuffFire
)

func (k DebuffKind) String() string {
	switch k {
	case DebuffPoison:
		return "poison"
	case DebuffFire:
		return "fire"
	}
	return "unknown"
}

// ParseDebuff maps a config name to a kind.
func ParseDebuff(name string) (DebuffKind, bool) {
	switch name {
	case "poison":
		return DebuffPoison, true
	case "fire":
		return DebuffFire, true
	}
	return 0, false
}

type Debuff struct {
	Kind DebuffKind
	// TicksLeft counts remaining damage ticks; TickTimer the frames to the next one.
	TicksLeft int
	TickTimer int
}

type DebuffsData struct {
	Active []Debuff
}

// Apply adds a debuff, or refreshes it if one of the same kind is running.
func (d *DebuffsData) Apply(kind DebuffKind, ticks, tickFrames int) {
	for i := range d.Active {
		if d.Active[i].Kind == kind {
			d.Active[i].TicksLeft = ticks
			return
		}
	}
	d.Active = append(d.Active, Debuff{Kind: kind, TicksLeft: ticks, TickTimer: tickFrames})
}

func (d *DebuffsData) Has(kind DebuffKind) bool {
	for _, b := range d.Active {
		if b.Kind == kind {
			return true
		}
	}
	return false
}

func (d *DebuffsData) Clear() {
	d.Active = d.Active[:0]
}

var Debuffs = donburi.NewComponentType[DebuffsData]()

type Ability int

const (
	AbilitySwitchLight Ability = iota
)

type AbilitiesData struct {
	Unlocked []Ability
}

func (a *AbilitiesData) Has(ability Ability) bool {
	for _, u := range a.Unlocked {
		if u == ability {
			return true
		}
	}
	return false
}

var Abilities = donburi.NewComponentType[AbilitiesData]()

// LightingData is a singleton toggled by the SwitchLight ability.
type LightingData struct {
	On bool
}

var Lighting = donburi.NewComponentType[LightingData]()
