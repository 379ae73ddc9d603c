package entity

import "fmt"

// EffectKind names a status effect a power or a usage can produce.
type EffectKind uint8

const (
	EffectHeal EffectKind = iota + 1
	EffectPoison
	EffectFeed
	EffectHunger
	EffectTeleport
	EffectStrength
	EffectWeakness
	// EffectCleanse removes every active effect from its target.
	EffectCleanse
)

var effectNames = map[EffectKind]string{
	EffectHeal:     "heal",
	EffectPoison:   "poison",
	EffectFeed:     "feed",
	EffectHunger:   "hunger",
	EffectTeleport: "teleport",
	EffectStrength: "strength",
	EffectWeakness: "weakness",
	EffectCleanse:  "cleanse",
}

func (k EffectKind) String() string {
	if s, ok := effectNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EffectKind(%d)", k)
}

// ParseEffectKind maps a catalogue name to its kind.
func ParseEffectKind(s string) (EffectKind, error) {
	for k, name := range effectNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown effect %q", s)
}

// EffectSpec describes an effect to instantiate: on-hit powers and item
// usages are both expressed this way.
type EffectSpec struct {
	Kind     EffectKind
	Duration int
	Level    int
}
