// Package effect runs timed status effects. Ephemeral effects repeat their
// action once per tick until their duration runs out; constant effects apply
// once on activation and are reverted once on deactivation.
package effect

import (
	"errors"
	"fmt"

	"dungeon-crawler/internal/entity"
)

// ErrNotTimed is returned by New for kinds that act immediately instead of
// living in the registry (cleanse).
var ErrNotTimed = errors.New("effect kind is not timed")

// Mode selects the lifecycle of an effect.
type Mode uint8

const (
	Ephemeral Mode = iota
	Constant
)

// State is where an effect is in its lifecycle.
type State uint8

const (
	Created State = iota
	Active
	Deleted
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Active:
		return "active"
	case Deleted:
		return "deleted"
	}
	return "unknown"
}

// Host is the session side of an effect: where messages go and how the
// world-changing effects (teleport, death) are carried out.
type Host interface {
	entity.Notifier
	Teleport(c *entity.Creature) bool
	Kill(c *entity.Creature, cause string)
}

// Effect is one status effect owned by one creature.
type Effect struct {
	Kind   entity.EffectKind
	Mode   Mode
	Target *entity.Creature
	Level  int
	// Value is the per-application amount, Level times the kind's factor.
	Value int
	// Duration counts the applications left for ephemeral effects. For
	// constant effects a positive duration expires the effect after that
	// many ticks; zero lasts until cleared.
	Duration int

	state State
	// applied guards the one-shot action of constant effects.
	applied bool
}

// New builds an effect for target from spec.
func New(spec entity.EffectSpec, target *entity.Creature) (*Effect, error) {
	e := &Effect{
		Kind:     spec.Kind,
		Target:   target,
		Level:    spec.Level,
		Value:    spec.Level,
		Duration: spec.Duration,
	}
	switch spec.Kind {
	case entity.EffectHeal, entity.EffectPoison, entity.EffectFeed, entity.EffectHunger:
		e.Mode = Ephemeral
	case entity.EffectTeleport:
		e.Mode = Ephemeral
		e.Duration = 1
	case entity.EffectStrength, entity.EffectWeakness:
		e.Mode = Constant
	case entity.EffectCleanse:
		return nil, fmt.Errorf("new %s effect: %w", spec.Kind, ErrNotTimed)
	default:
		return nil, fmt.Errorf("new effect: unknown kind %d", spec.Kind)
	}
	if e.Mode == Ephemeral && e.Duration < 1 {
		e.Duration = 1
	}
	return e, nil
}

// State returns the lifecycle state.
func (e *Effect) State() State { return e.state }

func (e *Effect) label() string {
	name := e.Kind.String()
	return fmt.Sprintf("[%s] | %s<%d> |", e.Target.Name, name, e.Level)
}

// apply runs the effect's action once.
func (e *Effect) apply(h Host) {
	c := e.Target
	switch e.Kind {
	case entity.EffectHeal:
		if c.HP+e.Value < c.MaxHP {
			c.HP += e.Value
			h.Notify(fmt.Sprintf("%s Recovering hp : +%d", e.label(), e.Value))
		} else {
			c.HP = c.MaxHP
			h.Notify(fmt.Sprintf("%s Full Health : %d/%d", e.label(), c.HP, c.MaxHP))
		}
	case entity.EffectPoison:
		c.HP -= e.Value
		h.Notify(fmt.Sprintf("%s Losing hp : -%d", e.label(), e.Value))
		if c.HP <= 0 {
			c.HP = 0
			h.Kill(c, "poison")
		}
	case entity.EffectFeed:
		if c.Hero != nil {
			c.Hero.Stomach = min(c.Hero.Stomach+e.Value, c.Hero.MaxStomach)
			h.Notify(fmt.Sprintf("%s I'm eating : +%d", e.label(), e.Value))
		}
	case entity.EffectHunger:
		if c.Hero != nil {
			c.Hero.Stomach = max(c.Hero.Stomach-e.Value, 0)
			h.Notify(fmt.Sprintf("%s I'm hungry : -%d", e.label(), e.Value))
		}
	case entity.EffectTeleport:
		if h.Teleport(c) {
			if c.IsHero() {
				h.Notify("You have been teleported")
			} else {
				h.Notify(fmt.Sprintf("The creature <%s> has been teleported", c.Name))
			}
		}
	case entity.EffectStrength:
		c.Strength += e.Value
		h.Notify(fmt.Sprintf("%s I feel stronger : +%d", e.label(), e.Value))
	case entity.EffectWeakness:
		c.Strength -= e.Value
		h.Notify(fmt.Sprintf("%s I feel weaker : -%d", e.label(), e.Value))
	}
}

// revert undoes the action of a constant effect.
func (e *Effect) revert(h Host) {
	c := e.Target
	switch e.Kind {
	case entity.EffectStrength:
		c.Strength -= e.Value
		h.Notify(fmt.Sprintf("%s End of boost, I feel weaker : -%d", e.label(), e.Value))
	case entity.EffectWeakness:
		c.Strength += e.Value
		h.Notify(fmt.Sprintf("%s End of malus, I feel stronger : +%d", e.label(), e.Value))
	}
}
