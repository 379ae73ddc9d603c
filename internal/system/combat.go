// Package system resolves creature interactions: melee encounters, ranged
// strikes and thrown-object trajectories.
package system

import (
	"dungeon-crawler/internal/entity"
)

// Context is what combat needs from the session.
type Context interface {
	entity.Notifier
	Afflict(target *entity.Creature, spec entity.EffectSpec)
}

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage      int
	Killed      bool
	PowersFired bool
	LevelsWon   int
}

// Encounter resolves attacker bumping into defender. Damage is the equipped
// weapon's damage, or strength when unarmed. On-hit powers fire against a
// surviving defender when the attacker's cooldown is zero, which resets it;
// otherwise the cooldown counts down. A killed non-hero defender grants its
// xp to the attacker.
func Encounter(attacker, defender *entity.Creature, ctx Context) AttackResult {
	res := Strike(attacker, defender, attacker.AttackDamage(), ctx)
	if res.Killed || len(attacker.Powers) == 0 {
		return res
	}
	if attacker.Cooldown > 0 {
		attacker.Cooldown--
		return res
	}
	for _, p := range attacker.Powers {
		ctx.Afflict(defender, p)
	}
	attacker.Cooldown = attacker.PowerCooldown
	res.PowersFired = true
	return res
}

// Strike deals a fixed amount of damage from attacker to defender, as for a
// thrown weapon. Hit points are clamped at zero once death is settled.
func Strike(attacker, defender *entity.Creature, damage int, ctx Context) AttackResult {
	defender.HP -= damage
	ctx.Notify("The " + attacker.Name + " hits the " + entity.Describe(defender))
	res := AttackResult{Damage: damage}
	if defender.HP > 0 {
		return res
	}
	defender.HP = 0
	res.Killed = true
	if !defender.IsHero() {
		res.LevelsWon = attacker.GainXP(defender.XPReward, ctx)
	}
	return res
}
