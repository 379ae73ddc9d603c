package game

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"dungeon-crawler/internal/effect"
	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/system"
)

// Meet resolves a creature bumping into an occupant: the hero picks items
// up, and the hero and monsters fight each other. Monsters ignore items and
// each other. It reports whether the occupant leaves the map.
func (s *Session) Meet(mover *entity.Creature, occupant entity.Entity) bool {
	switch o := occupant.(type) {
	case *entity.Equipment:
		if !mover.IsHero() {
			return false
		}
		if !mover.Take(o, s) {
			s.refused = true
			return false
		}
		return true
	case *entity.Creature:
		if !mover.IsHero() && !o.IsHero() {
			return false
		}
		res := system.Encounter(mover, o, s)
		s.record(mover, o, res)
		return res.Killed
	}
	return false
}

// record keeps the run statistics and settles deaths after an attack.
func (s *Session) record(attacker, defender *entity.Creature, res system.AttackResult) {
	if attacker.IsHero() {
		s.runLog.DamageDealt += res.Damage
	}
	if defender.IsHero() {
		s.runLog.DamageTaken += res.Damage
		s.runLog.CauseOfDeath = attacker.Name
	}
	if res.Killed && !defender.IsHero() {
		s.runLog.EnemiesKilled[defender.Name]++
		s.died(defender)
	}
}

// died drops the effects of a dead monster and checks for victory.
func (s *Session) died(c *entity.Creature) {
	s.effects.Clear(c, s)
	if c != s.boss || s.state != StatePlaying {
		return
	}
	s.state = StateWon
	s.runLog.finish(s.hero, true)
	s.Notify(fmt.Sprintf("You have defeated %s. The dungeon is yours!", c.Name))
	s.log.Info("boss defeated", zap.Int("round", s.round))
}

// UseObject lets the hero take the stairs or talk to the merchant. Monsters
// never use room objects.
func (s *Session) UseObject(mover *entity.Creature, obj *entity.RoomObject) bool {
	if !mover.IsHero() {
		return false
	}
	switch obj.Kind {
	case entity.RoomDownstairs:
		return s.changeFloor(s.current + 1)
	case entity.RoomUpstairs:
		return s.changeFloor(s.current - 1)
	case entity.RoomMerchant:
		s.openShop()
		return true
	}
	return false
}

// changeFloor moves the hero next to the matching staircase of floor i.
func (s *Session) changeFloor(i int) bool {
	if i < 0 || i >= len(s.floors) {
		return false
	}
	to := s.floors[i]
	anchor := to.down
	if i > s.current {
		anchor = to.up
	}
	dest, ok := to.m.RandomFreeCell(s.rng)
	if at, placed := to.m.Pos(anchor); placed {
		dest, ok = to.m.FreeNeighbor(at, s.rng)
	}
	if !ok {
		s.Notify("The stairs are blocked")
		return false
	}

	s.Map().Remove(s.hero)
	to.m.SetHero(s.hero)
	to.m.MustPut(dest, s.hero)
	s.current = i
	s.offers = nil
	s.reveal()
	s.runLog.FloorsReached = max(s.runLog.FloorsReached, i+1)
	s.Notify(fmt.Sprintf("You are now on floor %d/%d", i+1, len(s.floors)))
	s.log.Debug("floor changed", zap.Int("floor", i))
	return true
}

func (s *Session) openShop() {
	s.offers = s.catalog.Offers(s.rng, s.current+1)
	parts := make([]string, len(s.offers))
	for i, o := range s.offers {
		parts[i] = fmt.Sprintf("%d: %s (%d gold)", i, o.Name, o.Price)
	}
	s.Notify("The merchant offers " + strings.Join(parts, ", "))
}

// Afflict starts the effect described by spec on target. Cleansing is
// immediate: it ends every effect on target.
func (s *Session) Afflict(target *entity.Creature, spec entity.EffectSpec) {
	if spec.Kind == entity.EffectCleanse {
		s.effects.Clear(target, s)
		s.Notify(fmt.Sprintf("[%s] | cleanse | All effects removed", target.Name))
		return
	}
	e, err := effect.New(spec, target)
	if err != nil {
		s.log.Error("afflict failed", zap.Error(err))
		return
	}
	s.effects.Activate(e, s)
}

// Teleport moves c to a random free cell of a random room of its floor.
func (s *Session) Teleport(c *entity.Creature) bool {
	m := s.mapOf(c)
	if m == nil {
		return false
	}
	dest, ok := m.RandomFreeCell(s.rng)
	if !ok {
		return false
	}
	if err := m.Relocate(c, dest); err != nil {
		return false
	}
	if c.IsHero() {
		s.offers = nil
		s.reveal()
	}
	return true
}

// Kill handles a death caused by an effect rather than a blow.
func (s *Session) Kill(c *entity.Creature, cause string) {
	s.Notify(fmt.Sprintf("<%s> is killed by %s", c.Name, cause))
	if c.IsHero() {
		s.runLog.CauseOfDeath = cause
		s.effects.Clear(c, s)
		return
	}
	if m := s.mapOf(c); m != nil {
		m.Remove(c)
	}
	s.runLog.EnemiesKilled[c.Name]++
	s.died(c)
}

// mapOf returns the floor c stands on, or nil. Effects keep ticking on
// floors the hero left.
func (s *Session) mapOf(c *entity.Creature) *gamemap.Map {
	for _, f := range s.floors {
		if _, ok := f.m.Pos(c); ok {
			return f.m
		}
	}
	return nil
}
