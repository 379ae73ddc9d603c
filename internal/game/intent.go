package game

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/geom"
	"dungeon-crawler/internal/system"
)

// IntentKind is what the player asks for.
type IntentKind uint8

const (
	// IntentNoOp does nothing and costs no turn.
	IntentNoOp IntentKind = iota
	IntentMove
	// IntentWait lets the world advance without acting.
	IntentWait
	IntentUse
	IntentEquip
	IntentUnequip
	IntentThrow
	IntentDelete
	IntentSuicide
	IntentBuy
	// IntentDescribe queues the hero's full description.
	IntentDescribe
)

// Intent is one player request. Dir is used by moves and throws; Item is an
// inventory slot, or a merchant offer for IntentBuy.
type Intent struct {
	Kind IntentKind
	Dir  geom.Coord
	Item int
}

// Move returns a movement intent.
func Move(dir geom.Coord) Intent { return Intent{Kind: IntentMove, Dir: dir} }

// HandleIntent resolves one player intent and, when it costs a turn, moves
// the monsters, updates hunger and ticks the effects. It reports whether a
// turn was played. A terminated session ignores every intent.
func (s *Session) HandleIntent(in Intent) bool {
	if s.Over() {
		return false
	}
	turn := false
	switch in.Kind {
	case IntentNoOp:
	case IntentMove:
		turn = s.moveHero(in.Dir)
	case IntentWait:
		turn = true
	case IntentUse:
		turn = s.useItem(in.Item)
	case IntentEquip:
		s.equip(in.Item)
	case IntentUnequip:
		s.hero.UnequipWeapon(s)
	case IntentThrow:
		turn = s.throw(in.Item, in.Dir)
	case IntentDelete:
		s.deleteItem(in.Item)
	case IntentSuicide:
		s.hero.HP = 0
		s.runLog.CauseOfDeath = "suicide"
	case IntentBuy:
		s.buy(in.Item)
	case IntentDescribe:
		s.Notify(s.hero.FullDescription())
	}
	if turn && s.hero.Alive() && !s.Over() {
		s.advance()
	}
	s.checkEnd()
	return turn
}

// advance plays the world's half of a turn.
func (s *Session) advance() {
	s.Map().MoveAllMonsters(s.cfg.AggressionRadius, s)
	s.round++
	s.runLog.TurnsPlayed = s.round

	h := s.hero.Hero
	if s.round%s.cfg.HungerInterval == 0 && h.Stomach > 0 {
		h.Stomach--
		if h.Stomach == 0 {
			s.Notify("You are starving")
		}
	}
	if h.Stomach > 0 {
		s.starving = 0
	} else {
		s.starving++
		if s.starving%s.cfg.StarveInterval == 0 && s.hero.Starve() {
			s.Notify("Your empty stomach hurts : -1 hp")
			s.runLog.DamageTaken++
			s.runLog.CauseOfDeath = "hunger"
		}
	}
	s.effects.Tick(s)
	s.reveal()
}

func (s *Session) checkEnd() {
	if s.state != StatePlaying || s.hero.Alive() {
		return
	}
	s.hero.HP = 0
	s.state = StateGameOver
	s.runLog.finish(s.hero, false)
	s.Notify("--- Game Over ---")
	s.log.Info("hero died",
		zap.String("cause", s.runLog.CauseOfDeath),
		zap.Int("round", s.round),
		zap.Int("floor", s.current))
}

func (s *Session) moveHero(dir geom.Coord) bool {
	if !dir.IsUnit() {
		return false
	}
	s.refused = false
	switch s.Map().Move(s.hero, dir, s) {
	case gamemap.OutcomeMoved:
		s.offers = nil
		s.reveal()
		return true
	case gamemap.OutcomeUsed:
		return true
	case gamemap.OutcomeMet:
		return !s.refused
	}
	return false
}

func (s *Session) item(slot int) (*entity.Equipment, bool) {
	e, ok := s.hero.Items.At(slot)
	if !ok {
		s.Notify(fmt.Sprintf("There is no item in slot %d", slot))
	}
	return e, ok
}

func (s *Session) useItem(slot int) bool {
	e, ok := s.item(slot)
	if !ok {
		return false
	}
	if _, err := s.hero.Use(e, s); err != nil {
		s.log.Error("use failed", zap.Error(err))
		return false
	}
	if e.Usage == nil {
		return false
	}
	s.runLog.ItemsUsed[e.Name]++
	return true
}

func (s *Session) equip(slot int) {
	if !slices.ContainsFunc(s.hero.Items.Items(), (*entity.Equipment).IsWeapon) {
		s.Notify("You don't have any weapon in your inventory")
		return
	}
	e, ok := s.item(slot)
	if !ok {
		return
	}
	if err := s.hero.EquipWeapon(e, s); err != nil {
		if errors.Is(err, entity.ErrWrongElementType) {
			s.Notify("The " + e.Name + " is not a weapon")
			return
		}
		s.log.Error("equip failed", zap.Error(err))
	}
}

func (s *Session) deleteItem(slot int) {
	if e, ok := s.item(slot); ok {
		s.hero.DeleteItem(e, s)
	}
}

// buy sells the merchant offer at index i to the hero.
func (s *Session) buy(i int) {
	if len(s.offers) == 0 {
		s.Notify("There is no merchant nearby")
		return
	}
	if i < 0 || i >= len(s.offers) {
		s.Notify("The merchant has no such item")
		return
	}
	o := s.offers[i]
	h := s.hero.Hero
	if s.hero.Items.Full() {
		s.Notify("You don't have enough space in your inventory")
		return
	}
	if h.Gold < o.Price {
		s.Notify(fmt.Sprintf("Not enough gold. %d gold left.", o.Price-h.Gold))
		return
	}
	h.Gold -= o.Price
	s.hero.Items.Add(o)
	s.offers = slices.Delete(s.offers, i, i+1)
	s.Notify(fmt.Sprintf("You bought %s for %d gold", o.Name, o.Price))
}

// throw launches an inventory item along dir. Weapons hit the first creature
// in the way with their throw damage; usable items apply their effect to it
// and are used up unless kept. Whatever is left lands on the last free cell
// crossed, except returning weapons, which come back to the bag.
func (s *Session) throw(slot int, dir geom.Coord) bool {
	e, ok := s.item(slot)
	if !ok {
		return false
	}
	if !dir.IsUnit() {
		s.Notify("You must choose a direction to throw the " + e.Name)
		return false
	}
	m := s.Map()
	from, _ := m.Pos(s.hero)
	flight := system.Trajectory(m, from, dir, s.cfg.ThrowRange)
	if flight.Target == nil && flight.Steps == 0 {
		s.Notify("You can't throw the " + e.Name + " that way")
		return false
	}
	s.hero.Items.Remove(e)
	s.Notify("You throw the " + e.Name)

	landing := flight.Landing
	consumed := false
	if t := flight.Target; t != nil {
		if e.IsWeapon() {
			res := system.Strike(s.hero, t, e.Weapon.ThrowDamage, s)
			s.record(s.hero, t, res)
			if res.Killed {
				m.Remove(t)
				landing = flight.TargetAt
			}
		}
		if e.Usage != nil && t.Alive() {
			s.Notify("The " + e.Name + " reaches the " + entity.Describe(t))
			s.Afflict(t, e.Usage.Effect)
			consumed = !e.Usage.Keep
			if _, placed := m.Pos(t); !placed {
				landing = flight.TargetAt
			}
		}
	}
	switch {
	case consumed:
	case e.IsWeapon() && e.Weapon.Returns:
		s.hero.Items.Add(e)
		s.Notify("The " + e.Name + " comes back to you")
	case landing == from || m.Put(landing, e) != nil:
		s.hero.Items.Add(e)
		s.Notify("The " + e.Name + " falls back into your bag")
	}
	return true
}
