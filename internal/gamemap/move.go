package gamemap

import (
	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/geom"
)

// Outcome is the result of Move.
type Outcome uint8

const (
	// OutcomeNone means nothing happened: the mover is not placed, the delta
	// is zero or the destination is off the grid.
	OutcomeNone Outcome = iota
	OutcomeMoved
	// OutcomeBlocked means a wall or an unusable object stopped the mover.
	OutcomeBlocked
	// OutcomeUsed means a room object was used.
	OutcomeUsed
	// OutcomeMet means the mover encountered the occupant.
	OutcomeMet
)

// Interactor resolves what happens when a mover bumps into an occupant.
type Interactor interface {
	// UseObject reports whether obj was used by mover.
	UseObject(mover *entity.Creature, obj *entity.RoomObject) bool
	// Meet resolves mover meeting occupant and reports whether the occupant
	// must leave the map.
	Meet(mover *entity.Creature, occupant entity.Entity) bool
}

// Move tries to move e by delta.
func (m *Map) Move(e *entity.Creature, delta geom.Coord, in Interactor) Outcome {
	orig, ok := m.pos[e]
	if !ok || delta == geom.Zero {
		return OutcomeNone
	}
	dest := orig.Add(delta)
	if !m.InBounds(dest) {
		return OutcomeNone
	}
	got := m.Get(dest)
	if got.Occupant == nil {
		if got.Cell != Floor {
			return OutcomeBlocked
		}
		m.relocate(e, dest)
		return OutcomeMoved
	}
	if obj, ok := got.Occupant.(*entity.RoomObject); ok {
		if in.UseObject(e, obj) {
			return OutcomeUsed
		}
		return OutcomeBlocked
	}
	if in.Meet(e, got.Occupant) && got.Occupant != entity.Entity(m.hero) {
		m.Remove(got.Occupant)
	}
	return OutcomeMet
}

// StepToward picks the best of the nine offsets (staying put included) to
// bring a monster at from closer to the hero at to. A candidate must land on
// empty floor or on the hero's own cell and must be strictly closer than the
// best found so far, scanning geom.Offsets in order. The straight
// geom.DirectionToward step is that scan's answer whenever it is free.
func (m *Map) StepToward(from, to geom.Coord) geom.Coord {
	if dir := from.DirectionToward(to); dir != geom.Zero {
		if dest := from.Add(dir); m.IsFloor(dest) || dest == to {
			return dir
		}
	}
	best := geom.Zero
	bestDist := from.Distance(to)
	for _, off := range geom.Offsets {
		dest := from.Add(off)
		if !m.InBounds(dest) || !(m.IsFloor(dest) || dest == to) {
			continue
		}
		if d := dest.Distance(to); d < bestDist {
			best, bestDist = off, d
		}
	}
	return best
}

// MoveAllMonsters advances every creature closer than radius to the hero by
// one step, in placement order. A monster stepping onto the hero attacks it.
func (m *Map) MoveAllMonsters(radius float64, in Interactor) {
	if m.hero == nil {
		return
	}
	for _, c := range m.Creatures() {
		if c == m.hero {
			continue
		}
		target, ok := m.pos[m.hero]
		if !ok || !m.hero.Alive() {
			return
		}
		at, placed := m.pos[c]
		if !placed || at.Distance(target) >= radius {
			continue
		}
		if step := m.StepToward(at, target); step != geom.Zero {
			m.Move(c, step, in)
		}
	}
}
