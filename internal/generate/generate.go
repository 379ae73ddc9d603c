// Package generate builds dungeon floors: random non-overlapping rooms joined
// by L-shaped corridors, then decorated with stairs, items and monsters.
package generate

import (
	"fmt"
	"math/rand"
	"slices"

	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/geom"
)

// Config drives the layout of one floor.
type Config struct {
	Size         int
	RoomAttempts int
	// MinSpan and MaxSpan bound how far the bottom-right corner of a random
	// room extends past its top-left corner on each axis.
	MinSpan, MaxSpan int
	// Special, when set, is added before any random room and is never
	// rejected.
	Special *gamemap.Room
	Rand    *rand.Rand
}

// Layout is a floor under construction. Rooms start out pending and become
// reached once a corridor digs into them.
type Layout struct {
	Map     *gamemap.Map
	cfg     Config
	reached []*gamemap.Room
	pending []*gamemap.Room
}

// NewLayout returns an all-wall floor.
func NewLayout(cfg Config) *Layout {
	return &Layout{Map: gamemap.New(cfg.Size), cfg: cfg}
}

// Build lays out a complete floor: rooms, then corridors until every room is
// reached.
func Build(cfg Config) *Layout {
	l := NewLayout(cfg)
	l.GenerateRooms(cfg.RoomAttempts)
	l.ReachAllRooms()
	return l
}

// Rooms returns the reached rooms; Rooms()[0] is the start room.
func (l *Layout) Rooms() []*gamemap.Room { return slices.Clone(l.reached) }

// Pending returns the rooms no corridor has reached yet.
func (l *Layout) Pending() []*gamemap.Room { return slices.Clone(l.pending) }

// randRoom draws a room whose top-left corner leaves at least three cells to
// the border and whose far corner is clamped inside the grid.
func (l *Layout) randRoom() *gamemap.Room {
	rng := l.cfg.Rand
	size := l.cfg.Size
	span := func() int { return l.cfg.MinSpan + rng.Intn(l.cfg.MaxSpan-l.cfg.MinSpan+1) }
	c1 := geom.Coord{X: rng.Intn(size - 2), Y: rng.Intn(size - 2)}
	c2 := geom.Coord{X: min(c1.X+span(), size-1), Y: min(c1.Y+span(), size-1)}
	return gamemap.NewRoom(c1, c2)
}

// addRoom carves r into floor and queues it as pending.
func (l *Layout) addRoom(r *gamemap.Room) {
	for _, c := range r.Cells() {
		if err := l.Map.Dig(c); err != nil {
			panic(fmt.Errorf("add room %v: %w", r, err))
		}
	}
	l.pending = append(l.pending, r)
}

func (l *Layout) intersectsAny(r *gamemap.Room) bool {
	for _, o := range l.pending {
		if r.Intersects(o) {
			return true
		}
	}
	for _, o := range l.reached {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

// GenerateRooms makes n attempts at placing a random room and keeps the ones
// that overlap nothing already accepted. The special room, if any, goes
// first. It returns the number of rooms added.
func (l *Layout) GenerateRooms(n int) int {
	added := 0
	if l.cfg.Special != nil {
		l.addRoom(l.cfg.Special)
		added++
	}
	for range n {
		r := l.randRoom()
		if !l.intersectsAny(r) {
			l.addRoom(r)
			added++
		}
	}
	return added
}

// ReachAllRooms seeds the reached set with the first pending room, then digs
// corridors from a random reached room to a random pending room until none
// are pending. Every dig strictly shrinks the pending set because the
// corridor ends inside its destination.
func (l *Layout) ReachAllRooms() {
	if len(l.pending) == 0 {
		return
	}
	if len(l.reached) == 0 {
		l.reached = append(l.reached, l.pending[0])
		l.pending = l.pending[1:]
	}
	rng := l.cfg.Rand
	for len(l.pending) > 0 {
		a := l.reached[rng.Intn(len(l.reached))]
		b := l.pending[rng.Intn(len(l.pending))]
		l.Corridor(a.Center(), b.Center())
	}
	l.Map.SetRooms(l.reached)
}
