package gamemap

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/geom"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrOccupiedCell      = errors.New("occupied cell")
	ErrDuplicateEntity   = errors.New("duplicate entity")
)

// Content is what Get reports for a coordinate.
type Content struct {
	Cell     Cell
	Occupant entity.Entity
}

// IsFloor reports whether the cell is plain, unoccupied floor.
func (c Content) IsFloor() bool { return c.Cell == Floor && c.Occupant == nil }

// Map is one dungeon floor: a square grid of tiles plus a sparse index of
// the entities standing on it.
type Map struct {
	Size  int
	Tiles [][]Tile

	rooms []*Room
	at    map[geom.Coord]entity.Entity
	pos   map[entity.Entity]geom.Coord
	// order keeps placement order so walks over entities are deterministic.
	order []entity.Entity
	hero  *entity.Creature
}

// New creates a size x size Map filled with walls.
func New(size int) *Map {
	tiles := make([][]Tile, size)
	for y := range tiles {
		tiles[y] = make([]Tile, size)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &Map{
		Size:  size,
		Tiles: tiles,
		at:    make(map[geom.Coord]entity.Entity),
		pos:   make(map[entity.Entity]geom.Coord),
	}
}

// InBounds reports whether c is inside the grid.
func (m *Map) InBounds(c geom.Coord) bool {
	return c.X >= 0 && c.X < m.Size && c.Y >= 0 && c.Y < m.Size
}

// At returns a pointer to the tile at c. Panics if out of bounds.
func (m *Map) At(c geom.Coord) *Tile {
	return &m.Tiles[c.Y][c.X]
}

// Get returns the terrain and occupant at c. Out-of-grid coordinates read
// as empty wall.
func (m *Map) Get(c geom.Coord) Content {
	if !m.InBounds(c) {
		return Content{Cell: Wall}
	}
	return Content{Cell: m.Tiles[c.Y][c.X].Cell, Occupant: m.at[c]}
}

// IsFloor reports whether c is in bounds, floor and unoccupied.
func (m *Map) IsFloor(c geom.Coord) bool { return m.Get(c).IsFloor() }

// Dig turns the tile at c into floor.
func (m *Map) Dig(c geom.Coord) error {
	if !m.InBounds(c) {
		return fmt.Errorf("dig %v: %w", c, ErrInvalidCoordinate)
	}
	m.Tiles[c.Y][c.X].Cell = Floor
	return nil
}

// Put places e on the empty floor cell c.
func (m *Map) Put(c geom.Coord, e entity.Entity) error {
	if !m.InBounds(c) {
		return fmt.Errorf("put %s at %v: %w", e.Ident().Name, c, ErrInvalidCoordinate)
	}
	if !m.IsFloor(c) {
		return fmt.Errorf("put %s at %v: %w", e.Ident().Name, c, ErrOccupiedCell)
	}
	if _, placed := m.pos[e]; placed {
		return fmt.Errorf("put %s at %v: %w", e.Ident().Name, c, ErrDuplicateEntity)
	}
	m.at[c] = e
	m.pos[e] = c
	m.order = append(m.order, e)
	return nil
}

// MustPut is Put for generation code, where a failed placement is a bug.
func (m *Map) MustPut(c geom.Coord, e entity.Entity) {
	if err := m.Put(c, e); err != nil {
		panic(err)
	}
}

// Pos returns where e stands.
func (m *Map) Pos(e entity.Entity) (geom.Coord, bool) {
	c, ok := m.pos[e]
	return c, ok
}

// Remove takes e off the map and reports whether it was there.
func (m *Map) Remove(e entity.Entity) bool {
	c, ok := m.pos[e]
	if !ok {
		return false
	}
	delete(m.pos, e)
	delete(m.at, c)
	m.order = slices.DeleteFunc(m.order, func(o entity.Entity) bool { return o == e })
	return true
}

// Relocate moves the placed entity e to the empty floor cell dest, keeping
// its placement order.
func (m *Map) Relocate(e entity.Entity, dest geom.Coord) error {
	if _, placed := m.pos[e]; !placed {
		return fmt.Errorf("relocate %s: not placed: %w", e.Ident().Name, ErrInvalidCoordinate)
	}
	if !m.InBounds(dest) {
		return fmt.Errorf("relocate %s to %v: %w", e.Ident().Name, dest, ErrInvalidCoordinate)
	}
	if !m.IsFloor(dest) {
		return fmt.Errorf("relocate %s to %v: %w", e.Ident().Name, dest, ErrOccupiedCell)
	}
	m.relocate(e, dest)
	return nil
}

// relocate moves e to the free cell dest.
func (m *Map) relocate(e entity.Entity, dest geom.Coord) {
	orig := m.pos[e]
	delete(m.at, orig)
	m.at[dest] = e
	m.pos[e] = dest
}

// SetHero marks h as the creature that can never be displaced or removed
// by an encounter.
func (m *Map) SetHero(h *entity.Creature) { m.hero = h }

// Hero returns the designated hero, or nil.
func (m *Map) Hero() *entity.Creature { return m.hero }

// Entities returns every placed entity in placement order.
func (m *Map) Entities() []entity.Entity { return slices.Clone(m.order) }

// Creatures returns the placed creatures in placement order.
func (m *Map) Creatures() []*entity.Creature {
	var out []*entity.Creature
	for _, e := range m.order {
		if c, ok := e.(*entity.Creature); ok {
			out = append(out, c)
		}
	}
	return out
}

// SetRooms records the rooms of the floor. Rooms()[0] is the start room.
func (m *Map) SetRooms(rooms []*Room) { m.rooms = slices.Clone(rooms) }

// Rooms returns the floor's rooms.
func (m *Map) Rooms() []*Room { return slices.Clone(m.rooms) }

// FreeCells lists the empty floor cells of r, skipping its center.
func (m *Map) FreeCells(r *Room) []geom.Coord {
	var out []geom.Coord
	center := r.Center()
	for _, c := range r.Cells() {
		if c != center && m.IsFloor(c) {
			out = append(out, c)
		}
	}
	return out
}

// OpenCells lists the interior cells of r whose whole 3x3 neighbourhood is
// empty floor (or the hero), skipping the room center. Specials go there so
// they never block a corridor mouth.
func (m *Map) OpenCells(r *Room) []geom.Coord {
	var out []geom.Coord
	center := r.Center()
	for y := r.C1.Y + 1; y < r.C2.Y; y++ {
		for x := r.C1.X + 1; x < r.C2.X; x++ {
			c := geom.Coord{X: x, Y: y}
			if c != center && m.emptyAround(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func (m *Map) emptyAround(c geom.Coord) bool {
	for _, off := range geom.Offsets {
		got := m.Get(c.Add(off))
		if !got.IsFloor() && (m.hero == nil || got.Occupant != entity.Entity(m.hero)) {
			return false
		}
	}
	return true
}

// FreeNeighbor returns a random empty floor cell adjacent to c.
func (m *Map) FreeNeighbor(c geom.Coord, rng *rand.Rand) (geom.Coord, bool) {
	var free []geom.Coord
	for _, off := range geom.Offsets {
		if n := c.Add(off); off != geom.Zero && m.IsFloor(n) {
			free = append(free, n)
		}
	}
	if len(free) == 0 {
		return geom.Coord{}, false
	}
	return free[rng.Intn(len(free))], true
}

// RandomFreeCell picks a random room and a random empty floor cell in it.
func (m *Map) RandomFreeCell(rng *rand.Rand) (geom.Coord, bool) {
	if len(m.rooms) == 0 {
		return geom.Coord{}, false
	}
	start := rng.Intn(len(m.rooms))
	for i := range m.rooms {
		r := m.rooms[(start+i)%len(m.rooms)]
		if free := m.FreeCells(r); len(free) > 0 {
			return free[rng.Intn(len(free))], true
		}
	}
	return geom.Coord{}, false
}

// String draws the map: '#' for wall, '.' for floor, glyphs for occupants.
func (m *Map) String() string {
	var b strings.Builder
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			c := geom.Coord{X: x, Y: y}
			switch got := m.Get(c); {
			case got.Occupant != nil:
				b.WriteString(got.Occupant.Glyph())
			case got.Cell == Floor:
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
