package gamemap

import (
	"fmt"
	"math/rand"

	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/geom"
)

// Room is an inclusive axis-aligned rectangle of floor. Specials are room
// objects or creatures to place inside it when the floor is decorated.
type Room struct {
	C1, C2   geom.Coord
	Specials []entity.Entity
}

// NewRoom returns the room spanning c1 (top-left) to c2 (bottom-right).
// It panics when the corners are swapped.
func NewRoom(c1, c2 geom.Coord, specials ...entity.Entity) *Room {
	if c1.X > c2.X || c1.Y > c2.Y {
		panic(fmt.Sprintf("gamemap: room corners out of order: %v %v", c1, c2))
	}
	return &Room{C1: c1, C2: c2, Specials: specials}
}

func (r *Room) String() string { return fmt.Sprintf("[%v, %v]", r.C1, r.C2) }

// Contains reports whether c lies inside the room, edges included.
func (r *Room) Contains(c geom.Coord) bool {
	return r.C1.X <= c.X && c.X <= r.C2.X && r.C1.Y <= c.Y && c.Y <= r.C2.Y
}

// Center returns the middle cell, rounding toward the top-left.
func (r *Room) Center() geom.Coord {
	return geom.Coord{X: (r.C1.X + r.C2.X) / 2, Y: (r.C1.Y + r.C2.Y) / 2}
}

// Intersects reports whether the two rectangles share at least one cell.
func (r *Room) Intersects(o *Room) bool {
	return !(r.C2.X < o.C1.X || o.C2.X < r.C1.X || r.C2.Y < o.C1.Y || o.C2.Y < r.C1.Y)
}

// RandCoord returns a uniformly random cell of the room.
func (r *Room) RandCoord(rng *rand.Rand) geom.Coord {
	return geom.Coord{
		X: r.C1.X + rng.Intn(r.C2.X-r.C1.X+1),
		Y: r.C1.Y + rng.Intn(r.C2.Y-r.C1.Y+1),
	}
}

// Cells lists every cell of the room row by row.
func (r *Room) Cells() []geom.Coord {
	out := make([]geom.Coord, 0, (r.C2.X-r.C1.X+1)*(r.C2.Y-r.C1.Y+1))
	for y := r.C1.Y; y <= r.C2.Y; y++ {
		for x := r.C1.X; x <= r.C2.X; x++ {
			out = append(out, geom.Coord{X: x, Y: y})
		}
	}
	return out
}
