package system

import (
	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/geom"
)

// Flight is the path of a thrown object.
type Flight struct {
	// Landing is the last free floor cell the object crossed. It equals the
	// origin when the object could not leave the thrower's cell.
	Landing geom.Coord
	// Target is the creature that stopped the object, if any.
	Target *entity.Creature
	// TargetAt is where Target stands.
	TargetAt geom.Coord
	Steps    int
}

// Trajectory follows dir from origin for at most maxRange cells. A creature
// stops the flight and becomes the target; a wall or any other occupant
// stops it short.
func Trajectory(m *gamemap.Map, origin, dir geom.Coord, maxRange int) Flight {
	f := Flight{Landing: origin}
	for step := 1; step <= maxRange; step++ {
		c := origin.Add(dir.Scale(step))
		got := m.Get(c)
		if got.Occupant != nil {
			if cr, ok := got.Occupant.(*entity.Creature); ok {
				f.Target = cr
				f.TargetAt = c
			}
			return f
		}
		if got.Cell != gamemap.Floor {
			return f
		}
		f.Landing = c
		f.Steps = step
	}
	return f
}
