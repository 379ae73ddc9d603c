package generate

import (
	"fmt"

	"dungeon-crawler/internal/geom"
)

// Corridor digs an L-shaped tunnel from start to end, vertical leg first.
func (l *Layout) Corridor(start, end geom.Coord) {
	d := end.Sub(start)
	cursor := start
	l.dig(cursor)
	for cursor.Y != end.Y {
		cursor = cursor.Add(geom.Coord{Y: geom.Sign(d.Y)})
		l.dig(cursor)
	}
	for cursor.X != end.X {
		cursor = cursor.Add(geom.Coord{X: geom.Sign(d.X)})
		l.dig(cursor)
	}
}

// dig makes c floor. A pending room containing c becomes reached.
func (l *Layout) dig(c geom.Coord) {
	if err := l.Map.Dig(c); err != nil {
		panic(fmt.Errorf("corridor: %w", err))
	}
	for i, r := range l.pending {
		if r.Contains(c) {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			l.reached = append(l.reached, r)
			return
		}
	}
}
