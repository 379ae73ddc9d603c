package gamemap

import "dungeon-crawler/internal/geom"

// Octant multipliers for recursive shadowcasting. A sweep offset (dx, dy)
// maps to the world offset (dx*xx + dy*xy, dx*yx + dy*yy).
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Reveal recomputes visibility from origin and marks every lit tile as
// explored. Walls stop light; occupants do not.
func (m *Map) Reveal(origin geom.Coord, radius int) {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Visible = false
		}
	}
	if !m.InBounds(origin) {
		return
	}
	m.light(origin)
	for _, o := range octants {
		m.castLight(origin, 1, 1.0, 0.0, radius, o)
	}
}

// Explored reports whether c has ever been seen.
func (m *Map) Explored(c geom.Coord) bool {
	return m.InBounds(c) && m.Tiles[c.Y][c.X].Explored
}

// Visible reports whether c is lit by the last Reveal.
func (m *Map) Visible(c geom.Coord) bool {
	return m.InBounds(c) && m.Tiles[c.Y][c.X].Visible
}

func (m *Map) light(c geom.Coord) {
	t := m.At(c)
	t.Visible = true
	t.Explored = true
}

func (m *Map) opaque(c geom.Coord) bool {
	return !m.InBounds(c) || !m.At(c).Transparent()
}

// castLight scans one octant row by row. Row j sweeps dx from -j to 0; a
// cell spans slopes lSlope..rSlope and is lit when it falls between start
// and end. Hitting a wall recurses past it with a narrowed window.
func (m *Map) castLight(origin geom.Coord, row int, start, end float64, radius int, o [4]int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			c := geom.Coord{
				X: origin.X + dx*o[0] + dy*o[1],
				Y: origin.Y + dx*o[2] + dy*o[3],
			}
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}
			if dx*dx+dy*dy < radiusSq && m.InBounds(c) {
				m.light(c)
			}

			wall := m.opaque(c)
			switch {
			case blocked && wall:
				newStart = rSlope
			case blocked:
				blocked = false
				start = newStart
			case wall && j < radius:
				blocked = true
				m.castLight(origin, j+1, start, lSlope, radius, o)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
