// Package geom holds the integer grid geometry shared by the map, the
// generator and the monster AI.
package geom

import (
	"fmt"
	"math"
)

// Coord is a cell position. X grows to the right and Y grows downward.
type Coord struct {
	X, Y int
}

// Zero is the "stay in place" offset.
var Zero = Coord{}

// Offsets lists the nine unit offsets (including Zero) in canonical scan
// order: X from -1 to 1 in the outer loop, Y from -1 to 1 in the inner loop.
// Tie-breaks that depend on scan order always walk this table.
var Offsets = [9]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// Scale returns c multiplied by k on both axes.
func (c Coord) Scale(k int) Coord { return Coord{c.X * k, c.Y * k} }

// Distance returns the Euclidean distance between c and o.
func (c Coord) Distance(o Coord) float64 {
	d := c.Sub(o)
	return math.Sqrt(float64(d.X*d.X + d.Y*d.Y))
}

// IsUnit reports whether c is one of the eight non-zero neighbour offsets.
func (c Coord) IsUnit() bool {
	return c != Zero && c.X >= -1 && c.X <= 1 && c.Y >= -1 && c.Y <= 1
}

func (c Coord) String() string {
	return fmt.Sprintf("<%d,%d>", c.X, c.Y)
}

// DirectionToward returns the neighbour offset that brings c closest to
// target. Ties go to the first offset in Offsets order. When c already
// equals target the result is Zero.
func (c Coord) DirectionToward(target Coord) Coord {
	if c == target {
		return Zero
	}
	best := Zero
	bestDist := math.Inf(1)
	for _, off := range Offsets {
		if off == Zero {
			continue
		}
		if d := c.Add(off).Distance(target); d < bestDist {
			best, bestDist = off, d
		}
	}
	return best
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
