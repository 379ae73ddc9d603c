package gamemap

import (
	"testing"

	"dungeon-crawler/internal/geom"
)

// floorMap creates a map where every tile is floor.
func floorMap(size int) *Map {
	m := New(size)
	for y := range size {
		for x := range size {
			m.Tiles[y][x] = MakeFloor()
		}
	}
	return m
}

func TestRevealOriginAlwaysVisible(t *testing.T) {
	m := floorMap(20)
	m.Reveal(geom.Coord{X: 5, Y: 5}, 5)

	if !m.Visible(geom.Coord{X: 5, Y: 5}) {
		t.Error("origin must always be visible")
	}
	if !m.Explored(geom.Coord{X: 5, Y: 5}) {
		t.Error("origin must be marked explored")
	}
}

func TestRevealClearsOldVisibility(t *testing.T) {
	m := floorMap(20)
	for y := range 20 {
		for x := range 20 {
			m.Tiles[y][x].Visible = true
		}
	}
	m.Reveal(geom.Coord{X: 5, Y: 5}, 3)

	if m.Visible(geom.Coord{X: 19, Y: 19}) {
		t.Error("Reveal should clear stale visibility before recalculating")
	}
	if m.Explored(geom.Coord{X: 19, Y: 19}) {
		t.Error("far tile should not become explored")
	}
}

func TestRevealNearbyTilesVisible(t *testing.T) {
	m := floorMap(20)
	m.Reveal(geom.Coord{X: 10, Y: 10}, 5)

	for _, c := range []geom.Coord{{X: 10, Y: 7}, {X: 10, Y: 13}, {X: 7, Y: 10}, {X: 13, Y: 10}} {
		if !m.Visible(c) {
			t.Errorf("tile %v at distance 3 should be visible (radius=5)", c)
		}
		if !m.Explored(c) {
			t.Errorf("tile %v at distance 3 should be marked explored", c)
		}
	}
}

func TestRevealRadiusLimitsVisibility(t *testing.T) {
	m := floorMap(20)
	m.Reveal(geom.Coord{X: 10, Y: 10}, 4)

	for _, c := range []geom.Coord{{X: 10, Y: 15}, {X: 10, Y: 5}, {X: 15, Y: 10}, {X: 5, Y: 10}} {
		if m.Visible(c) {
			t.Errorf("tile %v at distance 5 should not be visible with radius=4", c)
		}
	}
}

func TestRevealWallBlocksLight(t *testing.T) {
	m := floorMap(20)
	m.Tiles[8][10] = MakeWall()
	m.Reveal(geom.Coord{X: 10, Y: 10}, 8)

	if !m.Visible(geom.Coord{X: 10, Y: 8}) {
		t.Error("the wall tile at (10,8) should be visible")
	}
	if m.Visible(geom.Coord{X: 10, Y: 7}) {
		t.Error("tile (10,7) behind the wall at (10,8) should not be visible")
	}
}

func TestRevealOutsideGridNoPanic(t *testing.T) {
	m := floorMap(10)
	m.Reveal(geom.Coord{X: -1, Y: 40}, 5)
}
