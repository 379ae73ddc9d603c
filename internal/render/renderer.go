// Package render draws session snapshots onto a tcell screen.
package render

import (
	"cmp"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/geom"
)

// HUDHeight is the number of rows reserved under the map.
const HUDHeight = 7

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize adapts the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(geom.Coord{}, w, max(h-HUDHeight, 1))
}

// Camera exposes the viewport.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame renders tiles, entities and the HUD, then shows the screen.
func (r *Renderer) DrawFrame(v game.View, messages []string) {
	r.screen.Clear()
	for _, e := range v.Entities {
		if e.Kind == game.KindHero {
			r.camera.Fit(e.Pos, v.Size)
		}
	}
	r.drawMap(v)
	r.drawEntities(v)
	r.drawHUD(v, messages)
	r.screen.Show()
}

// drawMap renders every explored tile; tiles out of sight are dimmed.
func (r *Renderer) drawMap(v game.View) {
	theme := ThemeFor(v.Floor)
	for y, row := range v.Tiles {
		for x, tile := range row {
			if !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(geom.Coord{X: x, Y: y})
			if !onScreen {
				continue
			}
			glyph, color := theme.Floor, theme.FloorColor
			if tile.Cell == gamemap.Wall {
				glyph, color = theme.Wall, theme.WallColor
			}
			if !tile.Visible {
				color = Dim
			}
			r.putGlyph(sx, sy, string(glyph), tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack))
		}
	}
}

// drawEntities renders creatures in sight and remembered items and objects.
func (r *Renderer) drawEntities(v game.View) {
	rows := make([]game.EntityView, 0, len(v.Entities))
	for _, e := range v.Entities {
		if !v.InBounds(e.Pos) {
			continue
		}
		tile := v.Tiles[e.Pos.Y][e.Pos.X]
		switch e.Kind {
		case game.KindHero:
		case game.KindMonster:
			if !tile.Visible {
				continue
			}
		default:
			if !tile.Explored {
				continue
			}
		}
		rows = append(rows, e)
	}
	slices.SortStableFunc(rows, func(a, b game.EntityView) int {
		return cmp.Compare(drawOrder(a.Kind), drawOrder(b.Kind))
	})
	for _, e := range rows {
		sx, sy, onScreen := r.camera.WorldToScreen(e.Pos)
		if !onScreen {
			continue
		}
		color := entityColor(e)
		if !v.Tiles[e.Pos.Y][e.Pos.X].Visible {
			color = Dim
		}
		r.putGlyph(sx, sy, e.Glyph, tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack))
	}
}

// putGlyph draws a single glyph at screen position (x, y), padding it to
// CellWidth columns.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	for col := runewidth.StringWidth(glyph); col < CellWidth; col++ {
		r.screen.SetContent(x+col, y, ' ', nil, style)
	}
}
