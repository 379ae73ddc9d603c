package render

import "dungeon-crawler/internal/geom"

// CellWidth is the number of terminal columns one map cell takes. Glyphs
// are padded to two columns so the grid reads square.
const CellWidth = 2

// Camera translates between map coordinates and screen coordinates.
type Camera struct {
	Offset     geom.Coord
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on c.
func NewCamera(c geom.Coord, viewW, viewH int) *Camera {
	cam := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	cam.Center(c)
	return cam
}

// Center repositions the camera so that c is in the middle of the view.
func (cam *Camera) Center(c geom.Coord) {
	cam.Offset = geom.Coord{X: c.X - (cam.ViewWidth/CellWidth)/2, Y: c.Y - cam.ViewHeight/2}
}

// Fit centers on c, but pins the view to the map edge when the whole map
// fits on screen along an axis.
func (cam *Camera) Fit(c geom.Coord, size int) {
	cam.Center(c)
	if size*CellWidth <= cam.ViewWidth {
		cam.Offset.X = 0
	}
	if size <= cam.ViewHeight {
		cam.Offset.Y = 0
	}
}

// WorldToScreen converts a map coordinate to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (cam *Camera) WorldToScreen(c geom.Coord) (sx, sy int, visible bool) {
	sx = (c.X - cam.Offset.X) * CellWidth
	sy = c.Y - cam.Offset.Y
	visible = sx >= 0 && sx < cam.ViewWidth && sy >= 0 && sy < cam.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to a map coordinate.
func (cam *Camera) ScreenToWorld(sx, sy int) geom.Coord {
	return geom.Coord{X: sx/CellWidth + cam.Offset.X, Y: sy + cam.Offset.Y}
}
