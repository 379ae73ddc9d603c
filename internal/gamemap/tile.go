package gamemap

// Cell is the terrain of one grid square. Occupants live in the map's
// position index, not in the cell.
type Cell uint8

const (
	Wall Cell = iota
	Floor
)

// Tile holds the terrain and fog-of-war state for one grid square.
type Tile struct {
	Cell     Cell
	Explored bool
	Visible  bool
}

// MakeWall returns an unexplored wall tile.
func MakeWall() Tile { return Tile{Cell: Wall} }

// MakeFloor returns an unexplored floor tile.
func MakeFloor() Tile { return Tile{Cell: Floor} }

// Walkable reports whether something may stand on the tile.
func (t Tile) Walkable() bool { return t.Cell == Floor }

// Transparent reports whether light passes through the tile.
func (t Tile) Transparent() bool { return t.Cell == Floor }
