// Package assets holds the game data shipped inside the binary.
package assets

import _ "embed"

// Catalog is the default content catalogue: monsters, items, weapons, room
// objects and special rooms.
//
//go:embed catalog.yaml
var Catalog []byte
