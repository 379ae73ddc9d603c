package render

import (
	"github.com/gdamore/tcell/v2"

	"dungeon-crawler/internal/game"
)

// FloorTheme holds the glyphs and colors used to draw one floor's terrain.
// Explored cells that are out of sight keep their glyph and lose their color.
type FloorTheme struct {
	Wall, Floor rune
	WallColor   tcell.Color
	FloorColor  tcell.Color
}

// Dim is the color of explored cells outside the field of view.
var Dim = tcell.ColorDarkSlateGray

// Themes cycles by floor index; deeper floors than the table reuse it.
var Themes = []FloorTheme{
	{Wall: '#', Floor: '.', WallColor: tcell.ColorSandyBrown, FloorColor: tcell.ColorGray},
	{Wall: '#', Floor: '.', WallColor: tcell.ColorSteelBlue, FloorColor: tcell.ColorLightSlateGray},
	{Wall: '#', Floor: '.', WallColor: tcell.ColorOliveDrab, FloorColor: tcell.ColorDarkKhaki},
	{Wall: '#', Floor: '.', WallColor: tcell.ColorDarkRed, FloorColor: tcell.ColorRosyBrown},
}

// ThemeFor returns the terrain theme of floor i (0-indexed).
func ThemeFor(i int) FloorTheme {
	if i < 0 {
		i = 0
	}
	return Themes[i%len(Themes)]
}

// entityColor picks the foreground for an entity row.
func entityColor(e game.EntityView) tcell.Color {
	switch e.Kind {
	case game.KindHero:
		return tcell.ColorWhite
	case game.KindMonster:
		if e.MaxHP > 0 && e.HP*2 < e.MaxHP {
			return tcell.ColorOrangeRed
		}
		return tcell.ColorRed
	case game.KindWeapon:
		return tcell.ColorAqua
	case game.KindItem:
		return tcell.ColorYellow
	case game.KindObject:
		return tcell.ColorFuchsia
	}
	return tcell.ColorWhite
}

// drawOrder puts objects below items below creatures below the hero.
func drawOrder(k game.EntityKind) int {
	switch k {
	case game.KindObject:
		return 0
	case game.KindItem, game.KindWeapon:
		return 1
	case game.KindMonster:
		return 2
	}
	return 3
}
