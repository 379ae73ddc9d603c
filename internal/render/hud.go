package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"dungeon-crawler/internal/game"
)

// messageRows is how many log lines fit under the stat block.
const messageRows = HUDHeight - 4

// StatusLine formats the hero stat block on one line.
func StatusLine(v game.View) string {
	h := v.Hero
	return fmt.Sprintf("%s  HP:%d/%d  Str:%d  Lvl:%d (%d/%d xp)  Gold:%d  Food:%d/%d  Floor:%d/%d  Turn:%d",
		h.Name, h.HP, h.MaxHP, h.Strength, h.Level, h.XP, h.Threshold, h.Gold,
		h.Stomach, h.MaxStomach, v.Floor+1, v.Floors, v.Round)
}

// InventoryLine lists the equipped weapon and the numbered bag slots.
func InventoryLine(h game.HeroView) string {
	var b strings.Builder
	weapon := h.Weapon
	if weapon == "" {
		weapon = "bare hands"
	}
	fmt.Fprintf(&b, "Weapon: %s  Bag:", weapon)
	if len(h.Inventory) == 0 {
		b.WriteString(" empty")
	}
	for i, name := range h.Inventory {
		fmt.Fprintf(&b, " %d:%s", i, name)
	}
	return b.String()
}

// drawHUD renders the status bar and the message log under the map.
func (r *Renderer) drawHUD(v game.View, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if v.Hero.MaxHP > 0 && v.Hero.HP*4 <= v.Hero.MaxHP {
		statusStyle = statusStyle.Foreground(tcell.ColorRed)
	}
	r.drawText(0, hudY+1, StatusLine(v), statusStyle)
	r.drawText(0, hudY+2, InventoryLine(v.Hero), tcell.StyleDefault.Foreground(tcell.ColorAqua))

	var extra []string
	if len(v.Hero.Effects) > 0 {
		extra = append(extra, "Effects: "+strings.Join(v.Hero.Effects, ", "))
	}
	if len(v.Offers) > 0 {
		offers := make([]string, len(v.Offers))
		for i, o := range v.Offers {
			offers[i] = fmt.Sprintf("%d:%s", i, o)
		}
		extra = append(extra, "Shop (p): "+strings.Join(offers, " "))
	}
	r.drawText(0, hudY+3, strings.Join(extra, "  "), tcell.StyleDefault.Foreground(tcell.ColorFuchsia))

	start := max(len(messages)-messageRows, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+4+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, truncated to the screen width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range runewidth.Truncate(text, w-x, "…") {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// DrawText exposes text drawing for the front end's menus.
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) { r.drawText(x, y, text, style) }
