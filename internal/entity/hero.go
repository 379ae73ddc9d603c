package entity

import (
	"fmt"
	"strings"
)

// HeroStats holds what only the player character tracks.
type HeroStats struct {
	Level      int
	XP         int
	Gold       int
	Stomach    int
	MaxStomach int
	// LevelSize times the current level is the xp needed for the next level.
	LevelSize int
}

// HeroSetup configures NewHero.
type HeroSetup struct {
	Name          string
	HP            int
	Strength      int
	Stomach       int
	LevelSize     int
	InventorySize int
}

// NewHero returns a level 1 hero.
func NewHero(s HeroSetup) *Creature {
	c := NewCreature(s.Name, "@", s.HP, s.Strength, 0, s.InventorySize)
	c.Hero = &HeroStats{
		Level:      1,
		Stomach:    s.Stomach,
		MaxStomach: s.Stomach,
		LevelSize:  s.LevelSize,
	}
	return c
}

// Threshold returns the xp needed to leave the current level.
func (h *HeroStats) Threshold() int { return h.LevelSize * h.Level }

// GainXP adds xp and levels up while the accumulated xp exceeds the
// threshold. Each level consumes its threshold, adds one strength and
// awards 1 + the new level in gold. It returns the number of levels gained.
// Non-hero creatures ignore xp.
func (c *Creature) GainXP(xp int, out Notifier) int {
	h := c.Hero
	if h == nil {
		return 0
	}
	h.XP += xp
	out.Notify(fmt.Sprintf("You gained %d XP points", xp))

	gained := 0
	for h.XP > h.Threshold() {
		h.XP -= h.Threshold()
		h.Level++
		c.Strength++
		h.Gold += 1 + h.Level
		gained++
	}
	if gained > 0 {
		out.Notify(fmt.Sprintf("You won %d level(s) and are now level %d", gained, h.Level))
	}
	return gained
}

// Starve is called on the starvation cadence: an empty stomach costs 1 hp.
func (c *Creature) Starve() bool {
	if c.Hero == nil || c.Hero.Stomach > 0 {
		return false
	}
	c.HP--
	return true
}

// FullDescription lists the hero's stats, weapon and inventory.
func (c *Creature) FullDescription() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s hp:%d/%d str:%d", Describe(c), c.HP, c.MaxHP, c.Strength)
	if h := c.Hero; h != nil {
		fmt.Fprintf(&b, " lvl:%d xp:%d/%d gold:%d food:%d/%d",
			h.Level, h.XP, h.Threshold(), h.Gold, h.Stomach, h.MaxStomach)
	}
	if c.Weapon != nil {
		fmt.Fprintf(&b, " weapon:%s", c.Weapon.Name)
	}
	names := make([]string, 0, c.Items.Len())
	for _, e := range c.Items.Items() {
		names = append(names, e.Name)
	}
	fmt.Fprintf(&b, " inventory:[%s]", strings.Join(names, ", "))
	return b.String()
}
