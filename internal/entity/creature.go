package entity

import "fmt"

// Creature is a monster or, when Hero is non-nil, the player character.
type Creature struct {
	Base
	HP       int
	MaxHP    int
	Strength int
	// XPReward is granted to whoever kills the creature.
	XPReward int
	Weapon   *Equipment
	Items    *Inventory

	// Powers fire on a successful hit when Cooldown is zero; Cooldown is then
	// reset to PowerCooldown.
	Powers        []EffectSpec
	PowerCooldown int
	Cooldown      int

	Hero *HeroStats
}

// NewCreature returns a monster with full hp and an empty inventory.
func NewCreature(name, abbrev string, hp, strength, xp, inventorySize int) *Creature {
	return &Creature{
		Base:     newBase(name, abbrev),
		HP:       hp,
		MaxHP:    hp,
		Strength: strength,
		XPReward: xp,
		Items:    NewInventory(inventorySize),
	}
}

// IsHero reports whether c is the player character.
func (c *Creature) IsHero() bool { return c.Hero != nil }

// Alive reports whether c still has hit points.
func (c *Creature) Alive() bool { return c.HP > 0 }

// AttackDamage is the equipped weapon's damage, or raw strength when unarmed.
func (c *Creature) AttackDamage() int {
	if c.Weapon != nil && c.Weapon.Weapon != nil {
		return c.Weapon.Weapon.Damage
	}
	return c.Strength
}

// Clone returns a fresh copy with a new identity, full hp and an empty
// inventory. Catalogue templates are never placed directly.
func (c *Creature) Clone() *Creature {
	cp := *c
	cp.Base = newBase(c.Name, c.Abbrev)
	cp.HP = c.MaxHP
	cp.Powers = append([]EffectSpec(nil), c.Powers...)
	if c.Items != nil {
		cp.Items = NewInventory(c.Items.Cap())
	}
	if c.Weapon != nil {
		cp.Weapon = c.Weapon.Clone()
	}
	if c.Hero != nil {
		h := *c.Hero
		cp.Hero = &h
	}
	return &cp
}

// Take picks up an equipment. Gold is added to the purse; anything else goes
// to the inventory. A full inventory refuses the item, leaves all state
// untouched and reports false.
func (c *Creature) Take(e *Equipment, out Notifier) bool {
	if e.Gold > 0 && c.Hero != nil {
		c.Hero.Gold += e.Gold
		out.Notify(fmt.Sprintf("You pick up %d gold", e.Gold))
		return true
	}
	if !c.Items.Add(e) {
		out.Notify("You don't have enough space in your inventory")
		return false
	}
	out.Notify("You pick up a " + e.Name)
	return true
}

// Use applies an inventory item through ctx and drops it from the
// inventory when it is consumed.
func (c *Creature) Use(e *Equipment, ctx UseContext) (bool, error) {
	if !c.Items.Contains(e) {
		return false, fmt.Errorf("use %s: %w", e.Name, ErrWrongElementType)
	}
	consumed := e.Use(c, ctx)
	if consumed {
		c.Items.Remove(e)
	}
	return consumed, nil
}

// EquipWeapon moves w from the inventory to the weapon slot. A weapon
// already in the slot goes back to the inventory.
func (c *Creature) EquipWeapon(w *Equipment, out Notifier) error {
	if w.Weapon == nil {
		return fmt.Errorf("equip %s: %w", w.Name, ErrWrongElementType)
	}
	if !c.Items.Remove(w) {
		return fmt.Errorf("equip %s: not carried: %w", w.Name, ErrWrongElementType)
	}
	if c.Weapon != nil {
		c.Items.Add(c.Weapon)
	}
	c.Weapon = w
	out.Notify("You equip the " + w.Name)
	return nil
}

// UnequipWeapon puts the equipped weapon back in the inventory.
func (c *Creature) UnequipWeapon(out Notifier) bool {
	if c.Weapon == nil {
		out.Notify("You don't have a weapon to remove from its slot")
		return false
	}
	if c.Items.Full() {
		out.Notify("You don't have any space in your inventory to place your weapon")
		return false
	}
	c.Items.Add(c.Weapon)
	c.Weapon = nil
	out.Notify("You removed your weapon from its slot")
	return true
}

// DeleteItem discards an inventory item.
func (c *Creature) DeleteItem(e *Equipment, out Notifier) bool {
	if !c.Items.Remove(e) {
		out.Notify("Could not find the item to delete")
		return false
	}
	out.Notify("You have successfully deleted the item : " + e.Name)
	return true
}
