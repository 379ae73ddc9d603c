package entity

// UseContext is what an item needs from the running session when it is used.
type UseContext interface {
	Notifier
	Afflict(target *Creature, spec EffectSpec)
}

// Usage binds an item to the effect it produces. Keep marks items that
// survive being used.
type Usage struct {
	Effect EffectSpec
	Keep   bool
}

// WeaponStats turns an Equipment into a weapon.
type WeaponStats struct {
	Damage      int
	ThrowDamage int
	// Returns marks weapons that come back to the thrower.
	Returns bool
}

// Equipment is an item that can lie on the floor or sit in an inventory.
// A non-nil Weapon makes it a weapon.
type Equipment struct {
	Base
	Usage  *Usage
	Price  int
	Gold   int
	Weapon *WeaponStats
}

// NewEquipment returns a plain item.
func NewEquipment(name, abbrev string, price int) *Equipment {
	return &Equipment{Base: newBase(name, abbrev), Price: price}
}

// NewWeapon returns a weapon.
func NewWeapon(name, abbrev string, price int, stats WeaponStats) *Equipment {
	e := NewEquipment(name, abbrev, price)
	e.Weapon = &stats
	return e
}

func (e *Equipment) IsWeapon() bool { return e.Weapon != nil }

// Clone returns a copy with a fresh identity.
func (e *Equipment) Clone() *Equipment {
	cp := *e
	cp.Base = newBase(e.Name, e.Abbrev)
	if e.Usage != nil {
		u := *e.Usage
		cp.Usage = &u
	}
	if e.Weapon != nil {
		w := *e.Weapon
		cp.Weapon = &w
	}
	return &cp
}

// Use applies the item's usage to user and reports whether the item is
// used up.
func (e *Equipment) Use(user *Creature, ctx UseContext) bool {
	if e.Usage == nil {
		ctx.Notify("The " + e.Name + " is not usable")
		return false
	}
	ctx.Notify("The " + user.Name + " uses the " + e.Name)
	ctx.Afflict(user, e.Usage.Effect)
	return !e.Usage.Keep
}
