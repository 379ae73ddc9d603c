// Package content loads the catalogue of monsters, items and rooms and draws
// random instances from it.
package content

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"dungeon-crawler/assets"
	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/geom"
)

// EffectTemplate names an effect in data.
type EffectTemplate struct {
	Effect   string `yaml:"effect"`
	Duration int    `yaml:"duration"`
	Level    int    `yaml:"level"`
}

// MonsterTemplate defines a monster archetype.
type MonsterTemplate struct {
	Tier          int              `yaml:"tier"`
	Name          string           `yaml:"name"`
	Glyph         string           `yaml:"glyph"`
	HP            int              `yaml:"hp"`
	Strength      int              `yaml:"strength"`
	XP            int              `yaml:"xp"`
	Powers        []EffectTemplate `yaml:"powers"`
	PowerCooldown int              `yaml:"power_cooldown"`
}

// EquipmentTemplate defines an item archetype. Gold > 0 makes it a coin pile.
type EquipmentTemplate struct {
	Tier  int             `yaml:"tier"`
	Name  string          `yaml:"name"`
	Glyph string          `yaml:"glyph"`
	Gold  int             `yaml:"gold"`
	Keep  bool            `yaml:"keep"`
	Usage *EffectTemplate `yaml:"usage"`
}

// WeaponTemplate defines a weapon archetype.
type WeaponTemplate struct {
	Tier        int    `yaml:"tier"`
	Name        string `yaml:"name"`
	Glyph       string `yaml:"glyph"`
	Damage      int    `yaml:"damage"`
	ThrowDamage int    `yaml:"throw_damage"`
	Returns     bool   `yaml:"returns"`
}

// ObjectTemplate defines a room object.
type ObjectTemplate struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
}

// RoomTemplate is a fixed room. Boss, when set, names the monster placed in it.
type RoomTemplate struct {
	C1   geom.Coord `yaml:"c1"`
	C2   geom.Coord `yaml:"c2"`
	Boss string     `yaml:"boss"`
}

// Prices are what the merchant charges.
type Prices struct {
	Equipment int `yaml:"equipment"`
	Weapon    int `yaml:"weapon"`
}

// File is the YAML layout of a catalogue.
type File struct {
	Monsters    []MonsterTemplate   `yaml:"monsters"`
	Equipment   []EquipmentTemplate `yaml:"equipment"`
	Weapons     []WeaponTemplate    `yaml:"weapons"`
	Prices      Prices              `yaml:"prices"`
	RoomObjects struct {
		Upstairs   ObjectTemplate `yaml:"upstairs"`
		Downstairs ObjectTemplate `yaml:"downstairs"`
		Merchant   ObjectTemplate `yaml:"merchant"`
	} `yaml:"room_objects"`
	SpecialRooms struct {
		Boss     RoomTemplate `yaml:"boss"`
		Merchant RoomTemplate `yaml:"merchant"`
	} `yaml:"special_rooms"`
}

// Validate checks the catalogue invariants and reports every violation.
//
// Postcondition: Returns nil iff every template is well formed, tier 0 holds
// at least one monster, one item and one weapon, and the boss exists.
func (f *File) Validate() error {
	var errs []error
	for _, m := range f.Monsters {
		if m.Name == "" {
			errs = append(errs, errors.New("monster: name must not be empty"))
		}
		if m.HP < 1 {
			errs = append(errs, fmt.Errorf("monster %q: hp must be >= 1", m.Name))
		}
		if m.Tier < 0 {
			errs = append(errs, fmt.Errorf("monster %q: tier must be >= 0", m.Name))
		}
		for _, p := range m.Powers {
			if _, err := p.spec(); err != nil {
				errs = append(errs, fmt.Errorf("monster %q: %w", m.Name, err))
			}
		}
	}
	for _, e := range f.Equipment {
		if e.Name == "" {
			errs = append(errs, errors.New("equipment: name must not be empty"))
		}
		if e.Tier < 0 {
			errs = append(errs, fmt.Errorf("equipment %q: tier must be >= 0", e.Name))
		}
		if e.Usage != nil {
			if _, err := e.Usage.spec(); err != nil {
				errs = append(errs, fmt.Errorf("equipment %q: %w", e.Name, err))
			}
		}
	}
	for _, w := range f.Weapons {
		if w.Name == "" {
			errs = append(errs, errors.New("weapon: name must not be empty"))
		}
		if w.Tier < 0 {
			errs = append(errs, fmt.Errorf("weapon %q: tier must be >= 0", w.Name))
		}
	}
	if !hasTierZero(f.Monsters, func(m MonsterTemplate) int { return m.Tier }) {
		errs = append(errs, errors.New("monsters: tier 0 must not be empty"))
	}
	if !hasTierZero(f.Equipment, func(e EquipmentTemplate) int { return e.Tier }) {
		errs = append(errs, errors.New("equipment: tier 0 must not be empty"))
	}
	if !hasTierZero(f.Weapons, func(w WeaponTemplate) int { return w.Tier }) {
		errs = append(errs, errors.New("weapons: tier 0 must not be empty"))
	}
	for kind, o := range map[string]ObjectTemplate{
		"upstairs":   f.RoomObjects.Upstairs,
		"downstairs": f.RoomObjects.Downstairs,
		"merchant":   f.RoomObjects.Merchant,
	} {
		if o.Name == "" {
			errs = append(errs, fmt.Errorf("room_objects.%s: name must not be empty", kind))
		}
	}
	for kind, r := range map[string]RoomTemplate{
		"boss":     f.SpecialRooms.Boss,
		"merchant": f.SpecialRooms.Merchant,
	} {
		if r.C1.X > r.C2.X || r.C1.Y > r.C2.Y {
			errs = append(errs, fmt.Errorf("special_rooms.%s: c1 must be the upper-left corner", kind))
		}
	}
	if boss := f.SpecialRooms.Boss.Boss; !slices.ContainsFunc(f.Monsters, func(m MonsterTemplate) bool { return m.Name == boss }) {
		errs = append(errs, fmt.Errorf("special_rooms.boss: unknown monster %q", boss))
	}
	return errors.Join(errs...)
}

func hasTierZero[T any](items []T, tier func(T) int) bool {
	return slices.ContainsFunc(items, func(it T) bool { return tier(it) == 0 })
}

func (t EffectTemplate) spec() (entity.EffectSpec, error) {
	kind, err := entity.ParseEffectKind(t.Effect)
	if err != nil {
		return entity.EffectSpec{}, err
	}
	return entity.EffectSpec{Kind: kind, Duration: t.Duration, Level: t.Level}, nil
}

// Catalog holds the entity prototypes built from a File, grouped by tier.
// Prototypes are never placed: every draw returns a clone.
type Catalog struct {
	monsters  []tier[*entity.Creature]
	equipment []tier[*entity.Equipment]
	weapons   []tier[*entity.Equipment]
	byName    map[string]*entity.Creature
	file      File
}

type tier[T any] struct {
	level   int
	entries []T
}

// Load parses and validates a catalogue from raw YAML bytes.
//
// Postcondition: Returns a usable *Catalog, or an error.
func Load(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return build(f), nil
}

// LoadFile reads a catalogue from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return c, nil
}

// Default returns the catalogue embedded in the binary. It panics if the
// embedded data is broken.
func Default() *Catalog {
	c, err := Load(assets.Catalog)
	if err != nil {
		panic(err)
	}
	return c
}

func build(f File) *Catalog {
	c := &Catalog{file: f, byName: make(map[string]*entity.Creature)}
	for _, m := range f.Monsters {
		cr := entity.NewCreature(m.Name, m.Glyph, m.HP, m.Strength, m.XP, 0)
		for _, p := range m.Powers {
			spec, _ := p.spec()
			cr.Powers = append(cr.Powers, spec)
		}
		cr.PowerCooldown = m.PowerCooldown
		c.monsters = addTo(c.monsters, m.Tier, cr)
		c.byName[m.Name] = cr
	}
	for _, e := range f.Equipment {
		eq := entity.NewEquipment(e.Name, e.Glyph, f.Prices.Equipment)
		eq.Gold = e.Gold
		if e.Usage != nil {
			spec, _ := e.Usage.spec()
			eq.Usage = &entity.Usage{Effect: spec, Keep: e.Keep}
		}
		c.equipment = addTo(c.equipment, e.Tier, eq)
	}
	for _, w := range f.Weapons {
		wp := entity.NewWeapon(w.Name, w.Glyph, f.Prices.Weapon, entity.WeaponStats{
			Damage:      w.Damage,
			ThrowDamage: w.ThrowDamage,
			Returns:     w.Returns,
		})
		c.weapons = addTo(c.weapons, w.Tier, wp)
	}
	return c
}

func addTo[T any](tiers []tier[T], level int, v T) []tier[T] {
	i, found := slices.BinarySearchFunc(tiers, level, func(t tier[T], l int) int { return cmp.Compare(t.level, l) })
	if !found {
		tiers = slices.Insert(tiers, i, tier[T]{level: level})
	}
	tiers[i].entries = append(tiers[i].entries, v)
	return tiers
}

// Prices returns the merchant's price list.
func (c *Catalog) Prices() Prices { return c.file.Prices }

// Monster returns a fresh copy of the named monster.
func (c *Catalog) Monster(name string) (*entity.Creature, bool) {
	m, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}
