package content

import (
	"math/rand"

	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/gamemap"
)

// pick draws x from an exponential law of mean level and returns a uniform
// entry of the highest tier not above x. Tier 0 always qualifies.
func pick[T any](rng *rand.Rand, level int, tiers []tier[T]) T {
	x := rng.ExpFloat64() * float64(max(level, 1))
	chosen := tiers[0]
	for _, t := range tiers {
		if float64(t.level) > x {
			break
		}
		chosen = t
	}
	return chosen.entries[rng.Intn(len(chosen.entries))]
}

// RandomEquipment returns a fresh random item for the given depth.
func (c *Catalog) RandomEquipment(rng *rand.Rand, level int) *entity.Equipment {
	return pick(rng, level, c.equipment).Clone()
}

// RandomWeapon returns a fresh random weapon for the given depth.
func (c *Catalog) RandomWeapon(rng *rand.Rand, level int) *entity.Equipment {
	return pick(rng, level, c.weapons).Clone()
}

// RandomMonster returns a fresh random monster for the given depth.
func (c *Catalog) RandomMonster(rng *rand.Rand, level int) *entity.Creature {
	return pick(rng, level, c.monsters).Clone()
}

// Offers rolls the merchant's stall: two items and one weapon. Coin piles
// are rerolled.
func (c *Catalog) Offers(rng *rand.Rand, level int) []*entity.Equipment {
	offers := make([]*entity.Equipment, 0, 3)
	for len(offers) < 2 {
		e := c.RandomEquipment(rng, level)
		if e.Gold > 0 {
			continue
		}
		offers = append(offers, e)
	}
	return append(offers, c.RandomWeapon(rng, level))
}

// Stock binds the catalogue to a depth so it can fill a floor.
func (c *Catalog) Stock(level int) Stock { return Stock{c: c, level: level} }

// Stock draws floor content at a fixed depth.
type Stock struct {
	c     *Catalog
	level int
}

func (s Stock) RandomEquipment(rng *rand.Rand) *entity.Equipment {
	return s.c.RandomEquipment(rng, s.level)
}

func (s Stock) RandomMonster(rng *rand.Rand) *entity.Creature {
	return s.c.RandomMonster(rng, s.level)
}

// Upstairs returns a new upward staircase.
func (c *Catalog) Upstairs() *entity.RoomObject {
	o := c.file.RoomObjects.Upstairs
	return entity.NewRoomObject(o.Name, o.Glyph, entity.RoomUpstairs)
}

// Downstairs returns a new downward staircase.
func (c *Catalog) Downstairs() *entity.RoomObject {
	o := c.file.RoomObjects.Downstairs
	return entity.NewRoomObject(o.Name, o.Glyph, entity.RoomDownstairs)
}

// Merchant returns a new merchant stall.
func (c *Catalog) Merchant() *entity.RoomObject {
	o := c.file.RoomObjects.Merchant
	return entity.NewRoomObject(o.Name, o.Glyph, entity.RoomMerchant)
}

// BossRoom returns the final room with a fresh boss inside. The boss is
// returned as well so the caller can recognise its death.
func (c *Catalog) BossRoom() (*gamemap.Room, *entity.Creature) {
	t := c.file.SpecialRooms.Boss
	boss, _ := c.Monster(t.Boss)
	return gamemap.NewRoom(t.C1, t.C2, boss), boss
}

// MerchantRoom returns the shop room with its stall.
func (c *Catalog) MerchantRoom() *gamemap.Room {
	t := c.file.SpecialRooms.Merchant
	return gamemap.NewRoom(t.C1, t.C2, c.Merchant())
}
