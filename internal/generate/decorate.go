package generate

import (
	"math/rand"

	"go.uber.org/zap"

	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/geom"
)

// Stocker supplies the random equipment and monsters dropped into rooms.
type Stocker interface {
	RandomEquipment(rng *rand.Rand) *entity.Equipment
	RandomMonster(rng *rand.Rand) *entity.Creature
}

// Furnishing lists what Decorate places on a floor.
type Furnishing struct {
	// Objects (stairs) are attached to random reached rooms.
	Objects []entity.Entity
	// Hero, when non-nil, is put at the center of the start room.
	Hero  *entity.Creature
	Stock Stocker
}

// Decorate attaches the objects to random rooms, places the hero, then fills
// every room with its specials, one random equipment and one random monster.
func (l *Layout) Decorate(f Furnishing, log *zap.Logger) {
	rng := l.cfg.Rand
	rooms := l.reached
	if len(rooms) == 0 {
		return
	}
	for _, obj := range f.Objects {
		r := rooms[rng.Intn(len(rooms))]
		r.Specials = append(r.Specials, obj)
	}
	if f.Hero != nil {
		l.Map.SetHero(f.Hero)
		l.Map.MustPut(rooms[0].Center(), f.Hero)
	}
	for _, r := range rooms {
		for _, special := range r.Specials {
			if c, ok := pick(rng, l.Map.OpenCells(r)); ok {
				l.Map.MustPut(c, special)
			} else if c, ok := pick(rng, l.Map.FreeCells(r)); ok {
				l.Map.MustPut(c, special)
			} else {
				log.Warn("no room left for special", zap.Stringer("room", r), zap.String("special", special.Ident().Name))
			}
		}
		if c, ok := pick(rng, l.Map.FreeCells(r)); ok {
			l.Map.MustPut(c, f.Stock.RandomEquipment(rng))
		}
		if c, ok := pick(rng, l.Map.FreeCells(r)); ok {
			l.Map.MustPut(c, f.Stock.RandomMonster(rng))
		}
	}
	log.Debug("floor decorated",
		zap.Int("rooms", len(rooms)),
		zap.Int("entities", len(l.Map.Entities())))
}

func pick(rng *rand.Rand, cells []geom.Coord) (geom.Coord, bool) {
	if len(cells) == 0 {
		return geom.Coord{}, false
	}
	return cells[rng.Intn(len(cells))], true
}
