package generate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/geom"
)

func defaultTestConfig(seed int64) Config {
	return Config{
		Size:         20,
		RoomAttempts: 7,
		MinSpan:      4,
		MaxSpan:      8,
		Rand:         rand.New(rand.NewSource(seed)),
	}
}

// reachable flood-fills floor cells from start using 4-way steps.
func reachable(m *gamemap.Map, start geom.Coord) map[geom.Coord]bool {
	seen := map[geom.Coord]bool{start: true}
	queue := []geom.Coord{start}
	dirs := []geom.Coord{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			n := cur.Add(d)
			if seen[n] || m.Get(n).Cell != gamemap.Floor {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func TestBuildAllRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		l := Build(defaultTestConfig(seed))
		rooms := l.Rooms()
		require.NotEmpty(t, rooms, "seed=%d", seed)
		seen := reachable(l.Map, rooms[0].Center())
		for i, r := range rooms {
			if !seen[r.Center()] {
				t.Errorf("seed=%d: room %d %v unreachable from start", seed, i, r)
			}
		}
		assert.Empty(t, l.Pending(), "seed=%d", seed)
	}
}

func TestBuildConnectivityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := defaultTestConfig(rapid.Int64().Draw(t, "seed"))
		cfg.Size = rapid.IntRange(12, 40).Draw(t, "size")
		cfg.RoomAttempts = rapid.IntRange(1, 15).Draw(t, "attempts")
		l := Build(cfg)

		rooms := l.Rooms()
		if len(rooms) == 0 {
			t.Fatalf("no rooms accepted")
		}
		seen := reachable(l.Map, rooms[0].Center())
		for _, r := range rooms {
			if !seen[r.Center()] {
				t.Fatalf("room %v unreachable", r)
			}
		}
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Fatalf("room %v overlaps room %v", rooms[i], rooms[j])
				}
			}
		}
	})
}

func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		l := NewLayout(defaultTestConfig(seed))
		n := l.GenerateRooms(7)
		rooms := l.Pending()
		assert.Len(t, rooms, n)
		assert.LessOrEqual(t, n, 7)
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("seed=%d: room %d %v overlaps room %d %v", seed, i, rooms[i], j, rooms[j])
				}
			}
		}
		for _, r := range rooms {
			assert.True(t, l.Map.InBounds(r.C2), "seed=%d: %v leaves the grid", seed, r)
		}
	}
}

func TestSpecialRoomComesFirst(t *testing.T) {
	cfg := defaultTestConfig(3)
	boss := gamemap.NewRoom(geom.Coord{X: 1, Y: 1}, geom.Coord{X: 19, Y: 10})
	cfg.Special = boss
	l := Build(cfg)
	assert.Same(t, boss, l.Rooms()[0])
}

func TestCorridorDigsVerticalThenHorizontal(t *testing.T) {
	l := NewLayout(defaultTestConfig(0))
	l.Corridor(geom.Coord{X: 2, Y: 2}, geom.Coord{X: 6, Y: 5})
	for y := 2; y <= 5; y++ {
		assert.True(t, l.Map.IsFloor(geom.Coord{X: 2, Y: y}), "vertical leg at y=%d", y)
	}
	for x := 2; x <= 6; x++ {
		assert.True(t, l.Map.IsFloor(geom.Coord{X: x, Y: 5}), "horizontal leg at x=%d", x)
	}
	assert.False(t, l.Map.IsFloor(geom.Coord{X: 6, Y: 2}))
}

func TestCorridorThroughPendingRoomReachesIt(t *testing.T) {
	l := NewLayout(defaultTestConfig(0))
	a := gamemap.NewRoom(geom.Coord{X: 0, Y: 0}, geom.Coord{X: 2, Y: 2})
	middle := gamemap.NewRoom(geom.Coord{X: 0, Y: 8}, geom.Coord{X: 3, Y: 10})
	far := gamemap.NewRoom(geom.Coord{X: 12, Y: 9}, geom.Coord{X: 15, Y: 12})
	for _, r := range []*gamemap.Room{a, middle, far} {
		l.addRoom(r)
	}
	l.reached = append(l.reached, l.pending[0])
	l.pending = l.pending[1:]

	l.Corridor(a.Center(), far.Center())
	assert.Empty(t, l.Pending())
	assert.Contains(t, l.Rooms(), middle)
}

func TestDigOutsideGridPanics(t *testing.T) {
	l := NewLayout(defaultTestConfig(0))
	assert.Panics(t, func() { l.dig(geom.Coord{X: -1, Y: 0}) })
}

type fixedStock struct{ equipment, monsters int }

func (s *fixedStock) RandomEquipment(*rand.Rand) *entity.Equipment {
	s.equipment++
	return entity.NewEquipment("healing potion", "!", 1)
}

func (s *fixedStock) RandomMonster(*rand.Rand) *entity.Creature {
	s.monsters++
	return entity.NewCreature("Goblin", "", 4, 1, 4, 0)
}

func TestDecorate(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		l := Build(defaultTestConfig(seed))
		hero := entity.NewHero(entity.HeroSetup{Name: "Hero", HP: 10, Strength: 2, Stomach: 10, LevelSize: 25, InventorySize: 10})
		down := entity.NewRoomObject("downstairs", "v", entity.RoomDownstairs)
		stock := &fixedStock{}

		l.Decorate(Furnishing{Objects: []entity.Entity{down}, Hero: hero, Stock: stock}, zap.NewNop())

		pos, ok := l.Map.Pos(hero)
		require.True(t, ok)
		assert.Equal(t, l.Rooms()[0].Center(), pos)
		assert.Same(t, hero, l.Map.Hero())

		_, ok = l.Map.Pos(down)
		assert.True(t, ok, "seed=%d: stairs placed", seed)

		rooms := len(l.Rooms())
		assert.Equal(t, rooms, stock.equipment, "seed=%d", seed)
		assert.Equal(t, rooms, stock.monsters, "seed=%d", seed)
		assert.Len(t, l.Map.Entities(), 2*rooms+2)
	}
}
