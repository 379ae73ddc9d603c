package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeon-crawler/internal/entity"
)

func newSession(t *testing.T, seed int64) *Session {
	t.Helper()
	cfg := testConfig()
	cfg.Seed = seed
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestNewBuildsEveryFloor(t *testing.T) {
	s := newSession(t, 1)
	cur, n := s.Floor()
	assert.Zero(t, cur)
	assert.Equal(t, 3, n)
	assert.Equal(t, StatePlaying, s.State())

	_, placed := s.Map().Pos(s.Hero())
	assert.True(t, placed)
	rooms := s.Map().Rooms()
	require.NotEmpty(t, rooms)

	assert.Nil(t, s.floors[0].up)
	assert.NotNil(t, s.floors[0].down)
	assert.NotNil(t, s.floors[1].up)
	assert.NotNil(t, s.floors[1].down)
	assert.NotNil(t, s.floors[2].up)
	assert.Nil(t, s.floors[2].down)

	_, bossPlaced := s.floors[2].m.Pos(s.boss)
	assert.True(t, bossPlaced)
	assert.Equal(t, "Death", s.boss.Name)
}

func TestMerchantOnOneFloorBeforeTheLast(t *testing.T) {
	for seed := range int64(10) {
		s := newSession(t, seed)
		var found []int
		for i, f := range s.floors {
			for _, e := range f.m.Entities() {
				if o, ok := e.(*entity.RoomObject); ok && o.Kind == entity.RoomMerchant {
					found = append(found, i)
				}
			}
		}
		require.Len(t, found, 1, "seed %d", seed)
		assert.Less(t, found[0], len(s.floors)-1, "seed %d", seed)
	}
}

func TestSameSeedSameDungeon(t *testing.T) {
	a, b := newSession(t, 42), newSession(t, 42)
	for i := range a.floors {
		assert.Equal(t, a.floors[i].m.String(), b.floors[i].m.String(), "floor %d", i)
	}
}

func TestStairsLinkFloors(t *testing.T) {
	s := newSession(t, 3)
	down := s.floors[0].down
	_, ok := s.floors[0].m.Pos(down)
	require.True(t, ok)

	require.True(t, s.UseObject(s.Hero(), down))
	cur, _ := s.Floor()
	assert.Equal(t, 1, cur)
	_, onOld := s.floors[0].m.Pos(s.Hero())
	assert.False(t, onOld)

	heroAt, ok := s.Map().Pos(s.Hero())
	require.True(t, ok)
	upAt, ok := s.Map().Pos(s.floors[1].up)
	require.True(t, ok)
	assert.True(t, heroAt.Sub(upAt).IsUnit())
	assert.Equal(t, []string{"You are now on floor 2/3"}, s.ReadMessages())
	assert.True(t, s.Map().Explored(heroAt))

	require.True(t, s.UseObject(s.Hero(), s.floors[1].up))
	cur, _ = s.Floor()
	assert.Zero(t, cur)
	heroAt, _ = s.Map().Pos(s.Hero())
	downAt, _ := s.Map().Pos(down)
	assert.True(t, heroAt.Sub(downAt).IsUnit())
	assert.Equal(t, 2, s.RunLog().FloorsReached)
}

func TestMonstersNeverUseStairs(t *testing.T) {
	s := newSession(t, 3)
	g := entity.NewCreature("Goblin", "", 4, 1, 4, 0)
	assert.False(t, s.UseObject(g, s.floors[0].down))
	cur, _ := s.Floor()
	assert.Zero(t, cur)
}

func TestNewWithBadCatalogPath(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog = t.TempDir() + "/missing.yaml"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestRandomWalkNeverBreaksInvariants(t *testing.T) {
	s := newSession(t, 7)
	dirs := []Intent{Move(east), Move(west), {Kind: IntentMove, Dir: north}, {Kind: IntentMove, Dir: south}}
	for i := range 400 {
		if s.Over() {
			break
		}
		s.HandleIntent(dirs[s.rng.Intn(len(dirs))])
		s.ReadMessages()
		_, placed := s.Map().Pos(s.Hero())
		require.True(t, placed, "turn %d", i)
		for _, c := range s.Map().Creatures() {
			assert.GreaterOrEqual(t, c.HP, 0)
		}
	}
}
