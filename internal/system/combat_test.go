package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"dungeon-crawler/internal/entity"
)

type fakeContext struct {
	msgs      []string
	afflicted []entity.EffectSpec
	targets   []*entity.Creature
}

func (f *fakeContext) Notify(msg string) { f.msgs = append(f.msgs, msg) }

func (f *fakeContext) Afflict(target *entity.Creature, spec entity.EffectSpec) {
	f.targets = append(f.targets, target)
	f.afflicted = append(f.afflicted, spec)
}

func newHero() *entity.Creature {
	return entity.NewHero(entity.HeroSetup{Name: "Hero", HP: 10, Strength: 2, Stomach: 10, LevelSize: 25, InventorySize: 10})
}

func TestEncounterUnarmedUsesStrength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.IntRange(0, 20).Draw(t, "strength")
		h := rapid.IntRange(s+1, 100).Draw(t, "hp")
		attacker := entity.NewCreature("Ork", "", 6, s, 10, 0)
		defender := entity.NewCreature("Blob", "", h, 1, 8, 0)
		var ctx fakeContext
		res := Encounter(attacker, defender, &ctx)
		if defender.HP != h-s || res.Damage != s || res.Killed {
			t.Fatalf("hp %d -> %d with strength %d (result %+v)", h, defender.HP, s, res)
		}
	})
}

func TestEncounterWeaponOverridesStrength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.IntRange(0, 20).Draw(t, "strength")
		d := rapid.IntRange(0, 20).Draw(t, "damage")
		attacker := newHero()
		attacker.Strength = s
		attacker.Weapon = entity.NewWeapon("Basic Sword", "†", 2, entity.WeaponStats{Damage: d})
		defender := entity.NewCreature("Dragon", "", 100, 3, 50, 0)
		var ctx fakeContext
		Encounter(attacker, defender, &ctx)
		if defender.HP != 100-d {
			t.Fatalf("weapon damage %d, strength %d: hp went to %d", d, s, defender.HP)
		}
	})
}

func TestEncounterKillGrantsXP(t *testing.T) {
	hero := newHero()
	goblin := entity.NewCreature("Goblin", "", 4, 1, 4, 0)
	var ctx fakeContext

	res := Encounter(hero, goblin, &ctx)
	assert.False(t, res.Killed)
	assert.Equal(t, 2, goblin.HP)

	res = Encounter(hero, goblin, &ctx)
	assert.True(t, res.Killed)
	assert.Zero(t, goblin.HP)
	assert.Equal(t, 4, hero.Hero.XP)
	assert.Equal(t, []string{
		"The Hero hits the <Goblin>(2)",
		"The Hero hits the <Goblin>(0)",
		"You gained 4 XP points",
	}, ctx.msgs)
}

func TestEncounterClampsOverkill(t *testing.T) {
	hero := newHero()
	hero.Strength = 9
	bat := entity.NewCreature("Bat", "W", 2, 1, 2, 0)
	var ctx fakeContext
	res := Encounter(hero, bat, &ctx)
	assert.True(t, res.Killed)
	assert.Zero(t, bat.HP)
}

func TestEncounterHeroDeathGrantsNothing(t *testing.T) {
	hero := newHero()
	hero.HP = 1
	death := entity.NewCreature("Death", "ñ", 50, 3, 100, 0)
	var ctx fakeContext
	res := Encounter(death, hero, &ctx)
	assert.True(t, res.Killed)
	assert.Zero(t, hero.HP)
	assert.Equal(t, []string{"The Death hits the <Hero>(0)"}, ctx.msgs)
}

func TestEncounterPowersRespectCooldown(t *testing.T) {
	spider := entity.NewCreature("Poisonous spider", "&", 5, 0, 10, 0)
	poison := entity.EffectSpec{Kind: entity.EffectPoison, Duration: 2, Level: 1}
	spider.Powers = []entity.EffectSpec{poison}
	spider.PowerCooldown = 2
	hero := newHero()
	var ctx fakeContext

	fired := make([]bool, 0, 5)
	for range 5 {
		fired = append(fired, Encounter(spider, hero, &ctx).PowersFired)
	}
	assert.Equal(t, []bool{true, false, false, true, false}, fired)
	require.Len(t, ctx.afflicted, 2)
	assert.Equal(t, poison, ctx.afflicted[0])
	assert.Same(t, hero, ctx.targets[0])
}

func TestStrikeUsesGivenDamage(t *testing.T) {
	hero := newHero()
	ork := entity.NewCreature("Ork", "", 6, 2, 10, 0)
	var ctx fakeContext
	res := Strike(hero, ork, 3, &ctx)
	assert.Equal(t, 3, res.Damage)
	assert.Equal(t, 3, ork.HP)
}
