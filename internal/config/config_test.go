package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Game: GameConfig{
			Seed:             7,
			Floors:           3,
			MapSize:          20,
			RoomAttempts:     7,
			RoomMinSpan:      4,
			RoomMaxSpan:      8,
			AggressionRadius: 6,
			HungerInterval:   20,
			StarveInterval:   5,
			ThrowRange:       5,
			SightRadius:      5,
			Hero: HeroConfig{
				Name:          "Hero",
				HP:            10,
				Strength:      2,
				Stomach:       10,
				LevelSize:     25,
				InventorySize: 10,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	want := validConfig()
	want.Game.Seed = 0
	assert.Equal(t, want, cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
game:
  seed: 42
  floors: 5
  map_size: 30
  hero:
    name: Alice
    hp: 15
logging:
  level: debug
  format: console
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 5, cfg.Game.Floors)
	assert.Equal(t, 30, cfg.Game.MapSize)
	assert.Equal(t, "Alice", cfg.Game.Hero.Name)
	assert.Equal(t, 15, cfg.Game.Hero.HP)
	assert.Equal(t, 2, cfg.Game.Hero.Strength)
	assert.Equal(t, 7, cfg.Game.RoomAttempts)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
game:
  floors: 1
logging:
  format: xml
`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.floors")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DUNGEON_GAME_FLOORS", "4")
	t.Setenv("DUNGEON_LOGGING_LEVEL", "warn")
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.Floors)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"one floor", func(c *Config) { c.Game.Floors = 1 }, "game.floors"},
		{"small map", func(c *Config) { c.Game.MapSize = 10 }, "game.map_size"},
		{"no attempts", func(c *Config) { c.Game.RoomAttempts = 0 }, "game.room_attempts"},
		{"spans swapped", func(c *Config) { c.Game.RoomMaxSpan = 3 }, "game.room_max_span"},
		{"span too large", func(c *Config) { c.Game.RoomMaxSpan = 18 }, "game.room_max_span"},
		{"zero radius", func(c *Config) { c.Game.AggressionRadius = 0 }, "game.aggression_radius"},
		{"zero hunger", func(c *Config) { c.Game.HungerInterval = 0 }, "game.hunger_interval"},
		{"zero starve", func(c *Config) { c.Game.StarveInterval = 0 }, "game.starve_interval"},
		{"zero throw", func(c *Config) { c.Game.ThrowRange = 0 }, "game.throw_range"},
		{"zero sight", func(c *Config) { c.Game.SightRadius = 0 }, "game.sight_radius"},
		{"nameless hero", func(c *Config) { c.Game.Hero.Name = "" }, "game.hero.name"},
		{"dead hero", func(c *Config) { c.Game.Hero.HP = 0 }, "game.hero.hp"},
		{"no inventory", func(c *Config) { c.Game.Hero.InventorySize = 0 }, "game.hero.inventory_size"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProperty_ValidSpansPass(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(20, 80).Draw(rt, "size")
		lo := rapid.IntRange(2, size-3).Draw(rt, "min")
		hi := rapid.IntRange(lo, size-3).Draw(rt, "max")
		cfg := validConfig()
		cfg.Game.MapSize = size
		cfg.Game.RoomMinSpan = lo
		cfg.Game.RoomMaxSpan = hi
		assert.NoError(rt, cfg.Validate())
	})
}
