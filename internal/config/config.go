// Package config provides Viper-based configuration loading for the dungeon.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// HeroConfig holds the starting stats of the player character.
type HeroConfig struct {
	Name          string `mapstructure:"name"`
	HP            int    `mapstructure:"hp"`
	Strength      int    `mapstructure:"strength"`
	Stomach       int    `mapstructure:"stomach"`
	LevelSize     int    `mapstructure:"level_size"`
	InventorySize int    `mapstructure:"inventory_size"`
}

// GameConfig holds the rules of a session.
type GameConfig struct {
	// Seed drives every random choice of the session. Zero lets the caller
	// pick one.
	Seed   int64 `mapstructure:"seed"`
	Floors int   `mapstructure:"floors"`
	// MapSize is the side of the square floor grid.
	MapSize      int `mapstructure:"map_size"`
	RoomAttempts int `mapstructure:"room_attempts"`
	RoomMinSpan  int `mapstructure:"room_min_span"`
	RoomMaxSpan  int `mapstructure:"room_max_span"`
	// AggressionRadius is the distance under which monsters chase the hero.
	AggressionRadius float64 `mapstructure:"aggression_radius"`
	// HungerInterval is the number of rounds between stomach decrements.
	HungerInterval int `mapstructure:"hunger_interval"`
	// StarveInterval is the number of rounds between hp losses while the
	// stomach is empty, counted from the round it emptied.
	StarveInterval int        `mapstructure:"starve_interval"`
	ThrowRange     int        `mapstructure:"throw_range"`
	SightRadius    int        `mapstructure:"sight_radius"`
	Hero           HeroConfig `mapstructure:"hero"`
	// Catalog optionally points to a YAML content catalogue replacing the
	// embedded one.
	Catalog string `mapstructure:"catalog"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a file path, "stderr" or "stdout". Empty lets the caller
	// decide, since the terminal front end owns the screen.
	Output string `mapstructure:"output"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.Floors < 2 {
		errs = append(errs, fmt.Sprintf("game.floors must be >= 2, got %d", g.Floors))
	}
	// The boss and merchant rooms are laid out on a 20x20 grid.
	if g.MapSize < 20 {
		errs = append(errs, fmt.Sprintf("game.map_size must be >= 20, got %d", g.MapSize))
	}
	if g.RoomAttempts < 1 {
		errs = append(errs, fmt.Sprintf("game.room_attempts must be >= 1, got %d", g.RoomAttempts))
	}
	if g.RoomMinSpan < 2 {
		errs = append(errs, fmt.Sprintf("game.room_min_span must be >= 2, got %d", g.RoomMinSpan))
	}
	if g.RoomMaxSpan < g.RoomMinSpan {
		errs = append(errs, "game.room_max_span must not be lower than game.room_min_span")
	}
	if g.RoomMaxSpan >= g.MapSize-2 {
		errs = append(errs, fmt.Sprintf("game.room_max_span must be < map_size-2, got %d", g.RoomMaxSpan))
	}
	if g.AggressionRadius <= 0 {
		errs = append(errs, "game.aggression_radius must be > 0")
	}
	if g.HungerInterval < 1 {
		errs = append(errs, fmt.Sprintf("game.hunger_interval must be >= 1, got %d", g.HungerInterval))
	}
	if g.StarveInterval < 1 {
		errs = append(errs, fmt.Sprintf("game.starve_interval must be >= 1, got %d", g.StarveInterval))
	}
	if g.ThrowRange < 1 {
		errs = append(errs, fmt.Sprintf("game.throw_range must be >= 1, got %d", g.ThrowRange))
	}
	if g.SightRadius < 1 {
		errs = append(errs, fmt.Sprintf("game.sight_radius must be >= 1, got %d", g.SightRadius))
	}
	if err := validateHero(g.Hero); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateHero(h HeroConfig) error {
	var errs []string
	if h.Name == "" {
		errs = append(errs, "game.hero.name must not be empty")
	}
	if h.HP < 1 {
		errs = append(errs, fmt.Sprintf("game.hero.hp must be >= 1, got %d", h.HP))
	}
	if h.Strength < 0 {
		errs = append(errs, fmt.Sprintf("game.hero.strength must be >= 0, got %d", h.Strength))
	}
	if h.Stomach < 1 {
		errs = append(errs, fmt.Sprintf("game.hero.stomach must be >= 1, got %d", h.Stomach))
	}
	if h.LevelSize < 1 {
		errs = append(errs, fmt.Sprintf("game.hero.level_size must be >= 1, got %d", h.LevelSize))
	}
	if h.InventorySize < 1 {
		errs = append(errs, fmt.Sprintf("game.hero.inventory_size must be >= 1, got %d", h.InventorySize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// Default returns the defaults with environment overrides applied.
//
// Postcondition: Returns a valid Config or a non-nil error from a bad override.
func Default() (Config, error) {
	return LoadFromViper(newViper())
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	// Environment variable overrides with DUNGEON_ prefix
	v.SetEnvPrefix("DUNGEON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.floors", 3)
	v.SetDefault("game.map_size", 20)
	v.SetDefault("game.room_attempts", 7)
	v.SetDefault("game.room_min_span", 4)
	v.SetDefault("game.room_max_span", 8)
	v.SetDefault("game.aggression_radius", 6)
	v.SetDefault("game.hunger_interval", 20)
	v.SetDefault("game.starve_interval", 5)
	v.SetDefault("game.throw_range", 5)
	v.SetDefault("game.sight_radius", 5)
	v.SetDefault("game.catalog", "")

	v.SetDefault("game.hero.name", "Hero")
	v.SetDefault("game.hero.hp", 10)
	v.SetDefault("game.hero.strength", 2)
	v.SetDefault("game.hero.stomach", 10)
	v.SetDefault("game.hero.level_size", 25)
	v.SetDefault("game.hero.inventory_size", 10)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "")
}
