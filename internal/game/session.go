// Package game drives a play session: it owns the floors, the hero, the
// active effects and the message queue, and advances the world one turn per
// accepted intent.
package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/content"
	"dungeon-crawler/internal/effect"
	"dungeon-crawler/internal/entity"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/generate"
	"dungeon-crawler/internal/message"
)

// State tracks the session state machine.
type State uint8

const (
	StatePlaying State = iota
	// StateGameOver is reached when the hero dies.
	StateGameOver
	// StateWon is reached when the final boss dies.
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	case StateWon:
		return "won"
	}
	return "unknown"
}

// floor is one built level. Floors persist for the whole session.
type floor struct {
	m    *gamemap.Map
	up   *entity.RoomObject
	down *entity.RoomObject
}

// Session is the top-level orchestrator.
type Session struct {
	ID      uuid.UUID
	cfg     config.GameConfig
	catalog *content.Catalog
	log     *zap.Logger
	rng     *rand.Rand

	floors  []*floor
	current int
	hero    *entity.Creature
	boss    *entity.Creature

	effects *effect.Registry
	msgs    message.Queue
	round   int
	state   State
	offers  []*entity.Equipment
	runLog  RunLog

	// refused is set while resolving a move when the hero could not pick up
	// what it bumped into.
	refused bool
	// starving counts the rounds played on an empty stomach.
	starving int
}

// Option configures New.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithCatalog sets the content catalogue, overriding cfg.Catalog.
func WithCatalog(c *content.Catalog) Option {
	return func(s *Session) { s.catalog = c }
}

// New builds every floor of a fresh session and places the hero at the
// center of the first room of floor 0. cfg.Seed seeds every random choice.
//
// Precondition: cfg passed config validation.
func New(cfg config.GameConfig, opts ...Option) (*Session, error) {
	s := &Session{
		ID:  uuid.New(),
		cfg: cfg,
		log: zap.NewNop(),
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		if cfg.Catalog == "" {
			s.catalog = content.Default()
		} else {
			c, err := content.LoadFile(cfg.Catalog)
			if err != nil {
				return nil, fmt.Errorf("new session: %w", err)
			}
			s.catalog = c
		}
	}
	s.log = s.log.With(zap.Stringer("session", s.ID))
	s.effects = effect.NewRegistry(s.log)
	s.hero = entity.NewHero(entity.HeroSetup{
		Name:          cfg.Hero.Name,
		HP:            cfg.Hero.HP,
		Strength:      cfg.Hero.Strength,
		Stomach:       cfg.Hero.Stomach,
		LevelSize:     cfg.Hero.LevelSize,
		InventorySize: cfg.Hero.InventorySize,
	})
	s.runLog = newRunLog(s.ID, cfg.Seed)

	s.buildFloors()
	s.runLog.FloorsReached = 1
	s.reveal()
	s.log.Info("session started",
		zap.Int64("seed", cfg.Seed),
		zap.Int("floors", len(s.floors)))
	return s, nil
}

// buildFloors generates every floor. The merchant room goes to a random
// floor before the last one; the last floor holds the boss room.
func (s *Session) buildFloors() {
	n := s.cfg.Floors
	shopFloor := s.rng.Intn(n - 1)
	for i := range n {
		var special *gamemap.Room
		switch {
		case i == n-1:
			special, s.boss = s.catalog.BossRoom()
		case i == shopFloor:
			special = s.catalog.MerchantRoom()
		}
		layout := generate.Build(generate.Config{
			Size:         s.cfg.MapSize,
			RoomAttempts: s.cfg.RoomAttempts,
			MinSpan:      s.cfg.RoomMinSpan,
			MaxSpan:      s.cfg.RoomMaxSpan,
			Special:      special,
			Rand:         s.rng,
		})

		f := &floor{m: layout.Map}
		var objects []entity.Entity
		if i > 0 {
			f.up = s.catalog.Upstairs()
			objects = append(objects, f.up)
		}
		if i < n-1 {
			f.down = s.catalog.Downstairs()
			objects = append(objects, f.down)
		}
		furnishing := generate.Furnishing{Objects: objects, Stock: s.catalog.Stock(i + 1)}
		if i == 0 {
			furnishing.Hero = s.hero
		}
		layout.Decorate(furnishing, s.log.With(zap.Int("floor", i)))
		s.floors = append(s.floors, f)

		s.log.Debug("floor built",
			zap.Int("floor", i),
			zap.Int("rooms", len(layout.Rooms())),
			zap.Bool("shop", i == shopFloor),
			zap.Bool("boss", i == n-1))
	}
}

// Map returns the floor the hero is on.
func (s *Session) Map() *gamemap.Map { return s.floors[s.current].m }

// Hero returns the player character.
func (s *Session) Hero() *entity.Creature { return s.hero }

// Floor returns the index of the current floor and the number of floors.
func (s *Session) Floor() (int, int) { return s.current, len(s.floors) }

// Round returns the number of completed turns.
func (s *Session) Round() int { return s.round }

// State returns the session state.
func (s *Session) State() State { return s.state }

// Over reports whether the session reached a terminal state.
func (s *Session) Over() bool { return s.state != StatePlaying }

// Effects returns the active effects registry.
func (s *Session) Effects() *effect.Registry { return s.effects }

// Offers returns what the merchant currently proposes.
func (s *Session) Offers() []*entity.Equipment { return append([]*entity.Equipment(nil), s.offers...) }

// RunLog returns the statistics gathered so far.
func (s *Session) RunLog() RunLog { return s.runLog.snapshot() }

// Notify queues a player-facing message.
func (s *Session) Notify(msg string) { s.msgs.Notify(msg) }

// ReadMessages drains the message queue.
func (s *Session) ReadMessages() []string { return s.msgs.Read() }

// reveal updates the fog of war around the hero.
func (s *Session) reveal() {
	if pos, ok := s.Map().Pos(s.hero); ok {
		s.Map().Reveal(pos, s.cfg.SightRadius)
	}
}
