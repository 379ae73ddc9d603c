package game

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dungeon-crawler/internal/entity"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Session       uuid.UUID      `json:"session"`
	Seed          int64          `json:"seed"`
	Victory       bool           `json:"victory"`
	FloorsReached int            `json:"floors_reached"`
	TurnsPlayed   int            `json:"turns_played"`
	Level         int            `json:"level"`
	Gold          int            `json:"gold"`
	EnemiesKilled map[string]int `json:"enemies_killed"` // name → kill count
	ItemsUsed     map[string]int `json:"items_used"`     // name → use count
	DamageDealt   int            `json:"damage_dealt"`
	DamageTaken   int            `json:"damage_taken"`
	CauseOfDeath  string         `json:"cause_of_death,omitempty"` // last thing that hurt the hero
	EndedAt       time.Time      `json:"ended_at,omitzero"`
}

func newRunLog(id uuid.UUID, seed int64) RunLog {
	return RunLog{
		Session:       id,
		Seed:          seed,
		EnemiesKilled: make(map[string]int),
		ItemsUsed:     make(map[string]int),
	}
}

// finish stamps the final state of the hero.
func (r *RunLog) finish(hero *entity.Creature, won bool) {
	r.Victory = won
	if won {
		r.CauseOfDeath = ""
	}
	r.Level = hero.Hero.Level
	r.Gold = hero.Hero.Gold
	r.EndedAt = time.Now().UTC()
}

func (r RunLog) snapshot() RunLog {
	r.EnemiesKilled = maps.Clone(r.EnemiesKilled)
	r.ItemsUsed = maps.Clone(r.ItemsUsed)
	return r
}

// SaveRunLog appends the completed run as a single JSON line to runs.jsonl.
func SaveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return fmt.Errorf("save run log: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save run log: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("save run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("save run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("save run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/dungeon-crawler,
// defaulting to ~/.local/share/dungeon-crawler.
func runLogDir() (string, error) {
	return DataDir()
}

// DataDir returns the directory holding the run logs, also used for the
// default log file.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dungeon-crawler"), nil
}
