// dungeon is the terminal front end of the dungeon crawler. Build:
//
//	go build -o dungeon ./cmd/dungeon
//
// Usage:
//
//	./dungeon [--config dungeon.yaml] [--seed 42]
//
// Runs are appended to $XDG_DATA_HOME/dungeon-crawler/runs.jsonl.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; built-in defaults when empty")
	seed := flag.Int64("seed", 0, "dungeon seed; 0 picks one from the clock")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}
	// The terminal belongs to tcell, so logs go to a file.
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = defaultLogPath()
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("creating screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("initializing screen", zap.Error(err))
	}

	logger.Info("starting dungeon", zap.Int64("seed", cfg.Game.Seed), zap.Int("floors", cfg.Game.Floors))
	err = newApp(screen, cfg.Game, logger).run()
	screen.Fini()
	if err != nil {
		logger.Error("game aborted", zap.Error(err))
		log.Fatalf("dungeon: %v", err)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

// defaultLogPath puts the log next to the run history, or discards it when
// no data directory is available.
func defaultLogPath() string {
	dir, err := game.DataDir()
	if err != nil {
		return os.DevNull
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return os.DevNull
	}
	return filepath.Join(dir, "dungeon.log")
}
