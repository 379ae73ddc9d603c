// Package observability builds the process logger.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dungeon-crawler/internal/config"
)

// NewLogger builds a json or console zap logger at cfg.Level. A non-empty
// cfg.Output sends every line to that path instead of stderr, which keeps
// the terminal free for the screen.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("new logger: level %q: %w", cfg.Level, err)
	}
	formats := map[string]func() zap.Config{
		"json":    zap.NewProductionConfig,
		"console": zap.NewDevelopmentConfig,
	}
	base, ok := formats[cfg.Format]
	if !ok {
		return nil, fmt.Errorf("new logger: unknown format %q", cfg.Format)
	}

	zc := base()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Output != "" {
		zc.OutputPaths = []string{cfg.Output}
		zc.ErrorOutputPaths = []string{cfg.Output}
	}
	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	return log, nil
}
