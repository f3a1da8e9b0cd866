// Package logging provides config-driven categorized logging for gseq.
// Every category gets a named zap logger writing to stderr, never to the
// sequence output. In debug mode the level drops to debug and individual
// categories can be switched off through logging.categories in the config.
package logging

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gseq/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, flag and config resolution
	CategoryConfig   Category = "config"   // Config file and env overrides
	CategoryPlan     Category = "plan"     // Operand parsing and mode selection
	CategoryGenerate Category = "generate" // Writing the sequence
)

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	current config.LoggingConfig
	loggers = make(map[Category]*zap.Logger)
)

// Initialize builds the process logger from cfg. Until it is called every
// category logs to a no-op logger. Each entry carries a run_id so runs
// appending to a shared logging.file can be told apart.
func Initialize(cfg config.LoggingConfig) error {
	logger, err := Build(cfg)
	if err != nil {
		return err
	}
	Use(logger.With(zap.String("run_id", uuid.NewString())), cfg)

	Get(CategoryBoot).Debug("logging initialized",
		zap.String("level", cfg.Level),
		zap.String("format", cfg.Format),
		zap.Bool("debug_mode", cfg.DebugMode))
	return nil
}

// Build turns cfg into a zap logger writing to stderr (and cfg.File when
// set). Debug mode forces the debug level.
func Build(cfg config.LoggingConfig) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}
	if cfg.DebugMode {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Sampling = nil
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zcfg.OutputPaths = append(zcfg.OutputPaths, cfg.File)
	}
	if cfg.Format != "json" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Use installs logger as the process logger with cfg's category filter.
func Use(logger *zap.Logger, cfg config.LoggingConfig) {
	mu.Lock()
	defer mu.Unlock()
	base = logger
	current = cfg
	loggers = make(map[Category]*zap.Logger)
}

// Reset restores the no-op logger.
func Reset() {
	Use(zap.NewNop(), config.LoggingConfig{})
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return current.DebugMode
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if the category is filtered out in debug mode.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	l := zap.NewNop()
	if !current.DebugMode || current.IsCategoryEnabled(string(category)) {
		l = base.Named(string(category))
	}
	loggers[category] = l
	return l
}

// Sync flushes the process logger.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sync()
}
