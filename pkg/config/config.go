package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds host-tunable runtime settings, loaded from the environment.
// Every field has a sensible default so an empty environment is valid.
type Config struct {
	// TickRate is the loop frequency in hertz.
	TickRate float64 `env:"FSMKIT_TICK_RATE" envDefault:"60"`

	// MaxDelta caps the elapsed time reported to a single tick.
	MaxDelta time.Duration `env:"FSMKIT_MAX_DELTA" envDefault:"250ms"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"FSMKIT_LOG_LEVEL" envDefault:"info"`

	// LogFormat is one of json, text.
	LogFormat string `env:"FSMKIT_LOG_FORMAT" envDefault:"json"`
}

// ErrParsing wraps environment parsing failures.
var ErrParsing = errors.New("config: failed to parse environment")

// Load reads the configuration from the environment. Optional .env file
// paths are loaded first, in order; variables already present in the
// environment always win, and among the files the earliest definition
// sticks. Missing files are ignored: an .env file is a development
// convenience, not a requirement.
func Load(paths ...string) (Config, error) {
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
	if len(paths) == 0 {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsing, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure, for hosts where a broken
// environment should prevent startup.
func MustLoad(paths ...string) Config {
	cfg, err := Load(paths...)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

// SlogLevel maps the configured LogLevel to a slog.Level, defaulting to
// info for unknown values.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
