// Package config loads FSM runtime settings from environment variables,
// optionally seeded from .env files.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind
// one call:
//
//	cfg := config.MustLoad()
//
//	log := logger.New(
//	    logger.WithLevel(cfg.SlogLevel()),
//	    logger.WithFormat(logger.Format(cfg.LogFormat)),
//	)
//	l, err := loop.New(stack,
//	    loop.WithRate(cfg.TickRate),
//	    loop.WithMaxDelta(cfg.MaxDelta),
//	)
//
// All variables use the FSMKIT_ prefix and have defaults, so hosts that do
// not care about tuning can skip this package entirely.
package config
