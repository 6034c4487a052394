// Package logger provides a small slog factory for the FSM runtime.
//
// The runtime's components log through *slog.Logger; this package builds
// one with consistent defaults (JSON, info level, stdout) and a few
// runtime-specific attribute helpers:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	)
//	stack := fsm.NewStack(fsm.WithStackLogger[*Enemy](log))
//
//	log.Info("entity spawned", logger.Machine("grunt-7"), logger.State("idle"))
package logger
