package loop

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Ticker is anything advanced by discrete time steps. *fsm.Stack and
// *fsm.Machine both satisfy it.
type Ticker interface {
	Tick(dt time.Duration)
}

// Loop drives a Ticker at a fixed rate. It exists for hosts that do not
// already have a frame loop of their own; game engines typically call
// Stack.Tick from their update callback instead.
type Loop struct {
	target   Ticker
	rate     float64
	maxDelta time.Duration
	logger   *slog.Logger
	running  atomic.Bool
}

// New creates a loop around target.
func New(target Ticker, opts ...Option) (*Loop, error) {
	if target == nil {
		return nil, ErrNilTicker
	}

	options := &loopOptions{
		rate:     60,
		maxDelta: 250 * time.Millisecond,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Loop{
		target:   target,
		rate:     options.rate,
		maxDelta: options.maxDelta,
		logger:   options.logger,
	}, nil
}

// Run ticks the target until ctx is cancelled, then returns nil. The
// elapsed time passed to each tick is wall-clock measured and clamped to
// the configured maximum delta, so a stalled host (debugger, suspended
// laptop) does not produce one giant catch-up step.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer l.running.Store(false)

	interval := time.Duration(float64(time.Second) / l.rate)
	l.logger.Debug("loop started",
		slog.Duration("interval", interval),
		slog.Float64("rate", l.rate))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped")
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > l.maxDelta {
				dt = l.maxDelta
			}
			l.target.Tick(dt)
		}
	}
}

// IsRunning reports whether Run is currently executing.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}
