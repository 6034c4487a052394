package loop

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring a loop.
type Option func(*loopOptions)

type loopOptions struct {
	rate     float64
	maxDelta time.Duration
	logger   *slog.Logger
}

// WithRate sets the tick frequency in hertz. Non-positive values are
// ignored, keeping the 60 Hz default.
func WithRate(hz float64) Option {
	return func(o *loopOptions) {
		if hz > 0 {
			o.rate = hz
		}
	}
}

// WithMaxDelta caps the elapsed time reported to a single tick.
func WithMaxDelta(d time.Duration) Option {
	return func(o *loopOptions) {
		if d > 0 {
			o.maxDelta = d
		}
	}
}

// WithLogger sets the loop's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *loopOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
