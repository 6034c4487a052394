package loop

import "errors"

var (
	// ErrNilTicker is returned by New when no target is given.
	ErrNilTicker = errors.New("loop: nil ticker")

	// ErrAlreadyRunning is returned by Run when the loop is already
	// executing.
	ErrAlreadyRunning = errors.New("loop: already running")
)
