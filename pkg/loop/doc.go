// Package loop provides a fixed-timestep driver for tick-based runtimes.
//
// A Loop wraps anything with a Tick(time.Duration) method, typically an
// fsm.Stack, and advances it at a configured frequency until the context is
// cancelled:
//
//	l, err := loop.New(stack, loop.WithRate(30))
//	if err != nil { ... }
//	go l.Run(ctx)
//
// The delta passed to each tick is measured wall-clock time clamped by
// WithMaxDelta, which keeps simulation steps bounded after host stalls.
// Ticks run on the Run goroutine only, preserving the runtime's
// single-threaded execution model.
package loop
