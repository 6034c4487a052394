package loop_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/loop"
)

type countingTicker struct {
	ticks    atomic.Int64
	maxDelta atomic.Int64
}

func (c *countingTicker) Tick(dt time.Duration) {
	c.ticks.Add(1)
	if int64(dt) > c.maxDelta.Load() {
		c.maxDelta.Store(int64(dt))
	}
}

func TestNewNilTicker(t *testing.T) {
	_, err := loop.New(nil)
	assert.ErrorIs(t, err, loop.ErrNilTicker)
}

func TestRunTicksUntilCancelled(t *testing.T) {
	target := &countingTicker{}
	l, err := loop.New(target, loop.WithRate(200))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, l.Run(ctx))
	assert.Greater(t, target.ticks.Load(), int64(5))
	assert.False(t, l.IsRunning())
}

func TestRunRejectsConcurrentRun(t *testing.T) {
	target := &countingTicker{}
	l, err := loop.New(target, loop.WithRate(100))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		done <- l.Run(ctx)
	}()
	<-started

	require.Eventually(t, l.IsRunning, time.Second, time.Millisecond)
	assert.ErrorIs(t, l.Run(ctx), loop.ErrAlreadyRunning)

	cancel()
	require.NoError(t, <-done)
}

func TestMaxDeltaClampsTickSize(t *testing.T) {
	target := &countingTicker{}
	clamp := 5 * time.Millisecond
	l, err := loop.New(target, loop.WithRate(500), loop.WithMaxDelta(clamp))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, l.Run(ctx))
	assert.LessOrEqual(t, target.maxDelta.Load(), int64(clamp))
}
