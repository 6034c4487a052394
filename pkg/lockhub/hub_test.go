package lockhub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fsmkit/pkg/lockhub"
)

func TestHubBroadcastReachesAllHandlers(t *testing.T) {
	hub := lockhub.New[uint64]()

	var a, b uint64
	hub.Register(func(m uint64) { a |= m })
	hub.Register(func(m uint64) { b |= m })

	hub.Broadcast(0b0110, nil)
	assert.Equal(t, uint64(0b0110), a)
	assert.Equal(t, uint64(0b0110), b)
}

func TestHubBroadcastSkipsSender(t *testing.T) {
	hub := lockhub.New[uint64]()

	var self, other uint64
	reg := hub.Register(func(m uint64) { self |= m })
	hub.Register(func(m uint64) { other |= m })

	hub.Broadcast(0b0001, reg)
	assert.Zero(t, self, "the sender's own handler is excluded")
	assert.Equal(t, uint64(0b0001), other)
}

func TestHubDeregister(t *testing.T) {
	hub := lockhub.New[uint64]()

	var got uint64
	reg := hub.Register(func(m uint64) { got |= m })
	assert.Equal(t, 1, hub.Len())

	reg.Deregister()
	reg.Deregister() // idempotent
	assert.Equal(t, 0, hub.Len())

	hub.Broadcast(0b1000, nil)
	assert.Zero(t, got)
}

func TestHubDispatchIsSynchronous(t *testing.T) {
	hub := lockhub.New[uint64]()

	order := []string{}
	hub.Register(func(uint64) { order = append(order, "handler") })

	hub.Broadcast(1, nil)
	order = append(order, "after")
	assert.Equal(t, []string{"handler", "after"}, order)
}

func TestHubHandlerMayReenter(t *testing.T) {
	hub := lockhub.New[uint64]()

	var nested uint64
	hub.Register(func(m uint64) {
		if m == 1 {
			hub.Broadcast(2, nil)
			return
		}
		nested |= m
	})

	assert.NotPanics(t, func() { hub.Broadcast(1, nil) })
	assert.Equal(t, uint64(2), nested)
}

func TestHubClose(t *testing.T) {
	hub := lockhub.New[uint64]()

	var got uint64
	hub.Register(func(m uint64) { got |= m })

	hub.Close()
	hub.Close() // idempotent
	assert.Equal(t, 0, hub.Len())

	hub.Broadcast(1, nil)
	assert.Zero(t, got)

	// Registrations after close are inert.
	reg := hub.Register(func(m uint64) { got |= m })
	hub.Broadcast(1, nil)
	assert.Zero(t, got)
	assert.NotPanics(t, reg.Deregister)

	// Nil handlers are never registered.
	assert.NotNil(t, lockhub.New[uint64]().Register(nil))
}
