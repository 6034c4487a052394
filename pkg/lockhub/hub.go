package lockhub

import (
	"sync"

	"github.com/google/uuid"
)

// Handler receives broadcast payloads. Handlers run synchronously on the
// broadcasting goroutine and must not block.
type Handler[P any] func(P)

// Hub fans a payload out to every registered handler, synchronously and in
// the caller's goroutine. It is the lifecycle-managed registry behind
// cross-stack lock requests: a stack registers on construction and
// deregisters on destruction.
type Hub[P any] struct {
	mu       sync.RWMutex
	handlers map[string]Handler[P]
	closed   bool
}

// Registration is a handle to one registered handler.
type Registration[P any] struct {
	id   string
	hub  *Hub[P]
	once sync.Once
}

// New creates an empty hub.
func New[P any]() *Hub[P] {
	return &Hub[P]{handlers: make(map[string]Handler[P])}
}

// Register adds a handler and returns its registration handle. A closed hub
// returns an already-deregistered handle whose broadcasts never arrive.
func (h *Hub[P]) Register(handler Handler[P]) *Registration[P] {
	reg := &Registration[P]{id: uuid.NewString(), hub: h}
	if handler == nil {
		reg.once.Do(func() {})
		return reg
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		reg.once.Do(func() {})
		return reg
	}
	h.handlers[reg.id] = handler
	return reg
}

// Broadcast dispatches the payload to every registered handler except the
// one identified by except (may be nil to reach all). Handlers are invoked
// after the registry lock is released, so a handler may re-enter the hub.
func (h *Hub[P]) Broadcast(payload P, except *Registration[P]) {
	h.mu.RLock()
	targets := make([]Handler[P], 0, len(h.handlers))
	for id, handler := range h.handlers {
		if except != nil && id == except.id {
			continue
		}
		targets = append(targets, handler)
	}
	h.mu.RUnlock()

	for _, handler := range targets {
		handler(payload)
	}
}

// Len returns the number of registered handlers.
func (h *Hub[P]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers)
}

// Close removes every handler. Further registrations are inert and further
// broadcasts reach nobody. Close is idempotent.
func (h *Hub[P]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	clear(h.handlers)
}

// Deregister removes the handler from its hub. It is idempotent and safe to
// call on handles obtained from a closed hub.
func (r *Registration[P]) Deregister() {
	r.once.Do(func() {
		r.hub.mu.Lock()
		defer r.hub.mu.Unlock()
		delete(r.hub.handlers, r.id)
	})
}
