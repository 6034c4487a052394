package fsm

import (
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/fsmkit/pkg/lockhub"
)

// ProcessHub is the process-wide lock hub joined by stacks that were not
// given an explicit hub via WithHub. Tests and embedded hosts should scope
// their own hub instead of relying on it.
var ProcessHub = lockhub.New[Mask]()

// Stack is an ordered collection of machines updated together once per tick.
//
// Structural mutations issued during a tick are staged copy-on-write and
// take effect at the start of the next tick, so the list being iterated
// never changes under an in-progress pass. Locks are the opposite: they take
// effect immediately for the remainder of the current pass and are cleared
// when the pass completes. A lock or mutation issued from machine i's update
// can therefore only affect machines at index > i of the same pass.
//
// Stacks follow the runtime's single-goroutine model and are not safe for
// concurrent use.
type Stack[T comparable] struct {
	name string

	live   []*Machine[T]
	staged []*Machine[T]
	dirty  bool

	lockedNames   map[string]struct{}
	lockedKinds   Mask
	lockRemaining bool
	lockActive    bool

	hub *lockhub.Hub[Mask]
	reg *lockhub.Registration[Mask]

	logger   *slog.Logger
	observer Observer
}

// NewStack creates a stack and registers it on its lock hub. Call Destroy to
// deregister when the stack is no longer ticked.
func NewStack[T comparable](opts ...StackOption[T]) *Stack[T] {
	cfg := defaultStackOptions[T]()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Stack[T]{
		name:        cfg.name,
		lockedNames: make(map[string]struct{}),
		hub:         cfg.hub,
		logger:      cfg.logger,
		observer:    cfg.observer,
	}
	s.reg = s.hub.Register(func(mask Mask) {
		s.lockedKinds |= mask
		s.lockActive = true
	})
	return s
}

// Tick runs one pass: staged mutations from the previous tick are promoted,
// every unlocked machine updates in list order, and all tick-scoped lock
// state is cleared afterwards.
func (s *Stack[T]) Tick(dt time.Duration) {
	if s.dirty {
		s.live, s.staged, s.dirty = s.staged, nil, false
	}

	ticked, skipped := 0, 0
	for i := 0; i < len(s.live); i++ {
		m := s.live[i]
		if s.skips(m) {
			skipped++
			continue
		}
		m.Tick(dt)
		ticked++
	}

	// Locks never persist across ticks.
	s.lockedKinds = 0
	s.lockRemaining = false
	s.lockActive = false
	clear(s.lockedNames)

	s.observer.StackPass(s.name, ticked, skipped)
}

func (s *Stack[T]) skips(m *Machine[T]) bool {
	if !s.lockActive {
		return false
	}
	if s.lockRemaining {
		return true
	}
	if m.kind&s.lockedKinds != 0 {
		return true
	}
	_, locked := s.lockedNames[m.name]
	return locked
}

// Lock suppresses the named machine for the remainder of the current pass.
func (s *Stack[T]) Lock(name string) {
	s.lockedNames[name] = struct{}{}
	s.lockActive = true
}

// LockByKind suppresses every machine whose kind intersects mask for the
// remainder of the current pass, and broadcasts the mask so every other live
// stack does the same for its own current pass.
func (s *Stack[T]) LockByKind(mask Mask) {
	s.lockedKinds |= mask
	s.lockActive = true
	s.hub.Broadcast(mask, s.reg)
}

// LockRemaining suppresses every machine not yet visited in the current
// pass.
func (s *Stack[T]) LockRemaining() {
	s.lockRemaining = true
	s.lockActive = true
}

// InsertFront schedules the machine to appear at the head of the list
// starting with the next tick.
func (s *Stack[T]) InsertFront(m *Machine[T]) {
	if m == nil {
		return
	}
	s.stage()
	m.stack = s
	s.staged = slices.Insert(s.staged, 0, m)
}

// InsertBack schedules the machine to appear at the tail of the list
// starting with the next tick.
func (s *Stack[T]) InsertBack(m *Machine[T]) {
	if m == nil {
		return
	}
	s.stage()
	m.stack = s
	s.staged = append(s.staged, m)
}

// RemoveFront schedules removal of the head machine. The machine is neither
// locked nor destroyed; it simply leaves the list on the next tick.
func (s *Stack[T]) RemoveFront() {
	s.stage()
	if len(s.staged) == 0 {
		return
	}
	s.staged[0].stack = nil
	s.staged = s.staged[1:]
}

// RemoveBack schedules removal of the tail machine, locks its name so an
// in-progress pass never revisits it, and destroys it immediately.
func (s *Stack[T]) RemoveBack() {
	s.stage()
	if len(s.staged) == 0 {
		return
	}
	m := s.staged[len(s.staged)-1]
	s.staged = s.staged[:len(s.staged)-1]
	s.retire(m)
}

// Remove schedules removal of the given machine, locks its name and destroys
// it immediately. Unknown machines are a silent no-op.
func (s *Stack[T]) Remove(m *Machine[T]) {
	if m == nil {
		return
	}
	s.stage()
	i := slices.Index(s.staged, m)
	if i < 0 {
		return
	}
	s.staged = slices.Delete(s.staged, i, i+1)
	s.retire(m)
}

// RemoveByName schedules removal of the first machine with the given name,
// locks the name and destroys the machine immediately. A missing name is a
// silent no-op.
func (s *Stack[T]) RemoveByName(name string) {
	s.stage()
	for i, m := range s.staged {
		if m.name == name {
			s.staged = slices.Delete(s.staged, i, i+1)
			s.retire(m)
			return
		}
	}
}

// Len returns the number of machines in the live list of the current epoch.
func (s *Stack[T]) Len() int {
	return len(s.live)
}

// Machines returns a snapshot of the live list.
func (s *Stack[T]) Machines() []*Machine[T] {
	return slices.Clone(s.live)
}

// Name returns the stack's name.
func (s *Stack[T]) Name() string { return s.name }

// Destroy destroys every machine in the live list, suppresses any in-flight
// pass and deregisters the stack from its lock hub.
func (s *Stack[T]) Destroy() {
	for _, m := range s.live {
		m.Destroy()
	}
	s.lockRemaining = true
	s.lockActive = true
	s.reg.Deregister()
}

// stage clones the live list into the staging slot on the first mutation of
// an epoch; later mutations of the same epoch keep editing the clone.
func (s *Stack[T]) stage() {
	if s.dirty {
		return
	}
	s.staged = slices.Clone(s.live)
	s.dirty = true
}

// retire locks the machine's name for the remainder of the current pass and
// destroys it. A machine already visible to an in-progress pass is thereby
// never ticked again after its removal.
func (s *Stack[T]) retire(m *Machine[T]) {
	s.Lock(m.name)
	s.logger.Debug("machine removed from stack",
		slog.String("stack", s.name),
		slog.String("machine", m.name))
	m.Destroy()
}
