package fsm

import (
	"log/slog"
	"time"
)

// Machine binds one owner to one active state and drives the state lifecycle
// each tick. A machine with no owner or no active state is suspended: ticking
// it is a defined no-op, not an error.
//
// Machines are not safe for concurrent use; the runtime is single-threaded
// and cooperative, and state hooks may call back into the machine or its
// stack synchronously.
type Machine[T comparable] struct {
	owner     T
	state     State[T]
	stateType StateType
	age       time.Duration

	name string
	kind Mask

	stack     *Stack[T]
	table     *Table[T]
	pools     map[StateType]*pool[T]
	factories map[StateType]Factory[T]

	logger   *slog.Logger
	observer Observer
}

// NewMachine creates a machine configured by the given options. Without
// WithName the machine gets a random UUID name, which still works as a lock
// target but is not stable across runs.
func NewMachine[T comparable](opts ...MachineOption[T]) *Machine[T] {
	cfg := defaultMachineOptions[T]()
	for _, opt := range opts {
		opt(cfg)
	}

	m := &Machine[T]{
		name:      cfg.name,
		kind:      cfg.kind,
		table:     cfg.table,
		pools:     make(map[StateType]*pool[T]),
		factories: make(map[StateType]Factory[T]),
		logger:    cfg.logger,
		observer:  cfg.observer,
	}
	for st, f := range cfg.factories {
		m.factories[st] = f
	}

	m.owner = cfg.owner
	if cfg.state != nil {
		m.SetState(cfg.state)
	}
	return m
}

// Register binds a factory to a state type so the machine can construct
// pooled instances of it when the table transitions into that type.
func (m *Machine[T]) Register(st StateType, f Factory[T]) {
	if f == nil {
		return
	}
	m.factories[st] = f
}

// Tick advances the machine by dt. While owner and state are both present
// the age grows and the active state updates; afterwards the table is polled
// and a differing result swaps the active state through the pools.
func (m *Machine[T]) Tick(dt time.Duration) {
	if m.state != nil && m.hasOwner() {
		m.age += dt
		m.state.Update(dt, m.owner, m)
	}

	if m.table == nil || m.pools == nil {
		return
	}
	next := m.table.Poll(m.stateType, m.owner)
	if next == m.stateType {
		return
	}
	m.swap(next)
}

// swap replaces the active state with a pooled instance of next. The
// outgoing instance is recycled only when a pool for its type already
// exists: pools come into being for types that have been entered, and a
// directly assigned state of a never-entered type is simply dropped.
func (m *Machine[T]) swap(next StateType) {
	p := m.pools[next]
	if p == nil {
		f := m.factories[next]
		if f == nil {
			m.logger.Warn("no factory registered for state type, transition skipped",
				slog.String("machine", m.name),
				slog.String("state", string(next)))
			return
		}
		p = &pool[T]{factory: f}
		m.pools[next] = p
	}

	incoming, reused := p.get()
	m.observer.PoolFetch(next, reused)

	outgoing, outgoingType := m.state, m.stateType
	if outgoing != nil && m.hasOwner() {
		outgoing.Exit(m.owner)
	}

	m.state = incoming
	m.stateType = next
	if m.hasOwner() {
		incoming.Enter(m.owner, m)
	}
	m.age = 0

	if outgoing != nil {
		if op := m.pools[outgoingType]; op != nil {
			op.put(outgoing)
		}
	}
	m.observer.MachineTransition(m.name, outgoingType, next)
}

// SetOwner assigns a new owner. The current state exits against the old
// owner and re-enters against the new one; assigning the same value is a
// no-op. The zero value of T means "no owner" and suspends the machine.
func (m *Machine[T]) SetOwner(owner T) {
	if owner == m.owner {
		return
	}
	var zero T
	if m.state != nil && m.owner != zero {
		m.state.Exit(m.owner)
	}
	m.owner = owner
	if m.state != nil && owner != zero {
		m.state.Enter(owner, m)
	}
	m.age = 0
}

// SetState assigns the active state directly, bypassing the table and the
// pools. Assigning an instance of the same type as the current state is a
// no-op: exit and enter do not fire and the age is preserved. A nil state
// clears the slot.
func (m *Machine[T]) SetState(s State[T]) {
	if s == nil && m.state == nil {
		return
	}
	if s != nil && m.state != nil && s.Type() == m.stateType {
		return
	}

	if m.state != nil && m.hasOwner() {
		m.state.Exit(m.owner)
	}
	from := m.stateType
	m.state = s
	if s != nil {
		m.stateType = s.Type()
		if m.hasOwner() {
			s.Enter(m.owner, m)
		}
	} else {
		m.stateType = StateNone
	}
	m.age = 0
	m.observer.MachineTransition(m.name, from, m.stateType)
}

// SetTable attaches the transition table consulted on every tick.
func (m *Machine[T]) SetTable(t *Table[T]) {
	m.table = t
}

// Owner returns the current owner, the zero value when suspended.
func (m *Machine[T]) Owner() T { return m.owner }

// State returns the active state instance, nil when none is active.
func (m *Machine[T]) State() State[T] { return m.state }

// StateType returns the identity of the active state, StateNone when none.
func (m *Machine[T]) StateType() StateType { return m.stateType }

// Age returns the time elapsed since the current state became active. It
// resets on every state or owner change.
func (m *Machine[T]) Age() time.Duration { return m.age }

// Name returns the machine's lock-target name.
func (m *Machine[T]) Name() string { return m.name }

// Kind returns the machine's lock-target bitmask.
func (m *Machine[T]) Kind() Mask { return m.kind }

// Table returns the attached transition table, nil when none.
func (m *Machine[T]) Table() *Table[T] { return m.table }

// Stack returns the stack this machine currently belongs to, nil when
// free-standing. States use it to lock siblings during their Update.
func (m *Machine[T]) Stack() *Stack[T] { return m.stack }

// Destroy drops the owner, state, stack, table and pools. No lifecycle hooks
// fire; callers that need a final Exit must clear the owner or state first.
func (m *Machine[T]) Destroy() {
	var zero T
	m.owner = zero
	m.state = nil
	m.stateType = StateNone
	m.stack = nil
	m.table = nil
	m.pools = nil
	m.factories = nil
	m.age = 0
}

func (m *Machine[T]) hasOwner() bool {
	var zero T
	return m.owner != zero
}
