package fsm

import "time"

// StateType is the stable identity of a state implementation. It keys the
// per-machine instance pools and the transition table rows, so every concrete
// State implementation must report a type that is unique within one machine.
type StateType string

const (
	// StateNone means no state is active. A transition table polled with
	// StateNone resolves the configured start state.
	StateNone StateType = ""

	// StateAny is the wildcard source used by global transition rules.
	StateAny StateType = "*"
)

// Mask is a bitmask grouping machines for lock targeting. Machines sharing a
// bit can be suppressed together for the remainder of a stack pass.
type Mask uint64

// State is a unit of behavior bound to an owner of type T. Instances are
// recycled through per-type pools, so implementations must not assume a given
// instance is the only one of its type, and must fully re-initialize any
// internal fields in Enter.
//
// Hook ordering is guaranteed as: Enter before any Update, all Updates before
// Exit. Nothing else is guaranteed.
type State[T comparable] interface {
	// Type returns the state's identity. It must be constant for the
	// lifetime of the instance.
	Type() StateType

	// Enter is called exactly once when this instance becomes the active
	// state of a machine, including the very first activation.
	Enter(owner T, m *Machine[T])

	// Update is called once per tick while active, after the owning
	// machine's age has been incremented by dt.
	Update(dt time.Duration, owner T, m *Machine[T])

	// Exit is called exactly once when this instance stops being active,
	// either because the owner was removed or another state replaced it.
	Exit(owner T)
}

// Condition is a transition predicate evaluated against the machine's owner.
// A nil Condition on a rule is treated as always true.
type Condition[T comparable] func(owner T) bool

// Factory constructs a fresh instance of one concrete state type. Machines
// require an explicit factory per state type; no reflection-based
// construction takes place.
type Factory[T comparable] func() State[T]

// FuncState adapts plain functions to the State interface for simple states
// that do not need a dedicated struct. Nil hooks are skipped.
type FuncState[T comparable] struct {
	StateID  StateType
	OnEnter  func(owner T, m *Machine[T])
	OnUpdate func(dt time.Duration, owner T, m *Machine[T])
	OnExit   func(owner T)
}

func (s *FuncState[T]) Type() StateType { return s.StateID }

func (s *FuncState[T]) Enter(owner T, m *Machine[T]) {
	if s.OnEnter != nil {
		s.OnEnter(owner, m)
	}
}

func (s *FuncState[T]) Update(dt time.Duration, owner T, m *Machine[T]) {
	if s.OnUpdate != nil {
		s.OnUpdate(dt, owner, m)
	}
}

func (s *FuncState[T]) Exit(owner T) {
	if s.OnExit != nil {
		s.OnExit(owner)
	}
}
