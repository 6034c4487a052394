package fsm

import (
	"log/slog"

	"github.com/google/uuid"
)

// MachineOption is a functional option for configuring a machine.
type MachineOption[T comparable] func(*machineOptions[T])

type machineOptions[T comparable] struct {
	name      string
	kind      Mask
	owner     T
	state     State[T]
	table     *Table[T]
	factories map[StateType]Factory[T]
	logger    *slog.Logger
	observer  Observer
}

func defaultMachineOptions[T comparable]() *machineOptions[T] {
	return &machineOptions[T]{
		name:      uuid.NewString(),
		factories: make(map[StateType]Factory[T]),
		logger:    slog.Default(),
		observer:  nopObserver{},
	}
}

// WithName sets the machine's name used for lock targeting.
func WithName[T comparable](name string) MachineOption[T] {
	return func(o *machineOptions[T]) {
		if name != "" {
			o.name = name
		}
	}
}

// WithKind sets the machine's lock-target bitmask.
func WithKind[T comparable](kind Mask) MachineOption[T] {
	return func(o *machineOptions[T]) {
		o.kind = kind
	}
}

// WithOwner sets the initial owner.
func WithOwner[T comparable](owner T) MachineOption[T] {
	return func(o *machineOptions[T]) {
		o.owner = owner
	}
}

// WithInitialState sets the state activated at construction. When an owner
// is also configured the state's Enter hook fires immediately.
func WithInitialState[T comparable](s State[T]) MachineOption[T] {
	return func(o *machineOptions[T]) {
		o.state = s
	}
}

// WithTable attaches a transition table.
func WithTable[T comparable](t *Table[T]) MachineOption[T] {
	return func(o *machineOptions[T]) {
		o.table = t
	}
}

// WithFactory registers a state factory for one state type.
func WithFactory[T comparable](st StateType, f Factory[T]) MachineOption[T] {
	return func(o *machineOptions[T]) {
		if f != nil {
			o.factories[st] = f
		}
	}
}

// WithMachineLogger sets the machine's logger.
func WithMachineLogger[T comparable](logger *slog.Logger) MachineOption[T] {
	return func(o *machineOptions[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMachineObserver sets the machine's observer.
func WithMachineObserver[T comparable](obs Observer) MachineOption[T] {
	return func(o *machineOptions[T]) {
		if obs != nil {
			o.observer = obs
		}
	}
}
