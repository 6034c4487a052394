// Package fsm is a finite-state-machine runtime for entities owned by a
// host application, such as game objects or simulation actors.
//
// The package provides three cooperating pieces:
//
//  1. Machine binds one owner of a generic type T to one active State,
//     drives Enter/Update/Exit lifecycle hooks, and recycles displaced
//     state instances through per-type pools so steady-state transitions
//     allocate nothing.
//  2. Table is a declarative transition rule set: ordered rows mapping a
//     current state to a next state under a predicate, with global
//     (wildcard-source) rules, first-match-wins evaluation and deferred
//     tombstone removal.
//  3. Stack is a priority-ordered collection of machines ticked together
//     once per host frame, with tick-scoped locking by name, kind bitmask
//     or "everything remaining", and copy-on-write staging so structural
//     mutations never disturb an in-progress pass.
//
// # Owner model
//
// The owner is opaque to the runtime: it is only passed into state hooks
// and transition predicates. T must be comparable and its zero value means
// "no owner"; a machine without an owner or without an active state is
// suspended and ticking it is a defined no-op. Pointer owner types fit this
// model naturally.
//
// # Usage
//
//	table := fsm.NewTable[*Enemy]()
//	table.Start(StateIdle)
//	table.Add(StateIdle, StateChase, func(e *Enemy) bool { return e.SeesPlayer })
//	table.AddGlobal(StateDead, func(e *Enemy) bool { return e.HP <= 0 })
//
//	m := fsm.NewMachine(
//	    fsm.WithName[*Enemy]("grunt-7"),
//	    fsm.WithOwner(enemy),
//	    fsm.WithTable(table),
//	    fsm.WithFactory(StateIdle, func() fsm.State[*Enemy] { return &Idle{} }),
//	    fsm.WithFactory(StateChase, func() fsm.State[*Enemy] { return &Chase{} }),
//	    fsm.WithFactory(StateDead, func() fsm.State[*Enemy] { return &Dead{} }),
//	)
//
//	stack := fsm.NewStack[*Enemy]()
//	stack.InsertBack(m)
//
//	// once per frame
//	stack.Tick(dt)
//
// # Epochs, locks and mutations
//
// One Stack.Tick is an epoch: the live list is fixed for the whole pass.
// Insertions and removals issued during a pass are staged against a clone of
// the list and become visible on the next tick. Locks behave the other way
// around: Lock, LockByKind and LockRemaining take effect immediately for the
// machines not yet visited in the current pass and are cleared when the pass
// ends. LockByKind additionally fans out through a process-wide hub (see
// pkg/lockhub) so matching machines in every other live stack are suppressed
// for their current pass too.
//
// # Concurrency
//
// The runtime is single-threaded and cooperative. Tick calls run to
// completion synchronously, including nested calls a state's Update makes
// back into its machine or stack. None of the types in this package are safe
// for concurrent use from multiple goroutines.
package fsm
