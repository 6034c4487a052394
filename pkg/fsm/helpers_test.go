package fsm_test

import (
	"time"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

const (
	stIdle  = fsm.StateType("idle")
	stChase = fsm.StateType("chase")
	stDead  = fsm.StateType("dead")
)

// actor is the owner type used across the package tests.
type actor struct {
	hp        int
	seesEnemy bool
	calm      bool
}

// tracked counts lifecycle hook invocations for assertions.
type tracked struct {
	id      fsm.StateType
	enters  int
	updates int
	exits   int
}

func (s *tracked) Type() fsm.StateType { return s.id }

func (s *tracked) Enter(_ *actor, _ *fsm.Machine[*actor]) { s.enters++ }

func (s *tracked) Update(_ time.Duration, _ *actor, _ *fsm.Machine[*actor]) { s.updates++ }

func (s *tracked) Exit(_ *actor) { s.exits++ }

// trackedFactory records every instance it constructs so tests can assert
// pool reuse by identity.
func trackedFactory(id fsm.StateType, created *[]*tracked) fsm.Factory[*actor] {
	return func() fsm.State[*actor] {
		s := &tracked{id: id}
		*created = append(*created, s)
		return s
	}
}
