package fsm

// Observer receives runtime notifications from machines and stacks. The
// default observer discards everything; pkg/metrics provides a Prometheus
// implementation. Observers are called synchronously on the ticking
// goroutine and must not block.
type Observer interface {
	// MachineTransition fires after a machine swaps its active state.
	MachineTransition(machine string, from, to StateType)

	// StackPass fires after a stack completes one tick pass.
	StackPass(stack string, ticked, skipped int)

	// PoolFetch fires when a machine fetches a state instance, reporting
	// whether a pooled instance was reused or a fresh one constructed.
	PoolFetch(state StateType, reused bool)
}

type nopObserver struct{}

func (nopObserver) MachineTransition(string, StateType, StateType) {}
func (nopObserver) StackPass(string, int, int)                     {}
func (nopObserver) PoolFetch(StateType, bool)                      {}
