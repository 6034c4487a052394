// Package metrics exposes the FSM runtime's activity as Prometheus metrics.
//
// Collector implements fsm.Observer; attach it to machines and stacks via
// fsm.WithMachineObserver and fsm.WithStackObserver:
//
//	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
//	stack := fsm.NewStack(fsm.WithStackObserver[*Enemy](collector))
//
// Observer callbacks run synchronously on the ticking goroutine; counter
// increments are cheap enough for per-frame use.
package metrics
