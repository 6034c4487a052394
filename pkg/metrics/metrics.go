package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Collector is an fsm.Observer backed by Prometheus counters. One collector
// may be shared by any number of machines and stacks.
type Collector struct {
	transitions *prometheus.CounterVec
	passes      *prometheus.CounterVec
	ticked      *prometheus.CounterVec
	skipped     *prometheus.CounterVec
	poolFetches *prometheus.CounterVec
}

// NewCollector creates a collector and registers its metrics on reg. A nil
// registerer leaves the metrics unregistered, which is useful when the host
// wires registration itself.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsm_transitions_total",
			Help: "State transitions per machine, labeled by source and target state.",
		}, []string{"machine", "from", "to"}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsm_stack_passes_total",
			Help: "Completed tick passes per stack.",
		}, []string{"stack"}),
		ticked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsm_stack_machines_ticked_total",
			Help: "Machines updated across all passes, per stack.",
		}, []string{"stack"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsm_stack_machines_skipped_total",
			Help: "Machines skipped by tick-scoped locks, per stack.",
		}, []string{"stack"}),
		poolFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsm_pool_fetches_total",
			Help: "State instance fetches per state type, labeled by pool reuse.",
		}, []string{"state", "reused"}),
	}

	if reg != nil {
		reg.MustRegister(c.transitions, c.passes, c.ticked, c.skipped, c.poolFetches)
	}
	return c
}

// MachineTransition implements fsm.Observer.
func (c *Collector) MachineTransition(machine string, from, to fsm.StateType) {
	c.transitions.WithLabelValues(machine, string(from), string(to)).Inc()
}

// StackPass implements fsm.Observer.
func (c *Collector) StackPass(stack string, ticked, skipped int) {
	c.passes.WithLabelValues(stack).Inc()
	c.ticked.WithLabelValues(stack).Add(float64(ticked))
	c.skipped.WithLabelValues(stack).Add(float64(skipped))
}

// PoolFetch implements fsm.Observer.
func (c *Collector) PoolFetch(state fsm.StateType, reused bool) {
	c.poolFetches.WithLabelValues(string(state), strconv.FormatBool(reused)).Inc()
}
