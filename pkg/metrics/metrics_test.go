package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.MachineTransition("grunt", "idle", "chase")
	c.MachineTransition("grunt", "idle", "chase")
	c.StackPass("main", 3, 1)
	c.PoolFetch("idle", true)
	c.PoolFetch("idle", false)

	assert.Equal(t, float64(2), testutil.ToFloat64(
		c.transitions.WithLabelValues("grunt", "idle", "chase")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		c.passes.WithLabelValues("main")))
	assert.Equal(t, float64(3), testutil.ToFloat64(
		c.ticked.WithLabelValues("main")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		c.skipped.WithLabelValues("main")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		c.poolFetches.WithLabelValues("idle", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		c.poolFetches.WithLabelValues("idle", "false")))
}

type dummy struct{ hp int }

func TestCollectorObservesMachine(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	m := fsm.NewMachine(
		fsm.WithName[*dummy]("m1"),
		fsm.WithOwner(&dummy{hp: 1}),
		fsm.WithMachineObserver[*dummy](c),
	)
	m.SetState(&fsm.FuncState[*dummy]{StateID: "a"})

	require.Equal(t, float64(1), testutil.ToFloat64(
		c.transitions.WithLabelValues("m1", "", "a")))
}

func TestCollectorNilRegisterer(t *testing.T) {
	assert.NotPanics(t, func() {
		c := NewCollector(nil)
		c.StackPass("main", 0, 0)
	})
}
