package cubesim

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountMovesAndBatches(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	e := New(WithSeed(21), WithMetrics(m))

	e.Scramble(context.Background(), 6)
	assert.Equal(t, 6.0, testutil.ToFloat64(m.queueDepth))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.historyLength))
	drain(t, e)

	var moves float64
	for _, axis := range Axes {
		moves += testutil.ToFloat64(m.movesCompleted.WithLabelValues(axis.String()))
	}
	assert.Equal(t, 6.0, moves)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.batches.WithLabelValues("scramble", outcomeCompleted)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.queueDepth))

	e.Solve(context.Background())
	e.Reset()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.batches.WithLabelValues("solve", outcomeReset)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.historyLength))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, n)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.moveCompleted(R)
	m.batchFinished(BatchSolve, outcomeCompleted)
	m.observe(1, 2)
}
