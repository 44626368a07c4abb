package cubesim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testFrame is an awkward frame length so progress never lands on round angles.
const testFrame = 17 * time.Millisecond

// drain ticks e until the queue is empty and nothing animates. It returns
// the number of ticks taken.
func drain(t *testing.T, e *Engine) int {
	t.Helper()
	for i := 0; i < 100000; i++ {
		require.NoError(t, e.Tick(testFrame))
		if e.State() == StateIdle && e.QueueLength() == 0 {
			return i + 1
		}
	}
	t.Fatal("engine did not drain")
	return 0
}

// apply turns moves and waits for them to finish.
func apply(t *testing.T, e *Engine, moves ...Move) {
	t.Helper()
	_, err := e.Turn(moves...)
	require.NoError(t, err)
	drain(t, e)
}

// settledState is the comparable part of a cubie snapshot.
type settledState struct {
	ID          int
	Position    Vec3
	Orientation Orientation
}

func settled(t *testing.T, e *Engine) []settledState {
	t.Helper()
	cubies := e.Cubies()
	out := make([]settledState, len(cubies))
	for i, c := range cubies {
		o, ok := c.Orientation()
		require.True(t, ok, "cubie %d is not axis-aligned", c.ID)
		out[i] = settledState{ID: c.ID, Position: c.Position, Orientation: o}
	}
	return out
}
