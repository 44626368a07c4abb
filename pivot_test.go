package cubesim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachPreservesWorldTransform(t *testing.T) {
	r := NewRegistry()
	p := newPivot()
	layer := r.InLayer(AxisY, 1)

	before := make([]CubieState, len(layer))
	for i, c := range layer {
		before[i] = c.State()
	}

	require.NoError(t, p.Attach(layer))
	assert.Equal(t, 9, p.Len())
	for i, c := range layer {
		assert.True(t, c.Attached())
		assert.Equal(t, before[i].Position, c.Position())
		assert.Equal(t, before[i].Rotation, c.Rotation())
	}
}

func TestAttachKeepsTurnedCubiesInPlace(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, ApplyMove(r, R))
	p := newPivot()
	layer := r.InLayer(AxisY, 1)

	before := make([]CubieState, len(layer))
	for i, c := range layer {
		before[i] = c.State()
	}

	require.NoError(t, p.Attach(layer))
	assert.Equal(t, identity, p.Rotation())
	for i, c := range layer {
		assert.Equal(t, before[i].Position, c.Position())
		assert.Equal(t, before[i].Rotation, c.Rotation())
	}

	// Detaching at the identity is a no-op for settled cubies.
	p.Detach()
	for i, c := range layer {
		assert.Equal(t, before[i].Position, c.Position())
		o, ok := c.State().Orientation()
		require.True(t, ok)
		wantO, _ := before[i].Orientation()
		assert.Equal(t, wantO, o)
	}
}

func TestSetAngleTurnsLayerInLockstep(t *testing.T) {
	r := NewRegistry()
	p := newPivot()
	layer := r.InLayer(AxisZ, 1)
	require.NoError(t, p.Attach(layer))

	p.SetAngle(AxisZ, 45)
	for _, c := range layer {
		home, pos := c.Home(), c.Position()
		assert.InDelta(t, math.Hypot(home.X, home.Y), math.Hypot(pos.X, pos.Y), 1e-12)
		assert.InDelta(t, home.Z, pos.Z, 1e-12)
	}
	// Cubies outside the layer do not move.
	for _, c := range r.InLayer(AxisZ, -1) {
		assert.Equal(t, c.Home(), c.Position())
	}
}

func TestDetachSnapsAndResetsPivot(t *testing.T) {
	r := NewRegistry()
	p := newPivot()
	layer := r.InLayer(AxisX, 1)
	require.NoError(t, p.Attach(layer))

	p.SetAngle(AxisX, -89.9999)
	detached := p.Detach()
	require.Len(t, detached, 9)

	assert.Equal(t, identity, p.Rotation())
	assert.Zero(t, p.Len())
	for _, c := range detached {
		assert.False(t, c.Attached())
		assert.True(t, c.Position().IsInteger(), "cubie %d at %+v", c.ID(), c.Position())
		_, ok := OrientationOf(c.Rotation())
		assert.True(t, ok)
	}
	// Front-right edge moved to the top.
	assert.Equal(t, Vec3{X: 1, Y: 1, Z: 0}, r.Get(idOf(Vec3{X: 1, Y: 0, Z: 1})).Position())
}

func TestAttachGuardsAgainstBusyPivot(t *testing.T) {
	r := NewRegistry()
	p := newPivot()
	require.NoError(t, p.Attach(r.InLayer(AxisX, 1)))

	err := p.Attach(r.InLayer(AxisY, 1))
	assert.ErrorIs(t, err, ErrPivotBusy)

	other := newPivot()
	err = other.Attach(r.InLayer(AxisY, 1))
	assert.ErrorIs(t, err, ErrPivotBusy, "cubies shared with the busy pivot")
	assert.Zero(t, other.Len())
}

// idOf returns the id of the cubie whose home is cell.
func idOf(cell Vec3) int {
	for _, c := range NewRegistry().All() {
		if c.Home() == cell {
			return c.ID()
		}
	}
	return -1
}
