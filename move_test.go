package cubesim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotationRoundTripsAllMoves(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range AllMoves() {
		n := m.Notation()
		assert.False(t, seen[n], "notation %s used twice", n)
		seen[n] = true

		parsed, err := ParseMove(n)
		require.NoError(t, err)
		assert.Equal(t, m, parsed, "parse(%s)", n)
	}
	assert.Len(t, seen, 18)
}

func TestPredefinedMoveNotation(t *testing.T) {
	cases := map[string]Move{
		"R": R, "R'": RPrime, "L": L, "L'": LPrime, "M": M, "M'": MPrime,
		"U": U, "U'": UPrime, "D": D, "D'": DPrime, "E": E, "E'": EPrime,
		"F": F, "F'": FPrime, "B": B, "B'": BPrime, "S": S, "S'": SPrime,
	}
	for want, m := range cases {
		assert.Equal(t, want, m.Notation())
		assert.Equal(t, want, m.String())
	}
}

func TestInverse(t *testing.T) {
	for _, m := range AllMoves() {
		inv := m.Inverse()
		assert.Equal(t, m.Axis, inv.Axis)
		assert.Equal(t, m.Layer, inv.Layer)
		assert.Equal(t, -m.Dir, inv.Dir)
		assert.True(t, inv.IsInverseOf(m))
		assert.False(t, m.IsInverseOf(m))
		assert.Equal(t, m, inv.Inverse())
	}
	assert.Equal(t, RPrime, R.Inverse())
	assert.Equal(t, L, LPrime.Inverse())
}

func TestTokenRoundTrip(t *testing.T) {
	for tok := uint8(0); tok < 18; tok++ {
		assert.Equal(t, tok, MoveFromToken(tok).Token())
		assert.True(t, MoveFromToken(tok).Valid())
	}
}

func TestParseMovesExpandsHalfTurns(t *testing.T) {
	moves, err := ParseMoves("R2 u' F` M2'")
	require.NoError(t, err)
	assert.Equal(t, []Move{R, R, UPrime, FPrime, MPrime, MPrime}, moves)
	assert.Equal(t, "R R U' F' M' M'", FormatMoves(moves))
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "X", "R3", "RR'", "2"} {
		_, err := ParseMove(s)
		assert.True(t, errors.Is(err, ErrInvalidNotation), "ParseMove(%q) = %v", s, err)
	}
	_, err := ParseMoves("R U Q")
	assert.ErrorIs(t, err, ErrInvalidNotation)
}

func TestInvertMoves(t *testing.T) {
	assert.Equal(t, []Move{U, R, UPrime, RPrime}, InvertMoves(SexyMove))
	assert.Empty(t, InvertMoves(nil))
	assert.Equal(t, "", FormatMoves(nil))
}

func TestValid(t *testing.T) {
	assert.True(t, R.Valid())
	assert.False(t, Move{Axis: 3, Layer: 0, Dir: CW}.Valid())
	assert.False(t, Move{Axis: AxisX, Layer: 2, Dir: CW}.Valid())
	assert.False(t, Move{Axis: AxisX, Layer: 0, Dir: 0}.Valid())
}

func TestParseAxis(t *testing.T) {
	for _, a := range Axes {
		got, err := ParseAxis(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAxis("w")
	assert.True(t, errors.Is(err, ErrInvalidMove))
}
