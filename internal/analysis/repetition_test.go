package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
)

func TestCompactNotation(t *testing.T) {
	cases := map[string]string{
		"R R":          "R2",
		"R R'":         "",
		"L L L":        "L'",
		"U U U U F":    "F",
		"R U U' R'":    "",
		"M M E' S S S": "M2 E' S'",
		"L' L' R":      "L2 R",
		"R L R":        "R L R",
	}
	for in, want := range cases {
		assert.Equal(t, want, CompactNotation(mustParse(t, in)), in)
	}
}

func TestOptimizeMovesPreservesCubeState(t *testing.T) {
	moves := mustParse(t, "R R U' U' U' F F' D B B B B L'")
	optimized := OptimizeMoves(moves)
	assert.Len(t, optimized, 5) // R2 U D L'

	a, b := cubesim.NewRegistry(), cubesim.NewRegistry()
	require.NoError(t, cubesim.ApplyMoves(a, moves))
	require.NoError(t, cubesim.ApplyMoves(b, optimized))
	assert.Equal(t,
		cubesim.FaceletsOf(a.Snapshot()).String(),
		cubesim.FaceletsOf(b.Snapshot()).String())

	assert.InDelta(t, 5.0/13, CalculateEfficiency(moves, optimized), 1e-12)
	assert.Equal(t, 1.0, CalculateEfficiency(nil, nil))
}

func TestSolveCompactsToEmptyAfterScramble(t *testing.T) {
	scramble := cubesim.NewScrambler(4).Sequence(25)
	all := append(scramble, cubesim.InvertMoves(scramble)...)
	assert.Empty(t, Compact(all))
}
