package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
)

func mustParse(t *testing.T, s string) []cubesim.Move {
	t.Helper()
	moves, err := cubesim.ParseMoves(s)
	require.NoError(t, err)
	return moves
}

func TestRollingHashMatchesFreshHash(t *testing.T) {
	tokens := []uint8{3, 17, 0, 9, 12, 5, 3, 17, 0}
	rolling := NewRollingHash(3)
	for i, tok := range tokens {
		rolling.Roll(tok)
		if i < 2 {
			assert.False(t, rolling.Ready())
			continue
		}
		fresh := NewRollingHash(3)
		for _, w := range tokens[i-2 : i+1] {
			fresh.Roll(w)
		}
		assert.Equal(t, fresh.Hash(), rolling.Hash(), "window ending at %d", i)
		assert.Equal(t, tokens[i-2:i+1], rolling.Window())
	}
}

func TestMineNGramsFindsSexyMove(t *testing.T) {
	moves := mustParse(t, "R U R' U' F R U R' U' B R U R' U'")
	report := MineNGrams(moves, 4, 5, 3)

	fours := report.TopNGrams[4]
	require.NotEmpty(t, fours)
	assert.Equal(t, "R U R' U'", fours[0].Notation())
	assert.Equal(t, []string{"R", "U", "R'", "U'"}, fours[0].Sequence)
	assert.Equal(t, 3, fours[0].Count)
	require.Len(t, fours[0].Occurrences, 3)
	assert.Equal(t, 0, fours[0].Occurrences[0].StartIndex)
	assert.Equal(t, 5, fours[0].Occurrences[1].StartIndex)
	assert.Equal(t, 10, fours[0].Occurrences[2].StartIndex)
}

func TestMineNGramsIgnoresSingletons(t *testing.T) {
	report := MineNGrams(mustParse(t, "R U F L D B"), 2, 3, 5)
	assert.Empty(t, report.TopNGrams)
}

func TestMineNGramsShortInput(t *testing.T) {
	assert.Empty(t, MineNGrams(mustParse(t, "R"), 2, 4, 5).TopNGrams)
	assert.Empty(t, MineNGrams(nil, 0, 4, 5).TopNGrams)
}

func TestMineNGramsAcrossSources(t *testing.T) {
	a := MineNGrams(mustParse(t, "R U R U"), 2, 2, 5)
	b := MineNGrams(mustParse(t, "R U F R U"), 2, 2, 5)

	merged := MineNGramsAcrossSources(map[string]*NGramReport{"b": b, "a": a}, 5)
	twos := merged.TopNGrams[2]
	require.NotEmpty(t, twos)
	assert.Equal(t, "R U", twos[0].Notation())
	assert.Equal(t, 4, twos[0].Count)
	assert.Equal(t, "a", twos[0].Occurrences[0].Source)
}
