package analysis

import (
	"strings"

	"github.com/SeamusWaldron/cubesim"
)

// LayerTurn is a run of adjacent moves on one layer merged into a single
// net turn of 1 to 3 clockwise quarter turns.
type LayerTurn struct {
	Axis     cubesim.Axis
	Layer    int
	Quarters int
}

// Notation returns the turn in half-turn metric notation, e.g. R, R2, R'.
func (t LayerTurn) Notation() string {
	cw := cubesim.Move{Axis: t.Axis, Layer: t.Layer, Dir: cubesim.CW}
	switch t.Quarters {
	case 1:
		return cw.Notation()
	case 3:
		return cw.Inverse().Notation()
	default:
		return strings.TrimSuffix(cw.Notation(), "'") + "2"
	}
}

// Moves expands the turn back into quarter turns.
func (t LayerTurn) Moves() []cubesim.Move {
	cw := cubesim.Move{Axis: t.Axis, Layer: t.Layer, Dir: cubesim.CW}
	switch t.Quarters {
	case 1:
		return []cubesim.Move{cw}
	case 3:
		return []cubesim.Move{cw.Inverse()}
	default:
		return []cubesim.Move{cw, cw}
	}
}

// Compact merges adjacent moves on the same layer and drops runs that
// cancel out entirely, like R R' or U U U U.
func Compact(moves []cubesim.Move) []LayerTurn {
	result := make([]LayerTurn, 0, len(moves))
	for _, m := range moves {
		q := 1
		if m.Dir == cubesim.CCW {
			q = 3
		}

		if n := len(result); n > 0 && result[n-1].Axis == m.Axis && result[n-1].Layer == m.Layer {
			last := &result[n-1]
			last.Quarters = (last.Quarters + q) % 4
			if last.Quarters == 0 {
				// Full cancellation
				result = result[:n-1]
			}
			continue
		}
		result = append(result, LayerTurn{Axis: m.Axis, Layer: m.Layer, Quarters: q})
	}
	return result
}

// CompactNotation formats moves with merges and cancellations applied.
func CompactNotation(moves []cubesim.Move) string {
	turns := Compact(moves)
	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.Notation()
	}
	return strings.Join(parts, " ")
}

// OptimizeMoves returns the quarter turns left after compacting moves.
func OptimizeMoves(moves []cubesim.Move) []cubesim.Move {
	var out []cubesim.Move
	for _, t := range Compact(moves) {
		out = append(out, t.Moves()...)
	}
	return out
}

// CalculateEfficiency calculates the efficiency ratio (optimized/original).
func CalculateEfficiency(original, optimized []cubesim.Move) float64 {
	if len(original) == 0 {
		return 1.0
	}
	return float64(len(optimized)) / float64(len(original))
}
