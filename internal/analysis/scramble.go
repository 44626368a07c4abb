package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/SeamusWaldron/cubesim"
	"gonum.org/v1/gonum/stat"
)

// ScrambleStats describes the quality of one scramble.
type ScrambleStats struct {
	Length int `json:"length"`
	// AdjacentInverses counts moves that undo their predecessor. Only the
	// scrambler's fallback can produce one.
	AdjacentInverses int `json:"adjacent_inverses"`
	// SameLayerRepeats counts moves on the same layer as their predecessor
	// that do not undo it, i.e. half turns in disguise.
	SameLayerRepeats int `json:"same_layer_repeats"`
	// SameAxisRuns counts maximal runs of two or more moves on one axis.
	SameAxisRuns int    `json:"same_axis_runs"`
	AxisCounts   [3]int `json:"axis_counts"`
}

// AnalyzeSequence computes scramble statistics for moves.
func AnalyzeSequence(moves []cubesim.Move) ScrambleStats {
	s := ScrambleStats{Length: len(moves)}
	run := 0
	for i, m := range moves {
		s.AxisCounts[m.Axis]++
		if i == 0 {
			run = 1
			continue
		}
		prev := moves[i-1]
		switch {
		case m.IsInverseOf(prev):
			s.AdjacentInverses++
		case m.Axis == prev.Axis && m.Layer == prev.Layer:
			s.SameLayerRepeats++
		}
		if m.Axis == prev.Axis {
			run++
			if run == 2 {
				s.SameAxisRuns++
			}
		} else {
			run = 1
		}
	}
	return s
}

// ScrambleReport aggregates statistics over many scrambles.
type ScrambleReport struct {
	Trials           int            `json:"trials"`
	Length           int            `json:"length"`
	TotalMoves       int            `json:"total_moves"`
	AdjacentInverses int            `json:"adjacent_inverses"`
	SameLayerRepeats int            `json:"same_layer_repeats"`
	SameAxisRuns     int            `json:"same_axis_runs"`
	AxisCounts       [3]int         `json:"axis_counts"`
	MoveCounts       map[string]int `json:"move_counts"`

	// Spread of per-move frequencies; a uniform scrambler keeps the
	// standard deviation near sqrt(mean).
	MoveCountMean   float64 `json:"move_count_mean"`
	MoveCountStdDev float64 `json:"move_count_std_dev"`

	// AxisChiSquare tests the axis counts against a uniform split.
	AxisChiSquare float64      `json:"axis_chi_square"`
	NGrams        *NGramReport `json:"ngrams"`
}

// AnalyzeScrambles draws trials scrambles of the given length from s and
// aggregates their statistics. Each scramble starts from a solved cube, so
// its first move is unconstrained.
func AnalyzeScrambles(s *cubesim.Scrambler, trials, length int) *ScrambleReport {
	report := &ScrambleReport{
		Trials:     trials,
		Length:     length,
		MoveCounts: make(map[string]int),
	}

	ngrams := make(map[string]*NGramReport, trials)
	for i := 0; i < trials; i++ {
		moves := s.Sequence(length)
		stats := AnalyzeSequence(moves)

		report.TotalMoves += stats.Length
		report.AdjacentInverses += stats.AdjacentInverses
		report.SameLayerRepeats += stats.SameLayerRepeats
		report.SameAxisRuns += stats.SameAxisRuns
		for a := range stats.AxisCounts {
			report.AxisCounts[a] += stats.AxisCounts[a]
		}
		for _, m := range moves {
			report.MoveCounts[m.Notation()]++
		}
		ngrams[fmt.Sprintf("trial-%04d", i)] = MineNGrams(moves, 2, 4, 5)
	}

	counts := make([]float64, 0, 18)
	for _, m := range cubesim.AllMoves() {
		counts = append(counts, float64(report.MoveCounts[m.Notation()]))
	}
	report.MoveCountMean, report.MoveCountStdDev = stat.MeanStdDev(counts, nil)

	if report.TotalMoves > 0 {
		expected := float64(report.TotalMoves) / 3
		obs := []float64{float64(report.AxisCounts[0]), float64(report.AxisCounts[1]), float64(report.AxisCounts[2])}
		report.AxisChiSquare = stat.ChiSquare(obs, []float64{expected, expected, expected})
	}

	report.NGrams = MineNGramsAcrossSources(ngrams, 5)
	return report
}

// String renders the report for a terminal.
func (r *ScrambleReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trials: %d x %d moves (%d total)\n", r.Trials, r.Length, r.TotalMoves)
	fmt.Fprintf(&b, "Adjacent inverses:  %d\n", r.AdjacentInverses)
	fmt.Fprintf(&b, "Same-layer repeats: %d\n", r.SameLayerRepeats)
	fmt.Fprintf(&b, "Same-axis runs:     %d\n", r.SameAxisRuns)
	fmt.Fprintf(&b, "Axis counts:        x=%d y=%d z=%d (chi² %.2f)\n",
		r.AxisCounts[0], r.AxisCounts[1], r.AxisCounts[2], r.AxisChiSquare)
	fmt.Fprintf(&b, "Move frequency:     mean %.1f, std dev %.1f (uniform ≈ %.1f)\n",
		r.MoveCountMean, r.MoveCountStdDev, math.Sqrt(r.MoveCountMean))

	if r.NGrams != nil {
		for n := 2; n <= 4; n++ {
			ngrams := r.NGrams.TopNGrams[n]
			if len(ngrams) == 0 {
				continue
			}
			fmt.Fprintf(&b, "Top %d-grams:\n", n)
			for _, ng := range ngrams {
				fmt.Fprintf(&b, "  %-16s %d\n", ng.Notation(), ng.Count)
			}
		}
	}
	return b.String()
}
