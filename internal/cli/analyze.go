package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/analysis"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Measure scramble quality",
	Long: `Generate many scrambles and report how evenly they use the axes and
moves, how often moves repeat a layer, and which short sequences recur.

With --recorded the scrambles of recorded sessions are mined instead.`,
	RunE: runAnalyze,
}

var (
	analyzeTrials   int
	analyzeLength   int
	analyzeSeed     uint64
	analyzeRecorded int
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().IntVarP(&analyzeTrials, "trials", "t", 1000, "Number of scrambles to generate")
	analyzeCmd.Flags().IntVarP(&analyzeLength, "length", "n", 0, "Scramble length (default from config)")
	analyzeCmd.Flags().Uint64Var(&analyzeSeed, "seed", 0, "Random seed (default from config, else random)")
	analyzeCmd.Flags().IntVar(&analyzeRecorded, "recorded", 0, "Mine the scrambles of the last N recorded sessions")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeRecorded > 0 {
		return analyzeRecordedSessions(analyzeRecorded)
	}
	if analyzeTrials < 1 {
		return fmt.Errorf("--trials must be at least 1")
	}

	length := analyzeLength
	if length <= 0 {
		length = cfg.Scramble.Length
	}
	seed := analyzeSeed
	if seed == 0 {
		seed = cfg.Scramble.Seed
	}

	var s *cubesim.Scrambler
	if seed != 0 {
		s = cubesim.NewScrambler(seed)
	} else {
		s = cubesim.NewRandomScrambler()
	}

	log.WithField("trials", analyzeTrials).Debug("analyzing scrambles")
	report := analysis.AnalyzeScrambles(s, analyzeTrials, length)
	fmt.Print(report.String())
	return nil
}

func analyzeRecordedSessions(limit int) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	if db == nil {
		return fmt.Errorf("session recording is disabled")
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(limit)
	if err != nil {
		return err
	}
	moveRepo := storage.NewMoveRepository(db)

	reports := make(map[string]*analysis.NGramReport, len(sessions))
	var total analysis.ScrambleStats
	for _, s := range sessions {
		records, err := moveRepo.GetBySession(s.SessionID)
		if err != nil {
			return err
		}
		var scramble []cubesim.Move
		for _, rec := range records {
			if rec.Phase == "scramble" {
				scramble = append(scramble, rec.Move)
			}
		}

		stats := analysis.AnalyzeSequence(scramble)
		total.Length += stats.Length
		total.AdjacentInverses += stats.AdjacentInverses
		total.SameLayerRepeats += stats.SameLayerRepeats
		total.SameAxisRuns += stats.SameAxisRuns
		for a := range stats.AxisCounts {
			total.AxisCounts[a] += stats.AxisCounts[a]
		}
		reports[s.SessionID] = analysis.MineNGrams(scramble, 2, 4, 5)
	}

	fmt.Printf("Sessions: %d (%d scramble moves)\n", len(sessions), total.Length)
	fmt.Printf("Adjacent inverses:  %d\n", total.AdjacentInverses)
	fmt.Printf("Same-layer repeats: %d\n", total.SameLayerRepeats)
	fmt.Printf("Same-axis runs:     %d\n", total.SameAxisRuns)
	fmt.Printf("Axis counts:        x=%d y=%d z=%d\n", total.AxisCounts[0], total.AxisCounts[1], total.AxisCounts[2])

	merged := analysis.MineNGramsAcrossSources(reports, 5)
	for n := 2; n <= 4; n++ {
		ngrams := merged.TopNGrams[n]
		if len(ngrams) == 0 {
			continue
		}
		fmt.Printf("Top %d-grams:\n", n)
		for _, ng := range ngrams {
			fmt.Printf("  %-16s %d\n", ng.Notation(), ng.Count)
		}
	}
	return nil
}
