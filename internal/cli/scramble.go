package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/analysis"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Play a scramble through the animated engine",
	Long: `Run a random scramble headlessly through the animated engine, print it
and the resulting cube, and record the session.

With --solve the scramble is then replayed backwards until the cube is
solved again. Interrupting with Ctrl+C lets the move in flight finish and
records only the moves that were applied.`,
	RunE: runScramble,
}

var (
	scrambleLength  int
	scrambleSeed    uint64
	scrambleSolve   bool
	scrambleMetrics bool
)

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "moves", "n", 0, "Scramble length (default from config)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVar(&scrambleSolve, "solve", false, "Solve the cube after scrambling")
	scrambleCmd.Flags().BoolVar(&scrambleMetrics, "metrics", false, "Print engine metrics when done")
}

// scrambleResult is what a headless run applied to the cube.
type scrambleResult struct {
	scramble []cubesim.Move
	solve    []cubesim.Move
	solved   bool
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleSeed != 0 {
		cfg.Scramble.Seed = scrambleSeed
	}

	reg := prometheus.NewRegistry()
	opts := append(cfg.EngineOptions(log), cubesim.WithMetrics(cubesim.NewMetrics(reg)))
	engine := cubesim.New(opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := playScramble(ctx, engine, cfg.FrameInterval(), scrambleLength, scrambleSolve)
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return err
	}

	fmt.Printf("Scramble (%d): %s\n", len(res.scramble), cubesim.FormatMoves(res.scramble))
	if compact := analysis.CompactNotation(res.scramble); compact != cubesim.FormatMoves(res.scramble) {
		fmt.Printf("Compact:       %s\n", compact)
	}
	if scrambleSolve {
		fmt.Printf("Solve (%d):    %s\n", len(res.solve), cubesim.FormatMoves(res.solve))
	}
	fmt.Println()
	fmt.Print(renderNet(engine.Facelets()))
	fmt.Println()
	if res.solved {
		fmt.Println(solvedStyle.Render("SOLVED"))
	}
	if interrupted {
		fmt.Println(errorStyle.Render("Interrupted"))
	}

	if err := recordScramble(res); err != nil {
		return err
	}

	if scrambleMetrics {
		return printMetrics(reg)
	}
	return nil
}

// playScramble drives engine in the background while a scramble, and
// optionally its solve, play out. Cancelling ctx stops after the move in
// flight; the result then holds only the moves that were applied.
func playScramble(ctx context.Context, engine *cubesim.Engine, frame time.Duration, n int, solve bool) (scrambleResult, error) {
	var res scrambleResult

	runCtx, stopRun := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- engine.Run(runCtx, frame) }()
	defer func() {
		stopRun()
		<-runErr
	}()

	b := engine.Scramble(ctx, n)
	err := b.Wait(runCtx)
	res.scramble = engine.History()
	log.WithFields(logrus.Fields{
		"moves":   len(res.scramble),
		"queued":  len(b.Moves()),
		"outcome": outcome(err),
	}).Info("scramble finished")
	if err != nil || !solve {
		return res, err
	}

	b = engine.Solve(ctx)
	err = b.Wait(runCtx)
	applied := len(b.Moves()) - engine.HistoryLength()
	res.solve = b.Moves()[:applied]
	res.solved = engine.IsSolved()
	log.WithFields(logrus.Fields{
		"moves":   applied,
		"outcome": outcome(err),
	}).Info("solve finished")
	return res, err
}

func outcome(err error) string {
	if err == nil {
		return "completed"
	}
	return err.Error()
}

// recordScramble stores the run in the session database.
func recordScramble(res scrambleResult) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	if db == nil {
		return nil
	}
	defer db.Close()

	kind := "scramble"
	if scrambleSolve {
		kind = "scramble+solve"
	}

	sessions := storage.NewSessionRepository(db)
	id, err := sessions.Create(kind, cfg.Scramble.Seed)
	if err != nil {
		return err
	}

	moves := storage.NewMoveRepository(db)
	if err := moves.CreateBatch(id, "scramble", res.scramble, 0); err != nil {
		return err
	}
	if err := moves.CreateBatch(id, "solve", res.solve, len(res.scramble)); err != nil {
		return err
	}
	if err := sessions.End(id, res.solved); err != nil {
		return err
	}

	fmt.Printf("Session: %s\n", id)
	return nil
}

// printMetrics writes every gathered sample as name{labels} value.
func printMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			value := m.GetGauge().GetValue()
			if m.GetCounter() != nil {
				value = m.GetCounter().GetValue()
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, value))
		}
	}
	sort.Strings(lines)

	fmt.Println()
	fmt.Println("Metrics:")
	for _, l := range lines {
		fmt.Println("  " + l)
	}
	return nil
}
