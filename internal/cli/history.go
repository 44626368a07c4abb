package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "List recorded sessions",
	Long: `List the most recent recorded sessions, or show the moves of one
session when its ID is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "Number of sessions to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	if db == nil {
		fmt.Println("Session recording is disabled.")
		return nil
	}
	defer db.Close()

	if len(args) == 1 {
		return showSession(db, args[0])
	}

	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet. Run: cubesim scramble")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-14s  %5s  %6s\n", "SESSION", "STARTED", "KIND", "MOVES", "SOLVED")
	for _, s := range sessions {
		solved := ""
		if s.Solved {
			solved = "yes"
		}
		fmt.Printf("%-36s  %-20s  %-14s  %5d  %6s\n",
			s.SessionID, s.StartedAt.Local().Format(time.DateTime), s.Kind, s.MoveCount, solved)
	}
	return nil
}

func showSession(db *storage.DB, id string) error {
	s, err := storage.NewSessionRepository(db).Get(id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("session %s not found", id)
	}

	records, err := storage.NewMoveRepository(db).GetBySession(id)
	if err != nil {
		return err
	}

	fmt.Printf("Session: %s\n", s.SessionID)
	fmt.Printf("Kind:    %s\n", s.Kind)
	fmt.Printf("Started: %s\n", s.StartedAt.Local().Format(time.DateTime))
	if s.Seed != nil {
		fmt.Printf("Seed:    %d\n", *s.Seed)
	}
	if s.DurationMs != nil {
		fmt.Printf("Took:    %s\n", time.Duration(*s.DurationMs)*time.Millisecond)
	}

	phases := make(map[string][]cubesim.Move)
	var order []string
	for _, rec := range records {
		if _, ok := phases[rec.Phase]; !ok {
			order = append(order, rec.Phase)
		}
		phases[rec.Phase] = append(phases[rec.Phase], rec.Move)
	}
	for _, phase := range order {
		fmt.Printf("%s (%d): %s\n", phase, len(phases[phase]), cubesim.FormatMoves(phases[phase]))
	}

	// Replaying the recorded moves on a fresh registry shows the final cube.
	reg := cubesim.NewRegistry()
	if err := cubesim.ApplyMoves(reg, storage.Moves(records)); err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(renderNet(cubesim.FaceletsOf(reg.Snapshot())))
	return nil
}
