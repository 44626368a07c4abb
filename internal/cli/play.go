package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/config"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively",
	Long: `Open an interactive cube in the terminal.

Keys:
  r l u d f b m e s    turn a layer clockwise (with shift: counter-clockwise)
  space                scramble
  enter                solve
  esc                  reset to a fresh cube
  q                    quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so engine logs go to a file or nowhere.
	engineLog := cfg.NewLogger()
	engineLog.SetOutput(io.Discard)
	if verbose {
		f, err := openPlayLog()
		if err != nil {
			return err
		}
		defer f.Close()
		engineLog.SetOutput(f)
	}

	model := newPlayModel(cfg.FrameInterval(), cfg.EngineOptions(engineLog)...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

// openPlayLog opens the verbose log file of interactive sessions.
func openPlayLog() (*os.File, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	path := filepath.Join(dir, "play.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.WithField("path", path).Info("logging to file")
	return f, nil
}

// frameMsg drives one engine tick.
type frameMsg time.Time

// playModel is the bubbletea model of an interactive session.
type playModel struct {
	engine    *cubesim.Engine
	opts      []cubesim.Option
	frame     time.Duration
	last      time.Time
	remaining int
	status    string
	err       error
	quitting  bool
}

func newPlayModel(frame time.Duration, opts ...cubesim.Option) *playModel {
	m := &playModel{
		opts:  opts,
		frame: frame,
	}
	m.fresh()
	return m
}

// fresh replaces the engine with a solved cube.
func (m *playModel) fresh() {
	if m.engine != nil {
		m.engine.Reset()
	}
	m.engine = cubesim.New(m.opts...)
	m.engine.OnMoveComplete(func(remaining int) {
		m.remaining = remaining
	})
	m.remaining = 0
}

func (m *playModel) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *playModel) Init() tea.Cmd {
	m.last = time.Now()
	return m.tick()
}

// turnKeys maps keys to layer turns; shifted letters turn counter-clockwise.
var turnKeys = map[string]cubesim.Move{
	"r": cubesim.R, "R": cubesim.RPrime,
	"l": cubesim.L, "L": cubesim.LPrime,
	"u": cubesim.U, "U": cubesim.UPrime,
	"d": cubesim.D, "D": cubesim.DPrime,
	"f": cubesim.F, "F": cubesim.FPrime,
	"b": cubesim.B, "B": cubesim.BPrime,
	"m": cubesim.M, "M": cubesim.MPrime,
	"e": cubesim.E, "E": cubesim.EPrime,
	"s": cubesim.S, "S": cubesim.SPrime,
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if mv, ok := turnKeys[key]; ok {
			if _, err := m.engine.Turn(mv); err != nil {
				m.err = err
			}
			m.status = ""
			return m, nil
		}

		switch key {
		case "q", "ctrl+c":
			m.quitting = true
			m.engine.Reset()
			return m, tea.Quit

		case " ":
			b := m.engine.Scramble(context.Background(), 0)
			m.status = "Scramble: " + cubesim.FormatMoves(b.Moves())

		case "enter":
			b := m.engine.Solve(context.Background())
			if len(b.Moves()) == 0 {
				m.status = "Nothing to solve"
			} else {
				m.status = fmt.Sprintf("Solving in %d moves", len(b.Moves()))
			}

		case "esc":
			m.fresh()
			m.status = "Fresh cube"
			m.err = nil
		}

	case frameMsg:
		now := time.Time(msg)
		dt := now.Sub(m.last)
		m.last = now
		if err := m.engine.Tick(dt); err != nil {
			m.err = err
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesim"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.engine.Facelets()))
	b.WriteString("\n")

	if mv, ok := m.engine.Current(); ok {
		b.WriteString(fmt.Sprintf("Turning: %s (%.0f°, %s)\n",
			moveStyle.Render(mv.Notation()), m.engine.Progress(), m.engine.Speed()))
	} else if m.engine.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Moves from solved: %d  Queued: %d\n", m.remaining, m.engine.QueueLength()))
	if history := m.engine.History(); len(history) > 0 {
		b.WriteString("History: ")
		b.WriteString(moveStyle.Render(recentMoves(history, 20)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("rludfbmes=turn (shift=prime)  space=scramble  enter=solve  esc=reset  q=quit"))
	b.WriteString("\n")
	return b.String()
}
