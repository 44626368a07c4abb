package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
)

func newTestModel() *playModel {
	m := newPlayModel(time.Millisecond, cubesim.WithSpeeds(3000, 9000), cubesim.WithSeed(1), cubesim.WithScrambleLength(6))
	m.last = time.Unix(0, 0)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle feeds frames until the engine is idle with nothing queued.
func settle(t *testing.T, m *playModel) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		next := m.last.Add(20 * time.Millisecond)
		_, cmd := m.Update(frameMsg(next))
		require.NotNil(t, cmd, "frames must keep ticking")
		if m.engine.State() == cubesim.StateIdle && m.engine.QueueLength() == 0 {
			return
		}
	}
	t.Fatal("engine did not settle")
}

func TestPlayTurnKeys(t *testing.T) {
	m := newTestModel()
	for _, k := range []string{"r", "U", "m"} {
		_, cmd := m.Update(key(k))
		assert.Nil(t, cmd)
	}
	settle(t, m)

	assert.Equal(t, []cubesim.Move{cubesim.R, cubesim.UPrime, cubesim.M}, m.engine.History())
	assert.Equal(t, 3, m.remaining)
	assert.Contains(t, m.View(), "Moves from solved: 3")
}

func TestPlayScrambleThenSolve(t *testing.T) {
	m := newTestModel()

	m.Update(key(" "))
	assert.Contains(t, m.status, "Scramble: ")
	settle(t, m)
	assert.Equal(t, 6, m.engine.HistoryLength())
	assert.False(t, m.engine.IsSolved())

	m.Update(key("enter"))
	assert.Equal(t, "Solving in 6 moves", m.status)
	settle(t, m)
	assert.True(t, m.engine.IsSolved())
	assert.Equal(t, 0, m.remaining)
	assert.Contains(t, m.View(), "SOLVED")

	m.Update(key("enter"))
	assert.Equal(t, "Nothing to solve", m.status)
}

func TestPlayResetGivesFreshCube(t *testing.T) {
	m := newTestModel()
	m.Update(key("f"))
	settle(t, m)
	m.Update(key("l"))
	m.Update(frameMsg(m.last.Add(20 * time.Millisecond)))

	old := m.engine
	m.Update(key("esc"))
	assert.NotSame(t, old, m.engine)
	assert.True(t, m.engine.IsSolved())
	assert.Equal(t, 0, old.QueueLength())
	assert.Equal(t, "Fresh cube", m.status)
}

func TestPlayQuit(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Bye.\n", m.View())
}

func TestRenderNetShape(t *testing.T) {
	net := renderNet(cubesim.New().Facelets())
	lines := 0
	for _, c := range net {
		if c == '\n' {
			lines++
		}
	}
	assert.Equal(t, 9, lines)
}

func TestRecentMoves(t *testing.T) {
	moves := []cubesim.Move{cubesim.R, cubesim.U, cubesim.F}
	assert.Equal(t, "R U F", recentMoves(moves, 3))
	assert.Equal(t, "... U F", recentMoves(moves, 2))
}
