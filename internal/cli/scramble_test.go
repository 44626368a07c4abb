package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/config"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

func setupConfig(t *testing.T) {
	t.Helper()
	cfg = config.Default()
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "test.db")
	log = cfg.NewLogger()
	t.Cleanup(func() {
		cfg, log = nil, nil
		scrambleSolve = false
	})
}

func TestPlayScrambleAndSolve(t *testing.T) {
	setupConfig(t)
	engine := cubesim.New(cubesim.WithSpeeds(20000, 20000), cubesim.WithSeed(9))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := playScramble(ctx, engine, time.Millisecond, 8, true)
	require.NoError(t, err)

	assert.Len(t, res.scramble, 8)
	assert.Equal(t, cubesim.InvertMoves(res.scramble), res.solve)
	assert.True(t, res.solved)
}

func TestPlayScrambleCancelled(t *testing.T) {
	setupConfig(t)
	engine := cubesim.New(cubesim.WithSpeeds(300, 300), cubesim.WithSeed(9))

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)
	res, err := playScramble(ctx, engine, time.Millisecond, 50, true)
	require.ErrorIs(t, err, context.Canceled)

	// At 300°/s a quarter turn takes 300ms, so at most one move landed.
	assert.LessOrEqual(t, len(res.scramble), 1)
	assert.Equal(t, res.scramble, engine.History())
	assert.Empty(t, res.solve)
}

func TestRecordScramble(t *testing.T) {
	setupConfig(t)
	scrambleSolve = true

	scramble := []cubesim.Move{cubesim.R, cubesim.F, cubesim.DPrime}
	res := scrambleResult{scramble: scramble, solve: cubesim.InvertMoves(scramble), solved: true}
	require.NoError(t, recordScramble(res))

	db, err := storage.Open(cfg.Storage.DBPath)
	require.NoError(t, err)
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "scramble+solve", sessions[0].Kind)
	assert.True(t, sessions[0].Solved)
	assert.Equal(t, 6, sessions[0].MoveCount)

	records, err := storage.NewMoveRepository(db).GetBySession(sessions[0].SessionID)
	require.NoError(t, err)
	assert.Equal(t, append(scramble, res.solve...), storage.Moves(records))
}

func TestRecordScrambleDisabled(t *testing.T) {
	setupConfig(t)
	cfg.Storage.Disabled = true
	require.NoError(t, recordScramble(scrambleResult{scramble: []cubesim.Move{cubesim.R}}))
	assert.NoFileExists(t, cfg.Storage.DBPath)
}
