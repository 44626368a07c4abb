package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenMigrates(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	// Reapplying is a no-op.
	require.NoError(t, db.MigrateUp())
	version, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create("scramble", 42)
	require.NoError(t, err)

	s, err := sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "scramble", s.Kind)
	require.NotNil(t, s.Seed)
	assert.Equal(t, uint64(42), *s.Seed)
	assert.Nil(t, s.EndedAt)
	assert.False(t, s.Solved)

	require.NoError(t, sessions.End(id, true))
	s, err = sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s.EndedAt)
	require.NotNil(t, s.DurationMs)
	assert.True(t, s.Solved)
}

func TestGetMissingSession(t *testing.T) {
	s, err := NewSessionRepository(openTestDB(t)).Get("nope")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestUnseededSession(t *testing.T) {
	sessions := NewSessionRepository(openTestDB(t))
	id, err := sessions.Create("turn", 0)
	require.NoError(t, err)
	s, err := sessions.Get(id)
	require.NoError(t, err)
	assert.Nil(t, s.Seed)
}

func TestMovesRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("scramble", 1)
	require.NoError(t, err)

	scramble := []cubesim.Move{cubesim.R, cubesim.UPrime, cubesim.M, cubesim.SPrime}
	require.NoError(t, moves.CreateBatch(id, "scramble", scramble, 0))
	solve := cubesim.InvertMoves(scramble)
	require.NoError(t, moves.CreateBatch(id, "solve", solve, len(scramble)))

	records, err := moves.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 8)
	assert.Equal(t, append(scramble, solve...), Moves(records))
	assert.Equal(t, "scramble", records[0].Phase)
	assert.Equal(t, "solve", records[7].Phase)
	assert.Equal(t, "R", records[0].Notation)

	s, err := sessions.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 8, s.MoveCount)
}

func TestDuplicateMoveIndexRollsBack(t *testing.T) {
	db := openTestDB(t)
	id, err := NewSessionRepository(db).Create("turn", 0)
	require.NoError(t, err)
	moves := NewMoveRepository(db)

	require.NoError(t, moves.CreateBatch(id, "turn", []cubesim.Move{cubesim.R}, 0))
	err = moves.CreateBatch(id, "turn", []cubesim.Move{cubesim.U, cubesim.F}, 1)
	require.NoError(t, err)
	err = moves.CreateBatch(id, "turn", []cubesim.Move{cubesim.D, cubesim.B}, 2)
	assert.Error(t, err)

	records, err := moves.GetBySession(id)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestListNewestFirst(t *testing.T) {
	sessions := NewSessionRepository(openTestDB(t))
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := sessions.Create("scramble", uint64(i+1))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := sessions.List(2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].SessionID)
	assert.Equal(t, ids[1], list[1].SessionID)
}
