package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the shared Store contract against an implementation.
func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.StartRound(ctx, Round{
		ID: "r1", PlayerID: "p1", Jumble: "tacrx", TargetCount: 3, StartedAt: base.Add(-2 * time.Minute),
	}))
	require.NoError(t, s.StartRound(ctx, Round{
		ID: "r2", PlayerID: "p2", Jumble: "eatmx", TargetCount: 2, StartedAt: base.Add(-1 * time.Minute),
	}))

	// progress without completion
	require.NoError(t, s.UpdateProgress(ctx, "r1", 1, false))

	// completion stamps finished_at once
	require.NoError(t, s.UpdateProgress(ctx, "r2", 2, true))

	// unknown round id
	assert.ErrorIs(t, s.UpdateProgress(ctx, "missing", 1, false), ErrNotFound)

	rounds, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.Equal(t, "r2", rounds[0].ID, "newest round first")
	assert.Equal(t, "r1", rounds[1].ID)

	assert.Equal(t, 1, rounds[1].WordsFound)
	assert.Nil(t, rounds[1].FinishedAt)
	assert.Equal(t, 2, rounds[0].WordsFound)
	require.NotNil(t, rounds[0].FinishedAt)

	// limit applies
	rounds, err = s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, "r2", rounds[0].ID)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	s, db, err := OpenSQLite(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	exerciseStore(t, s)
}

func TestSQLiteMigrationsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "rounds.db")

	_, db, err := OpenSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// reopening re-runs migrate, which must skip applied files
	s, db, err := OpenSQLite(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, s.StartRound(context.Background(), Round{
		ID: "r1", PlayerID: "p1", Jumble: "tac", TargetCount: 1, StartedAt: time.Now().UTC(),
	}))
}
