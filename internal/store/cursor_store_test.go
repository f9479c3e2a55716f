package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepCursor_RoundTrip(t *testing.T) {
	cursor := SweepCursor{
		EndedAt: time.Date(2026, 5, 2, 9, 30, 15, 123456000, time.UTC),
		TripID:  uuid.MustParse("0b7f3c1e-5d0a-4b8e-9d43-2f1c6a7e8b90"),
	}

	parsed, err := ParseSweepCursor(cursor.String())
	require.NoError(t, err)
	assert.True(t, cursor.EndedAt.Equal(parsed.EndedAt))
	assert.Equal(t, cursor.TripID, parsed.TripID)

	_, err = ParseSweepCursor("not-a-cursor")
	assert.Error(t, err)
	_, err = ParseSweepCursor("yesterday|0b7f3c1e-5d0a-4b8e-9d43-2f1c6a7e8b90")
	assert.Error(t, err)
	_, err = ParseSweepCursor("2026-05-02T09:30:15Z|trip")
	assert.Error(t, err)
}

func TestCursorStore(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	tx := testDB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})

	ctx := context.Background()
	cursors := NewCursorStore(tx)

	cursor, err := cursors.GetSweepCursor(ctx, "learning-backlog")
	require.NoError(t, err)
	assert.Nil(t, cursor)

	expected := &SweepCursor{EndedAt: time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC), TripID: uuid.New()}
	require.NoError(t, cursors.SetSweepCursor(ctx, "learning-backlog", expected))

	cursor, err = cursors.GetSweepCursor(ctx, "learning-backlog")
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, expected.TripID, cursor.TripID)
	assert.True(t, expected.EndedAt.Equal(cursor.EndedAt))

	require.NoError(t, cursors.SetSweepCursor(ctx, "learning-backlog", nil))
	cursor, err = cursors.GetSweepCursor(ctx, "learning-backlog")
	require.NoError(t, err)
	assert.Nil(t, cursor)
}
