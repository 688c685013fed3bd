package session

import (
	"context"
	"testing"
	"time"

	"github.com/ethanbaker/taskboard/pkg/board"
	"github.com/ethanbaker/taskboard/pkg/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*InMemoryStore, func(d time.Duration)) {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	store := NewInMemoryStore()
	store.now = func() time.Time { return now }
	return store, func(d time.Duration) { now = now.Add(d) }
}

func TestInMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	created, err := store.CreateBoard(ctx, "sprint", &board.Options{SortOrder: board.SortDescending})
	require.NoError(t, err)
	require.NotNil(t, created.Engine)
	assert.Equal(t, "sprint", created.Name)
	assert.Equal(t, board.SortDescending, created.Engine.SortOrder())

	got, err := store.GetBoard(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Same(t, created.Engine, got.Engine)

	// Work done through one handle is visible through the other
	_, err = got.Engine.CreateTask(board.TaskDraft{Title: "shared"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Engine.Len())

	require.NoError(t, store.DeleteBoard(ctx, created.ID))

	_, err = store.GetBoard(ctx, created.ID)
	assert.ErrorIs(t, err, session.ErrBoardNotFound)
	assert.ErrorIs(t, store.DeleteBoard(ctx, created.ID), session.ErrBoardNotFound)
}

func TestInMemoryStoreGetUnknown(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.GetBoard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, session.ErrBoardNotFound)
}

func TestInMemoryStoreListBoards(t *testing.T) {
	ctx := context.Background()
	store, advance := newTestStore()

	first, err := store.CreateBoard(ctx, "first", nil)
	require.NoError(t, err)
	advance(time.Minute)
	second, err := store.CreateBoard(ctx, "second", nil)
	require.NoError(t, err)

	boards := store.ListBoards(ctx)
	require.Len(t, boards, 2)
	assert.Equal(t, first.ID, boards[0].ID)
	assert.Equal(t, second.ID, boards[1].ID)

	// Listed copies do not write back into the store
	boards[0].Name = "renamed"
	again, err := store.GetBoard(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", again.Name)
}

func TestInMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	store, advance := newTestStore()

	idle, err := store.CreateBoard(ctx, "idle", nil)
	require.NoError(t, err)
	active, err := store.CreateBoard(ctx, "active", nil)
	require.NoError(t, err)

	advance(90 * time.Minute)
	_, err = store.GetBoard(ctx, active.ID)
	require.NoError(t, err)

	advance(45 * time.Minute)
	assert.Equal(t, 0, store.Sweep(ctx, 0))
	assert.Equal(t, 1, store.Sweep(ctx, 2*time.Hour))

	_, err = store.GetBoard(ctx, idle.ID)
	assert.ErrorIs(t, err, session.ErrBoardNotFound)
	_, err = store.GetBoard(ctx, active.ID)
	assert.NoError(t, err)
}

func TestJanitor(t *testing.T) {
	ctx := context.Background()
	store, advance := newTestStore()

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := NewJanitor(nil, "@every 1m", time.Minute)
		assert.Error(t, err)

		_, err = NewJanitor(store, "@every 1m", 0)
		assert.Error(t, err)

		_, err = NewJanitor(store, "not a cron spec", time.Minute)
		assert.Error(t, err)
	})

	t.Run("sweeps idle boards", func(t *testing.T) {
		b, err := store.CreateBoard(ctx, "stale", nil)
		require.NoError(t, err)

		janitor, err := NewJanitor(store, "@every 1h", 10*time.Minute)
		require.NoError(t, err)
		janitor.Start()
		defer janitor.Stop()

		advance(11 * time.Minute)
		janitor.run()

		_, err = store.GetBoard(ctx, b.ID)
		assert.ErrorIs(t, err, session.ErrBoardNotFound)
	})
}
