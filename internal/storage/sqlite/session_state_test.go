package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AltairaLabs/docteam-mcp/internal/session"
)

func openTestStorage(t *testing.T) (*SessionStateStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.db")
	storage, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })
	return storage, path
}

func TestSQLiteStorage_CreateAndGet(t *testing.T) {
	storage, _ := openTestStorage(t)
	ctx := context.Background()

	now := time.Now()
	sess := &session.Session{
		ID:            "sess-1",
		WorkspacePath: "/data/sess-1",
		CreatedAt:     now,
		LastActive:    now,
		State:         session.StateReady,
	}
	require.NoError(t, storage.CreateSession(ctx, sess))

	got, err := storage.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)
	assert.Equal(t, "/data/sess-1", got.WorkspacePath)
	assert.Equal(t, session.StateReady, got.State)
	assert.True(t, got.CreatedAt.Equal(now))
}

func TestSQLiteStorage_GetUnknown(t *testing.T) {
	storage, _ := openTestStorage(t)

	_, err := storage.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, session.ErrUnknownSession)
}

func TestSQLiteStorage_DuplicateCreateFails(t *testing.T) {
	storage, _ := openTestStorage(t)
	ctx := context.Background()

	sess := &session.Session{ID: "dup", WorkspacePath: "/data/dup", State: session.StateReady}
	require.NoError(t, storage.CreateSession(ctx, sess))
	assert.Error(t, storage.CreateSession(ctx, sess))
}

func TestSQLiteStorage_UpdateActivity(t *testing.T) {
	storage, _ := openTestStorage(t)
	ctx := context.Background()

	created := time.Now().Add(-time.Hour)
	sess := &session.Session{ID: "s1", WorkspacePath: "/data/s1", CreatedAt: created, LastActive: created, State: session.StateReady}
	require.NoError(t, storage.CreateSession(ctx, sess))

	now := time.Now()
	require.NoError(t, storage.UpdateSessionActivity(ctx, "s1", now))

	got, err := storage.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.LastActive.Equal(now))

	assert.ErrorIs(t, storage.UpdateSessionActivity(ctx, "missing", now), session.ErrUnknownSession)
}

func TestSQLiteStorage_ListAndDelete(t *testing.T) {
	storage, _ := openTestStorage(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		require.NoError(t, storage.CreateSession(ctx, &session.Session{
			ID: id, WorkspacePath: "/data/" + id, State: session.StateReady,
		}))
	}

	sessions, err := storage.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	require.NoError(t, storage.DeleteSession(ctx, "a"))
	_, err = storage.GetSession(ctx, "a")
	assert.ErrorIs(t, err, session.ErrUnknownSession)

	assert.NoError(t, storage.DeleteSession(ctx, "never-existed"))
}

func TestSQLiteStorage_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")
	ctx := context.Background()

	storage, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, storage.CreateSession(ctx, &session.Session{
		ID: "persisted", WorkspacePath: "/data/persisted", State: session.StateReady,
	}))
	require.NoError(t, storage.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetSession(ctx, "persisted")
	require.NoError(t, err)
	assert.Equal(t, "/data/persisted", got.WorkspacePath)
}
