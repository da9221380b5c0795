package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AltairaLabs/docteam-mcp/internal/session"
)

func TestSessionStateStorage_CreateAndGet(t *testing.T) {
	storage := NewSessionStateStorage()
	ctx := context.Background()

	now := time.Now()
	sess := &session.Session{
		ID:            "test-session",
		WorkspacePath: "/tmp/ws/test-session",
		CreatedAt:     now,
		LastActive:    now,
		State:         session.StateReady,
	}

	if err := storage.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := storage.GetSession(ctx, "test-session")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.WorkspacePath != sess.WorkspacePath {
		t.Errorf("Expected workspace path %s, got %s", sess.WorkspacePath, got.WorkspacePath)
	}
	if got.State != session.StateReady {
		t.Errorf("Expected state ready, got %s", got.State)
	}
}

func TestSessionStateStorage_GetUnknown(t *testing.T) {
	storage := NewSessionStateStorage()

	_, err := storage.GetSession(context.Background(), "nope")
	if !errors.Is(err, session.ErrUnknownSession) {
		t.Fatalf("Expected ErrUnknownSession, got %v", err)
	}
}

func TestSessionStateStorage_ReturnsCopies(t *testing.T) {
	storage := NewSessionStateStorage()
	ctx := context.Background()

	sess := &session.Session{ID: "s1", WorkspacePath: "/tmp/a", State: session.StateReady}
	if err := storage.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := storage.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	got.WorkspacePath = "/mutated"

	again, err := storage.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if again.WorkspacePath != "/tmp/a" {
		t.Error("Stored record was mutated through a returned copy")
	}
}

func TestSessionStateStorage_UpdateActivity(t *testing.T) {
	storage := NewSessionStateStorage()
	ctx := context.Background()

	created := time.Now().Add(-time.Hour)
	sess := &session.Session{ID: "s1", WorkspacePath: "/tmp/a", CreatedAt: created, LastActive: created}
	if err := storage.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	now := time.Now()
	if err := storage.UpdateSessionActivity(ctx, "s1", now); err != nil {
		t.Fatalf("UpdateSessionActivity failed: %v", err)
	}

	got, _ := storage.GetSession(ctx, "s1")
	if !got.LastActive.Equal(now) {
		t.Errorf("Expected last active %v, got %v", now, got.LastActive)
	}

	if err := storage.UpdateSessionActivity(ctx, "missing", now); !errors.Is(err, session.ErrUnknownSession) {
		t.Errorf("Expected ErrUnknownSession, got %v", err)
	}
}

func TestSessionStateStorage_ListAndDelete(t *testing.T) {
	storage := NewSessionStateStorage()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := storage.CreateSession(ctx, &session.Session{ID: id}); err != nil {
			t.Fatalf("CreateSession %s failed: %v", id, err)
		}
	}

	sessions, err := storage.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions, got %d", len(sessions))
	}

	if err := storage.DeleteSession(ctx, "b"); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := storage.GetSession(ctx, "b"); !errors.Is(err, session.ErrUnknownSession) {
		t.Errorf("Expected deleted session to be unknown, got %v", err)
	}

	// Deleting an absent session is not an error
	if err := storage.DeleteSession(ctx, "never-existed"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}
