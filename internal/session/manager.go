// Package session manages the lifecycle of workspace sessions: one unique
// identifier per end-to-end run, bound to one isolated directory under a
// configured root.
package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/AltairaLabs/docteam-mcp/internal/workspace"
)

const workspaceDirPerm = 0755

// Manager creates sessions and binds each to an isolated workspace
// directory. The root is an explicit constructor argument, never ambient
// process state.
type Manager struct {
	root    string
	storage StateStorage
}

// NewManager creates a session manager rooted at the given directory with
// the given state storage backend.
func NewManager(root string, storage StateStorage) *Manager {
	return &Manager{root: root, storage: storage}
}

// Begin generates a collision-resistant session identifier, creates the
// corresponding workspace directory and persists the binding.
func (m *Manager) Begin(ctx context.Context) (*Session, error) {
	id := uuid.NewString()
	path := filepath.Join(m.root, id)

	// A UUID collision is practically impossible; an existing directory here
	// means the root is shared with something that is not this system.
	if _, err := os.Stat(path); err == nil {
		return nil, &workspace.StorageError{
			Op:  "begin",
			Err: fmt.Errorf("workspace path already exists: %s", path),
		}
	}
	if err := os.MkdirAll(path, workspaceDirPerm); err != nil {
		return nil, &workspace.StorageError{Op: "begin", Err: err}
	}

	now := time.Now()
	s := &Session{
		ID:            id,
		WorkspacePath: path,
		CreatedAt:     now,
		LastActive:    now,
		State:         StateReady,
	}
	if err := m.storage.CreateSession(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return s, nil
}

// Resolve returns the workspace path bound to a session identifier. Pure
// lookup with no side effects; ErrUnknownSession if the identifier was
// never initialized.
func (m *Manager) Resolve(ctx context.Context, id string) (string, error) {
	s, err := m.storage.GetSession(ctx, id)
	if err != nil {
		return "", err
	}
	return s.WorkspacePath, nil
}

// Get retrieves the full session record.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	return m.storage.GetSession(ctx, id)
}

// Touch updates a session's last-active time.
func (m *Manager) Touch(ctx context.Context, id string) error {
	return m.storage.UpdateSessionActivity(ctx, id, time.Now())
}

// Count returns the number of tracked sessions.
func (m *Manager) Count(ctx context.Context) (int, error) {
	sessions, err := m.storage.ListSessions(ctx)
	if err != nil {
		return 0, err
	}
	return len(sessions), nil
}

// CleanupStale deletes session records inactive for longer than maxAge and
// returns how many were removed. Only state records are dropped; workspace
// directories stay on disk for out-of-band retention handling.
func (m *Manager) CleanupStale(ctx context.Context, maxAge time.Duration) int {
	sessions, err := m.storage.ListSessions(ctx)
	if err != nil {
		return 0
	}

	now := time.Now()
	deleted := 0
	for _, s := range sessions {
		if now.Sub(s.LastActive) > maxAge {
			if err := m.storage.DeleteSession(ctx, s.ID); err == nil {
				deleted++
			}
		}
	}
	return deleted
}
