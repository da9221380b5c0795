// Package sqlite provides a SQLite-backed session state storage backend so
// session bindings survive server restarts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/AltairaLabs/docteam-mcp/internal/session"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id             TEXT PRIMARY KEY,
	workspace_path TEXT NOT NULL,
	state          TEXT NOT NULL,
	created_at     INTEGER NOT NULL,
	last_active    INTEGER NOT NULL
);`

// SessionStateStorage persists session records in a SQLite database.
type SessionStateStorage struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite database at path and ensures the
// sessions table exists.
func Open(path string) (*SessionStateStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SessionStateStorage{db: db}, nil
}

// Close closes the underlying database.
func (s *SessionStateStorage) Close() error {
	return s.db.Close()
}

// CreateSession inserts a new session record.
func (s *SessionStateStorage) CreateSession(ctx context.Context, sess *session.Session) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (id, workspace_path, state, created_at, last_active) VALUES (?, ?, ?, ?, ?)",
		sess.ID, sess.WorkspacePath, string(sess.State),
		sess.CreatedAt.UnixNano(), sess.LastActive.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// GetSession returns the record for id, or session.ErrUnknownSession.
func (s *SessionStateStorage) GetSession(ctx context.Context, id string) (*session.Session, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, workspace_path, state, created_at, last_active FROM sessions WHERE id = ?", id)
	return scanSession(row)
}

// ListSessions returns all session records.
func (s *SessionStateStorage) ListSessions(ctx context.Context) ([]*session.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, workspace_path, state, created_at, last_active FROM sessions")
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var sessions []*session.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return sessions, nil
}

// UpdateSessionActivity sets the last-active time for a session.
func (s *SessionStateStorage) UpdateSessionActivity(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE sessions SET last_active = ? WHERE id = ?", at.UnixNano(), id)
	if err != nil {
		return fmt.Errorf("failed to update session activity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return session.ErrUnknownSession
	}
	return nil
}

// DeleteSession removes a record. Deleting an absent session is not an error.
func (s *SessionStateStorage) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*session.Session, error) {
	var (
		sess       session.Session
		state      string
		createdAt  int64
		lastActive int64
	)
	err := row.Scan(&sess.ID, &sess.WorkspacePath, &state, &createdAt, &lastActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, session.ErrUnknownSession
		}
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	sess.State = session.State(state)
	sess.CreatedAt = time.Unix(0, createdAt)
	sess.LastActive = time.Unix(0, lastActive)
	return &sess, nil
}
