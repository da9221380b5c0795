// Package memory provides an in-memory session state storage backend.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/AltairaLabs/docteam-mcp/internal/session"
)

// SessionStateStorage keeps session records in a map. Suitable for a single
// process; records do not survive restarts.
type SessionStateStorage struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewSessionStateStorage creates an empty in-memory storage.
func NewSessionStateStorage() *SessionStateStorage {
	return &SessionStateStorage{
		sessions: make(map[string]*session.Session),
	}
}

// CreateSession stores a copy of the session record.
func (s *SessionStateStorage) CreateSession(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *sess
	s.sessions[sess.ID] = &stored
	return nil
}

// GetSession returns a copy of the record, or session.ErrUnknownSession.
func (s *SessionStateStorage) GetSession(_ context.Context, id string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrUnknownSession
	}
	out := *stored
	return &out, nil
}

// ListSessions returns copies of all records.
func (s *SessionStateStorage) ListSessions(_ context.Context) ([]*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*session.Session, 0, len(s.sessions))
	for _, stored := range s.sessions {
		copied := *stored
		out = append(out, &copied)
	}
	return out, nil
}

// UpdateSessionActivity sets the last-active time for a session.
func (s *SessionStateStorage) UpdateSessionActivity(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[id]
	if !ok {
		return session.ErrUnknownSession
	}
	stored.LastActive = at
	return nil
}

// DeleteSession removes a record. Deleting an absent session is not an error.
func (s *SessionStateStorage) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
