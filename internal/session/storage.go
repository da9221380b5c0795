package session

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownSession is returned when an identifier does not correspond to an
// initialized workspace.
var ErrUnknownSession = errors.New("unknown session")

// StateStorage persists session records. Implementations live under
// internal/storage; the manager treats them interchangeably.
type StateStorage interface {
	CreateSession(ctx context.Context, s *Session) error
	// GetSession returns ErrUnknownSession if the id has no record.
	GetSession(ctx context.Context, id string) (*Session, error)
	ListSessions(ctx context.Context) ([]*Session, error)
	UpdateSessionActivity(ctx context.Context, id string, at time.Time) error
	DeleteSession(ctx context.Context, id string) error
}
