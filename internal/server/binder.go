package server

import (
	"context"
	"errors"
	"sync"

	"github.com/AltairaLabs/docteam-mcp/internal/session"
	"github.com/AltairaLabs/docteam-mcp/internal/types"
)

// sessionBinder maps MCP client session keys to workspace sessions. The first
// tool call from a client begins a session; every later call from the same
// client lands in the same workspace.
type sessionBinder struct {
	manager *session.Manager

	mu    sync.Mutex
	bound map[string]string // client key -> session id
}

func newSessionBinder(manager *session.Manager) *sessionBinder {
	return &sessionBinder{
		manager: manager,
		bound:   make(map[string]string),
	}
}

var _ types.SessionBinder = (*sessionBinder)(nil)

// Bind returns the workspace binding for a client key, beginning a new
// session on first use. If the session record was reaped since the client was
// bound, a fresh session replaces it.
func (b *sessionBinder) Bind(ctx context.Context, clientKey string) (types.Binding, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if id, ok := b.bound[clientKey]; ok {
		path, err := b.manager.Resolve(ctx, id)
		if err == nil {
			_ = b.manager.Touch(ctx, id)
			return types.Binding{SessionID: id, WorkspacePath: path}, nil
		}
		if !errors.Is(err, session.ErrUnknownSession) {
			return types.Binding{}, err
		}
		delete(b.bound, clientKey)
	}

	s, err := b.manager.Begin(ctx)
	if err != nil {
		return types.Binding{}, err
	}
	b.bound[clientKey] = s.ID
	return types.Binding{SessionID: s.ID, WorkspacePath: s.WorkspacePath}, nil
}
