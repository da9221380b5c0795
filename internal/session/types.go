package session

import (
	"time"
)

// State represents the lifecycle state of a session record.
type State string

const (
	// StateReady indicates the session is ready to accept tool calls
	StateReady State = "ready"
	// StateTerminating indicates the session is being retired
	StateTerminating State = "terminating"
)

// Session binds a unique identifier to its workspace directory. The binding
// is immutable after creation; only activity bookkeeping changes afterwards.
type Session struct {
	ID            string
	WorkspacePath string
	CreatedAt     time.Time
	LastActive    time.Time
	State         State
}
