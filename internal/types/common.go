// Package types provides shared types used across the docteam-mcp codebase
package types

import (
	"context"
	"time"
)

// Binding pairs a session identifier with its resolved workspace directory.
type Binding struct {
	SessionID     string
	WorkspacePath string
}

// SessionBinder resolves an MCP client session key to a workspace binding,
// beginning a new session when the key has none yet.
type SessionBinder interface {
	Bind(ctx context.Context, clientKey string) (Binding, error)
}

// AuditEntry represents a logged event for provenance tracking
type AuditEntry struct {
	Timestamp     time.Time
	SessionID     string
	ToolName      string
	Arguments     map[string]interface{}
	Output        string
	ErrorMsg      string
	WorkspacePath string
}

// AuditLogger provides audit logging operations
type AuditLogger interface {
	LogToolCall(ctx context.Context, entry *AuditEntry)
	LogToolResult(ctx context.Context, entry *AuditEntry)
}
