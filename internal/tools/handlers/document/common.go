// Package document provides the document tool handlers: outline, write,
// edit and read. These handlers are the only mutation points into a
// session's workspace.
package document

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
)

// Edit modes accepted by doc.edit
const (
	editModeOverwrite = "overwrite"
	editModeAppend    = "append"
)

// clientKey extracts the MCP client session key from context.
// The SSE/HTTP transport automatically injects a ClientSession; the context
// value is the fallback for stdio transport or testing.
func clientKey(ctx context.Context) string {
	if cs := server.ClientSessionFromContext(ctx); cs != nil {
		return cs.SessionID()
	}
	if key, ok := ctx.Value("session_id").(string); ok {
		return key
	}
	return "default-session"
}
