package snapshot

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
	"github.com/AltairaLabs/docteam-mcp/internal/types"
	"github.com/AltairaLabs/docteam-mcp/internal/workspace"
)

// SnapshotHandler handles the ws.snapshot tool
type SnapshotHandler struct {
	binder types.SessionBinder
	audit  types.AuditLogger
}

// NewSnapshotHandler creates a new ws.snapshot handler
func NewSnapshotHandler(binder types.SessionBinder, audit types.AuditLogger) *SnapshotHandler {
	return &SnapshotHandler{binder: binder, audit: audit}
}

// Handle implements ws.snapshot: the prelude text agents receive before each
// turn, describing what the team has written so far.
func (h *SnapshotHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	binding, err := h.binder.Bind(ctx, clientKey(ctx))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(config.ErrSessionError, err)), nil
	}

	h.audit.LogToolCall(ctx, &types.AuditEntry{
		SessionID:     binding.SessionID,
		ToolName:      config.ToolWsSnapshot,
		WorkspacePath: binding.WorkspacePath,
	})

	store := workspace.NewStore(binding.WorkspacePath)
	prelude, err := store.Snapshot(ctx)
	if err != nil {
		h.audit.LogToolResult(ctx, &types.AuditEntry{
			SessionID: binding.SessionID,
			ToolName:  config.ToolWsSnapshot,
			ErrorMsg:  err.Error(),
		})
		return mcp.NewToolResultError(err.Error()), nil
	}

	h.audit.LogToolResult(ctx, &types.AuditEntry{
		SessionID: binding.SessionID,
		ToolName:  config.ToolWsSnapshot,
		Output:    fmt.Sprintf("snapshot of %d bytes", len(prelude)),
	})
	return mcp.NewToolResultText(prelude), nil
}

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
