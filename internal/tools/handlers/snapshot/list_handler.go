// Package snapshot provides the read-only workspace inspection tools:
// ws.list and ws.snapshot.
package snapshot

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
	"github.com/AltairaLabs/docteam-mcp/internal/types"
	"github.com/AltairaLabs/docteam-mcp/internal/workspace"
)

// ListHandler handles the ws.list tool
type ListHandler struct {
	binder types.SessionBinder
	audit  types.AuditLogger
}

// NewListHandler creates a new ws.list handler
func NewListHandler(binder types.SessionBinder, audit types.AuditLogger) *ListHandler {
	return &ListHandler{binder: binder, audit: audit}
}

// Handle implements ws.list: document names, one per line, sorted.
func (h *ListHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	binding, err := h.binder.Bind(ctx, clientKey(ctx))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(config.ErrSessionError, err)), nil
	}

	h.audit.LogToolCall(ctx, &types.AuditEntry{
		SessionID:     binding.SessionID,
		ToolName:      config.ToolWsList,
		WorkspacePath: binding.WorkspacePath,
	})

	store := workspace.NewStore(binding.WorkspacePath)
	names, err := store.List(ctx)
	if err != nil {
		h.audit.LogToolResult(ctx, &types.AuditEntry{
			SessionID: binding.SessionID,
			ToolName:  config.ToolWsList,
			ErrorMsg:  err.Error(),
		})
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := config.MsgEmptyWorkspace
	if len(names) > 0 {
		result = strings.Join(names, "\n")
	}

	h.audit.LogToolResult(ctx, &types.AuditEntry{
		SessionID: binding.SessionID,
		ToolName:  config.ToolWsList,
		Output:    fmt.Sprintf("%d documents", len(names)),
	})
	return mcp.NewToolResultText(result), nil
}
