package document

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
	"github.com/AltairaLabs/docteam-mcp/internal/types"
	"github.com/AltairaLabs/docteam-mcp/internal/workspace"
)

// WriteHandler handles the doc.write tool
type WriteHandler struct {
	binder types.SessionBinder
	audit  types.AuditLogger
}

// NewWriteHandler creates a new doc.write handler
func NewWriteHandler(binder types.SessionBinder, audit types.AuditLogger) *WriteHandler {
	return &WriteHandler{binder: binder, audit: audit}
}

// Handle implements the doc.write tool: a create-only write. Existing
// documents are never clobbered here; agents use doc.edit for that.
func (h *WriteHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileName, err := request.RequireString("file_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if vErr := workspace.ValidateDocumentName(fileName); vErr != nil {
		return mcp.NewToolResultError(vErr.Error()), nil
	}

	binding, err := h.binder.Bind(ctx, clientKey(ctx))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(config.ErrSessionError, err)), nil
	}

	h.audit.LogToolCall(ctx, &types.AuditEntry{
		SessionID:     binding.SessionID,
		ToolName:      config.ToolDocWrite,
		Arguments:     map[string]interface{}{"file_name": fileName, "content": content},
		WorkspacePath: binding.WorkspacePath,
	})

	store := workspace.NewStore(binding.WorkspacePath)
	if err := store.Write(ctx, fileName, content, workspace.WriteCreateOnly); err != nil {
		h.audit.LogToolResult(ctx, &types.AuditEntry{
			SessionID: binding.SessionID,
			ToolName:  config.ToolDocWrite,
			ErrorMsg:  err.Error(),
		})
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf(config.MsgDocumentSaved, fileName)
	h.audit.LogToolResult(ctx, &types.AuditEntry{
		SessionID: binding.SessionID,
		ToolName:  config.ToolDocWrite,
		Output:    result,
	})
	return mcp.NewToolResultText(result), nil
}
