package document

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
	"github.com/AltairaLabs/docteam-mcp/internal/types"
	"github.com/AltairaLabs/docteam-mcp/internal/workspace"
)

// EditHandler handles the doc.edit tool
type EditHandler struct {
	binder types.SessionBinder
	audit  types.AuditLogger
}

// NewEditHandler creates a new doc.edit handler
func NewEditHandler(binder types.SessionBinder, audit types.AuditLogger) *EditHandler {
	return &EditHandler{binder: binder, audit: audit}
}

// Handle implements the doc.edit tool. The document must already exist.
// With insert_at set, content is inserted as a new line at that 1-indexed
// position; otherwise mode selects overwrite or append.
func (h *EditHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileName, err := request.RequireString("file_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode := request.GetString("mode", editModeOverwrite)
	insertAt := request.GetInt("insert_at", 0)

	if mode != editModeOverwrite && mode != editModeAppend {
		return mcp.NewToolResultError(fmt.Sprintf("unknown edit mode %q: must be %q or %q",
			mode, editModeOverwrite, editModeAppend)), nil
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
		ToolName:      config.ToolDocEdit,
		Arguments:     map[string]interface{}{"file_name": fileName, "mode": mode, "insert_at": insertAt},
		WorkspacePath: binding.WorkspacePath,
	})

	store := workspace.NewStore(binding.WorkspacePath)

	// Editing requires the document to exist, even though the append mode
	// at the store level would happily create it.
	exists, err := store.Exists(ctx, fileName)
	if err == nil && !exists {
		err = fmt.Errorf("%w: %s", workspace.ErrDocumentNotFound, fileName)
	}
	if err == nil {
		if insertAt > 0 {
			err = store.InsertLines(ctx, fileName, insertAt, content)
		} else {
			err = store.Write(ctx, fileName, content, workspace.WriteMode(mode))
		}
	}
	if err != nil {
		h.audit.LogToolResult(ctx, &types.AuditEntry{
			SessionID: binding.SessionID,
			ToolName:  config.ToolDocEdit,
			ErrorMsg:  err.Error(),
		})
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf(config.MsgDocumentEdited, fileName)
	h.audit.LogToolResult(ctx, &types.AuditEntry{
		SessionID: binding.SessionID,
		ToolName:  config.ToolDocEdit,
		Output:    result,
	})
	return mcp.NewToolResultText(result), nil
}
