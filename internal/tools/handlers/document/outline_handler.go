package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
	"github.com/AltairaLabs/docteam-mcp/internal/types"
	"github.com/AltairaLabs/docteam-mcp/internal/workspace"
)

// OutlineHandler handles the doc.outline tool
type OutlineHandler struct {
	binder types.SessionBinder
	audit  types.AuditLogger
}

// NewOutlineHandler creates a new doc.outline handler
func NewOutlineHandler(binder types.SessionBinder, audit types.AuditLogger) *OutlineHandler {
	return &OutlineHandler{binder: binder, audit: audit}
}

// Handle implements the doc.outline tool: a create-only write of a numbered
// outline built from the supplied points.
func (h *OutlineHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileName, err := request.RequireString("file_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	points, err := request.RequireStringSlice("points")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(points) == 0 {
		return mcp.NewToolResultError("points must not be empty"), nil
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
		ToolName:      config.ToolDocOutline,
		Arguments:     map[string]interface{}{"file_name": fileName, "points": len(points)},
		WorkspacePath: binding.WorkspacePath,
	})

	var outline strings.Builder
	for i, point := range points {
		fmt.Fprintf(&outline, "%d. %s\n", i+1, point)
	}

	store := workspace.NewStore(binding.WorkspacePath)
	if err := store.Write(ctx, fileName, outline.String(), workspace.WriteCreateOnly); err != nil {
		h.audit.LogToolResult(ctx, &types.AuditEntry{
			SessionID: binding.SessionID,
			ToolName:  config.ToolDocOutline,
			ErrorMsg:  err.Error(),
		})
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf(config.MsgOutlineSaved, fileName)
	h.audit.LogToolResult(ctx, &types.AuditEntry{
		SessionID: binding.SessionID,
		ToolName:  config.ToolDocOutline,
		Output:    result,
	})
	return mcp.NewToolResultText(result), nil
}
