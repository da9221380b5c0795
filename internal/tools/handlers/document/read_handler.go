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

// ReadHandler handles the doc.read tool
type ReadHandler struct {
	binder types.SessionBinder
	audit  types.AuditLogger
}

// NewReadHandler creates a new doc.read handler
func NewReadHandler(binder types.SessionBinder, audit types.AuditLogger) *ReadHandler {
	return &ReadHandler{binder: binder, audit: audit}
}

// Handle implements the doc.read tool. Without a line window the content is
// returned unchanged; start is 0-indexed and end is exclusive.
func (h *ReadHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileName, err := request.RequireString("file_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	start := request.GetInt("start", 0)
	end := request.GetInt("end", 0)

	if vErr := workspace.ValidateDocumentName(fileName); vErr != nil {
		return mcp.NewToolResultError(vErr.Error()), nil
	}

	binding, err := h.binder.Bind(ctx, clientKey(ctx))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(config.ErrSessionError, err)), nil
	}

	h.audit.LogToolCall(ctx, &types.AuditEntry{
		SessionID:     binding.SessionID,
		ToolName:      config.ToolDocRead,
		Arguments:     map[string]interface{}{"file_name": fileName, "start": start, "end": end},
		WorkspacePath: binding.WorkspacePath,
	})

	store := workspace.NewStore(binding.WorkspacePath)
	content, err := store.Read(ctx, fileName)
	if err != nil {
		h.audit.LogToolResult(ctx, &types.AuditEntry{
			SessionID: binding.SessionID,
			ToolName:  config.ToolDocRead,
			ErrorMsg:  err.Error(),
		})
		return mcp.NewToolResultError(err.Error()), nil
	}

	if start > 0 || end > 0 {
		content = lineWindow(content, start, end)
	}

	h.audit.LogToolResult(ctx, &types.AuditEntry{
		SessionID: binding.SessionID,
		ToolName:  config.ToolDocRead,
		Output:    fmt.Sprintf("read %d bytes", len(content)),
	})
	return mcp.NewToolResultText(content), nil
}

// lineWindow slices content to the [start, end) line range. Out-of-range
// bounds clamp rather than error; end <= 0 means "to the end".
func lineWindow(content string, start, end int) string {
	lines := strings.Split(content, "\n")
	if start < 0 {
		start = 0
	}
	if start > len(lines) {
		start = len(lines)
	}
	if end <= 0 || end > len(lines) {
		end = len(lines)
	}
	if end < start {
		end = start
	}
	return strings.Join(lines[start:end], "\n")
}
