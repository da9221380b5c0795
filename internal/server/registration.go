package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
)

// registerTools registers all MCP tools with handlers via the tool registry
func (ms *MCPServer) registerTools() {
	add := func(tool mcp.Tool, name string) {
		h, err := ms.toolRegistry.Handler(name)
		if err != nil {
			// Every declared tool must have a registry handler
			panic(fmt.Sprintf("Tool %s not found in registry", name))
		}
		ms.server.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return h(ctx, req)
		})
	}

	outlineTool := mcp.NewTool(config.ToolDocOutline,
		mcp.WithDescription("Create an outline document from a list of points. Fails if the file already exists."),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("Name of the outline file to create"),
		),
		mcp.WithArray("points",
			mcp.Required(),
			mcp.Description("Ordered list of outline points"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	add(outlineTool, config.ToolDocOutline)

	writeTool := mcp.NewTool(config.ToolDocWrite,
		mcp.WithDescription("Create a new document with the given content. Fails if the file already exists."),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("Name of the document to create"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Full document content"),
		),
	)
	add(writeTool, config.ToolDocWrite)

	editTool := mcp.NewTool(config.ToolDocEdit,
		mcp.WithDescription("Edit an existing document. Use mode to overwrite or append, or insert_at to insert content as a new line."),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("Name of the document to edit"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Content to write, append or insert"),
		),
		mcp.WithString("mode",
			mcp.Description("How to apply the content when insert_at is not set"),
			mcp.Enum("overwrite", "append"),
		),
		mcp.WithNumber("insert_at",
			mcp.Description("Insert content as a new line at this 1-indexed line number"),
		),
	)
	add(editTool, config.ToolDocEdit)

	readTool := mcp.NewTool(config.ToolDocRead,
		mcp.WithDescription("Read a document, optionally limited to a line window"),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("Name of the document to read"),
		),
		mcp.WithNumber("start",
			mcp.Description("First line of the window, 0-indexed"),
		),
		mcp.WithNumber("end",
			mcp.Description("Line after the last line of the window; omit for end of document"),
		),
	)
	add(readTool, config.ToolDocRead)

	listTool := mcp.NewTool(config.ToolWsList,
		mcp.WithDescription("List the documents in the session workspace"),
	)
	add(listTool, config.ToolWsList)

	snapshotTool := mcp.NewTool(config.ToolWsSnapshot,
		mcp.WithDescription("Render a snapshot of the session workspace suitable for agent prompts"),
	)
	add(snapshotTool, config.ToolWsSnapshot)
}
