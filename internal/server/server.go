// Package server assembles the MCP server: session binding, audit logging
// and the document tool set, registered over the mcp-go server core.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
	"github.com/AltairaLabs/docteam-mcp/internal/session"
	"github.com/AltairaLabs/docteam-mcp/internal/tools"
	"github.com/AltairaLabs/docteam-mcp/internal/tools/handlers/document"
	"github.com/AltairaLabs/docteam-mcp/internal/tools/handlers/snapshot"
)

// MCPServer wraps the mcp-go server with session and audit wiring
type MCPServer struct {
	server       *server.MCPServer
	sessions     *session.Manager
	auditLogger  *AuditLogger
	binder       *sessionBinder
	toolRegistry *tools.HandlerRegistry
}

// NewMCPServer creates and configures a new MCP server with all dependencies initialized
func NewMCPServer(cfg config.Config, sessions *session.Manager, audit *AuditLogger) *MCPServer {
	mcpServer := server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	ms := &MCPServer{
		server:      mcpServer,
		sessions:    sessions,
		auditLogger: audit,
		binder:      newSessionBinder(sessions),
	}

	outlineHandler := document.NewOutlineHandler(ms.binder, ms.auditLogger)
	writeHandler := document.NewWriteHandler(ms.binder, ms.auditLogger)
	editHandler := document.NewEditHandler(ms.binder, ms.auditLogger)
	readHandler := document.NewReadHandler(ms.binder, ms.auditLogger)
	listHandler := snapshot.NewListHandler(ms.binder, ms.auditLogger)
	snapshotHandler := snapshot.NewSnapshotHandler(ms.binder, ms.auditLogger)

	ms.toolRegistry = tools.NewHandlerRegistry(map[string]tools.HandlerFunc{
		config.ToolDocOutline: outlineHandler.Handle,
		config.ToolDocWrite:   writeHandler.Handle,
		config.ToolDocEdit:    editHandler.Handle,
		config.ToolDocRead:    readHandler.Handle,
		config.ToolWsList:     listHandler.Handle,
		config.ToolWsSnapshot: snapshotHandler.Handle,
	})

	ms.registerTools()

	return ms
}

// Sessions exposes the session manager, mainly for lifecycle hooks in main.
func (ms *MCPServer) Sessions() *session.Manager {
	return ms.sessions
}
