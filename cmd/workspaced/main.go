package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
	"github.com/AltairaLabs/docteam-mcp/internal/server"
	"github.com/AltairaLabs/docteam-mcp/internal/session"
	"github.com/AltairaLabs/docteam-mcp/internal/storage/memory"
	"github.com/AltairaLabs/docteam-mcp/internal/storage/sqlite"
)

const cleanupInterval = 5 * time.Minute

var (
	version    = flag.Bool("version", false, "Print version and exit")
	debug      = flag.Bool("debug", false, "Enable debug logging")
	httpMode   = flag.Bool("http", false, "Enable HTTP/SSE transport instead of stdio")
	configPath = flag.String("config", "", "Path to YAML config file")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s v%s\n", config.DefaultName, config.DefaultVersion)
		os.Exit(0)
	}

	// Setup structured logging
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// run holds the fallible part of startup so deferred cleanup (notably the
// SQLite close) executes on every exit path.
func run(logger *slog.Logger) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Info("Starting workspace MCP server",
		"name", cfg.Name,
		"version", cfg.Version,
		"debug", *debug,
		"http_mode", *httpMode,
		"workspace_root", cfg.WorkspaceRoot,
	)

	if err := os.MkdirAll(cfg.WorkspaceRoot, 0755); err != nil {
		return fmt.Errorf("failed to create workspace root %s: %w", cfg.WorkspaceRoot, err)
	}

	// Session state lives in SQLite when a path is configured, in memory
	// otherwise. The memory backend forgets sessions on restart; workspace
	// directories survive either way.
	var stateStorage session.StateStorage
	if cfg.StateDB != "" {
		db, err := sqlite.Open(cfg.StateDB)
		if err != nil {
			return fmt.Errorf("failed to open state database %s: %w", cfg.StateDB, err)
		}
		defer db.Close()
		stateStorage = db
		logger.Info("Using SQLite session state", "path", cfg.StateDB)
	} else {
		stateStorage = memory.NewSessionStateStorage()
		logger.Info("Using in-memory session state")
	}

	sessionManager := session.NewManager(cfg.WorkspaceRoot, stateStorage)
	auditLogger := server.NewAuditLogger(logger)
	mcpServer := server.NewMCPServer(cfg, sessionManager, auditLogger)

	logger.Info("MCP Server initialized",
		"name", cfg.Name,
		"version", cfg.Version,
		"tools", config.AllTools(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start MCP server in goroutine
	go func() {
		if *httpMode {
			if err := mcpServer.ServeHTTPWithLogger(cfg.HTTPAddr, logger); err != nil {
				logger.Error("MCP server error", "error", err)
				cancel()
			}
		} else {
			if err := mcpServer.ServeWithLogger(logger); err != nil {
				logger.Error("MCP server error", "error", err)
				cancel()
			}
		}
	}()

	// Stale session record sweep, only when a TTL is configured. Workspace
	// directories are never removed here.
	if cfg.SessionTTL > 0 {
		go func() {
			ticker := time.NewTicker(cleanupInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					deleted := sessionManager.CleanupStale(ctx, cfg.SessionTTL)
					if deleted > 0 {
						logger.Info("Cleaned up stale session records", "count", deleted)
					}
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	select {
	case <-sigChan:
		logger.Info("Received shutdown signal")
	case <-ctx.Done():
		logger.Info("Context canceled")
	}

	logger.Info("Shutting down gracefully")
	return nil
}
