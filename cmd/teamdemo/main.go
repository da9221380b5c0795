// Command teamdemo runs the two-team document workflow end to end against a
// fresh session workspace. It needs OPENAI_API_KEY and TAVILY_API_KEY.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
	"github.com/AltairaLabs/docteam-mcp/internal/orchestrator"
	"github.com/AltairaLabs/docteam-mcp/internal/session"
	"github.com/AltairaLabs/docteam-mcp/internal/storage/memory"
	"github.com/AltairaLabs/docteam-mcp/internal/workspace"
)

var (
	debug = flag.Bool("debug", false, "Enable debug logging")
	model = flag.String("model", "", "OpenAI model to use")
)

func main() {
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}
	tavilyKey := os.Getenv("TAVILY_API_KEY")
	if tavilyKey == "" {
		log.Fatal("TAVILY_API_KEY is required")
	}

	request := "Research current student loan repayment options and draft a customer assistance response."
	if args := flag.Args(); len(args) > 0 {
		request = args[0]
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := os.MkdirAll(cfg.WorkspaceRoot, 0755); err != nil {
		log.Fatalf("Failed to create workspace root: %v", err)
	}

	ctx := context.Background()
	sessions := session.NewManager(cfg.WorkspaceRoot, memory.NewSessionStateStorage())
	sess, err := sessions.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin session: %v", err)
	}
	logger.Info("Session started", "session_id", sess.ID, "workspace", sess.WorkspacePath)

	store := workspace.NewStore(sess.WorkspacePath)
	oracle := orchestrator.NewOpenAIOracle(openaiKey, *model)
	search := orchestrator.NewTavilyClient(tavilyKey)

	supervisor := orchestrator.NewSupervisor(oracle, logger,
		orchestrator.NewResearchTeam(oracle, search),
		orchestrator.NewAuthoringTeam(oracle, store),
	)

	transcript, err := supervisor.Run(ctx, request)
	for _, msg := range transcript {
		name := msg.Name
		if name == "" {
			name = msg.Role
		}
		fmt.Printf("[%s] %s\n\n", name, msg.Content)
	}
	if err != nil {
		log.Fatalf("Workflow failed: %v", err)
	}

	snapshot, err := store.Snapshot(ctx)
	if err != nil {
		log.Fatalf("Failed to snapshot workspace: %v", err)
	}
	fmt.Println(snapshot)
}
