package server

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
)

// fakeClientSession stands in for the per-client session the SSE/HTTP
// transport injects into request contexts.
type fakeClientSession struct {
	id            string
	notifications chan mcp.JSONRPCNotification
	initialized   bool
}

func newFakeClientSession(id string) *fakeClientSession {
	return &fakeClientSession{
		id:            id,
		notifications: make(chan mcp.JSONRPCNotification, 1),
	}
}

func (s *fakeClientSession) SessionID() string { return s.id }

func (s *fakeClientSession) NotificationChannel() chan<- mcp.JSONRPCNotification {
	return s.notifications
}

func (s *fakeClientSession) Initialize() { s.initialized = true }

func (s *fakeClientSession) Initialized() bool { return s.initialized }

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func toolResultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

// Two SSE clients must land in two different sessions: each can create the
// same document name, and neither sees the other's content.
func TestToolCalls_DistinctClientSessionsAreIsolated(t *testing.T) {
	ms := newTestServer(t)

	ctxA := ms.server.WithContext(context.Background(), newFakeClientSession("sse-client-a"))
	ctxB := ms.server.WithContext(context.Background(), newFakeClientSession("sse-client-b"))

	write, err := ms.toolRegistry.Handler(config.ToolDocWrite)
	if err != nil {
		t.Fatalf("doc.write handler missing: %v", err)
	}
	read, err := ms.toolRegistry.Handler(config.ToolDocRead)
	if err != nil {
		t.Fatalf("doc.read handler missing: %v", err)
	}

	clients := []struct {
		ctx     context.Context
		content string
	}{
		{ctxA, "from A"},
		{ctxB, "from B"},
	}

	for _, c := range clients {
		result, err := write(c.ctx, toolRequest(config.ToolDocWrite, map[string]interface{}{
			"file_name": "draft.md",
			"content":   c.content,
		}))
		if err != nil {
			t.Fatalf("write returned error: %v", err)
		}
		if result.IsError {
			t.Fatalf("expected isolated create-only writes to succeed, got: %s", toolResultText(t, result))
		}
	}

	for _, c := range clients {
		result, err := read(c.ctx, toolRequest(config.ToolDocRead, map[string]interface{}{
			"file_name": "draft.md",
		}))
		if err != nil {
			t.Fatalf("read returned error: %v", err)
		}
		if result.IsError {
			t.Fatalf("read failed: %s", toolResultText(t, result))
		}
		if got := toolResultText(t, result); got != c.content {
			t.Errorf("client read %q, want its own %q", got, c.content)
		}
	}

	// The snapshot tools must be scoped per client session too.
	snap, err := ms.toolRegistry.Handler(config.ToolWsSnapshot)
	if err != nil {
		t.Fatalf("ws.snapshot handler missing: %v", err)
	}
	result, err := write(ctxA, toolRequest(config.ToolDocWrite, map[string]interface{}{
		"file_name": "extra.md",
		"content":   "only for A",
	}))
	if err != nil || result.IsError {
		t.Fatalf("extra write failed: %v %v", err, result)
	}

	result, err = snap(ctxA, toolRequest(config.ToolWsSnapshot, nil))
	if err != nil {
		t.Fatalf("snapshot returned error: %v", err)
	}
	if got := toolResultText(t, result); !strings.Contains(got, "extra.md") {
		t.Errorf("client A snapshot missing its own document: %q", got)
	}

	result, err = snap(ctxB, toolRequest(config.ToolWsSnapshot, nil))
	if err != nil {
		t.Fatalf("snapshot returned error: %v", err)
	}
	if got := toolResultText(t, result); strings.Contains(got, "extra.md") {
		t.Errorf("client B snapshot leaked another client's document: %q", got)
	}

	count, err := ms.sessions.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 sessions for 2 clients, got %d", count)
	}
}

// The same client session key must keep resolving to the same workspace.
func TestToolCalls_SameClientSessionIsStable(t *testing.T) {
	ms := newTestServer(t)

	ctx1 := ms.server.WithContext(context.Background(), newFakeClientSession("sse-client-a"))
	ctx2 := ms.server.WithContext(context.Background(), newFakeClientSession("sse-client-a"))

	write, err := ms.toolRegistry.Handler(config.ToolDocWrite)
	if err != nil {
		t.Fatalf("doc.write handler missing: %v", err)
	}

	result, err := write(ctx1, toolRequest(config.ToolDocWrite, map[string]interface{}{
		"file_name": "draft.md",
		"content":   "first",
	}))
	if err != nil || result.IsError {
		t.Fatalf("first write failed: %v %v", err, result)
	}

	// Same client, same workspace: the create-only conflict proves it.
	result, err = write(ctx2, toolRequest(config.ToolDocWrite, map[string]interface{}{
		"file_name": "draft.md",
		"content":   "second",
	}))
	if err != nil {
		t.Fatalf("second write returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected create-only conflict within one client session")
	}
}
