// Package tools maps tool names to their handler functions.
package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerFunc is a function that handles a tool call
type HandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// HandlerRegistry maps tool names to handler functions
type HandlerRegistry struct {
	handlers map[string]HandlerFunc
}

// NewHandlerRegistry creates a registry seeded with the given handlers
func NewHandlerRegistry(initial map[string]HandlerFunc) *HandlerRegistry {
	r := &HandlerRegistry{
		handlers: make(map[string]HandlerFunc, len(initial)),
	}
	for name, h := range initial {
		r.handlers[name] = h
	}
	return r
}

// Register adds or replaces a handler for a tool name
func (r *HandlerRegistry) Register(toolName string, handler HandlerFunc) {
	r.handlers[toolName] = handler
}

// Handler returns the handler function for a given tool name
func (r *HandlerRegistry) Handler(toolName string) (HandlerFunc, error) {
	h, ok := r.handlers[toolName]
	if !ok {
		return nil, fmt.Errorf("no handler registered for tool: %s", toolName)
	}
	return h, nil
}

// Names returns the registered tool names, sorted
func (r *HandlerRegistry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
