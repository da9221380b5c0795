package orchestrator

import "context"

// ReasoningOracle abstracts the LLM behind the supervisor and the team
// agents. Route picks one option from a closed set; Act lets an agent answer
// or call one of the offered tools.
type ReasoningOracle interface {
	Route(ctx context.Context, system string, transcript []Message, options []string) (string, error)
	Act(ctx context.Context, system string, transcript []Message, tools []ToolSpec) (AgentAction, error)
}

// SearchResult is one document returned by a web search.
type SearchResult struct {
	Title   string
	URL     string
	Content string
}

// SearchOracle abstracts the web search backend used by the research team.
type SearchOracle interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
