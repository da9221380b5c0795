// Package orchestrator runs the two-team document workflow on top of the
// session workspace: a supervisor routes between a research team and a
// response team until the work is finished.
package orchestrator

// Message roles used in team transcripts.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one entry in a team transcript. Name identifies which agent or
// tool produced it.
type Message struct {
	Role    string
	Name    string
	Content string
}

// ToolSpec describes a tool offered to the reasoning oracle. Parameters is a
// JSON schema object.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// ToolCall is the oracle's request to invoke a tool.
type ToolCall struct {
	Name string
	Args map[string]interface{}
}

// AgentAction is one step of an agent: either a final text response or a
// tool call, never both.
type AgentAction struct {
	Text string
	Call *ToolCall
}
