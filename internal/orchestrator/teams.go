package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/AltairaLabs/docteam-mcp/internal/config"
	"github.com/AltairaLabs/docteam-mcp/internal/workspace"
)

const defaultMaxSteps = 10

// autonomySuffix is appended to every agent system prompt.
const autonomySuffix = "\nWork autonomously according to your specialty, using the tools available to you." +
	" Do not ask for clarification." +
	" Your other team members (and other teams) will collaborate with you with their own specialties." +
	" You are chosen for a reason!"

const researchPrompt = "You are a research assistant who can search for up-to-date info using the tavily search engine."

const authoringPrompt = "You are an expert writer tasked with outlining, drafting and editing documents" +
	" in your team's shared directory."

// searchToolName is the single tool offered to the research agent.
const searchToolName = "search"

// ResearchTeam wraps a search-capable agent. Each Run is one agent
// engagement: the agent may search several times before answering.
type ResearchTeam struct {
	oracle   ReasoningOracle
	search   SearchOracle
	maxSteps int
}

// NewResearchTeam creates the research team.
func NewResearchTeam(oracle ReasoningOracle, search SearchOracle) *ResearchTeam {
	return &ResearchTeam{oracle: oracle, search: search, maxSteps: defaultMaxSteps}
}

var _ Team = (*ResearchTeam)(nil)

// Name returns the routing name of the team.
func (t *ResearchTeam) Name() string { return TeamResearch }

// Run lets the research agent work the transcript, searching as needed, and
// returns its findings as a single message.
func (t *ResearchTeam) Run(ctx context.Context, transcript []Message) (Message, error) {
	tools := []ToolSpec{{
		Name:        searchToolName,
		Description: "Search the web for up-to-date information",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{"type": "string"},
			},
			"required": []string{"query"},
		},
	}}

	local := append([]Message(nil), transcript...)
	system := researchPrompt + autonomySuffix

	for step := 0; step < t.maxSteps; step++ {
		action, err := t.oracle.Act(ctx, system, local, tools)
		if err != nil {
			return Message{}, fmt.Errorf("research step %d: %w", step, err)
		}
		if action.Call == nil {
			return Message{Role: RoleAssistant, Name: TeamResearch, Content: action.Text}, nil
		}
		if action.Call.Name != searchToolName {
			return Message{}, fmt.Errorf("research agent called unknown tool %q", action.Call.Name)
		}

		results, err := t.search.Search(ctx, stringArg(action.Call.Args, "query"))
		if err != nil {
			return Message{}, fmt.Errorf("search: %w", err)
		}
		local = append(local, Message{Role: RoleTool, Name: searchToolName, Content: formatResults(results)})
	}
	return Message{}, fmt.Errorf("research agent did not answer within %d steps", t.maxSteps)
}

// formatResults renders search results for the agent transcript.
func formatResults(results []SearchResult) string {
	if len(results) == 0 {
		return "No results found."
	}
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%s\n%s\n%s\n\n", r.Title, r.URL, r.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}

// AuthoringTeam wraps a document-writing agent bound to a session workspace.
// Before every step the agent's prompt is refreshed with a workspace
// snapshot, so it always sees what the team has written so far.
type AuthoringTeam struct {
	oracle   ReasoningOracle
	store    *workspace.Store
	maxSteps int
}

// NewAuthoringTeam creates the authoring team over a workspace store.
func NewAuthoringTeam(oracle ReasoningOracle, store *workspace.Store) *AuthoringTeam {
	return &AuthoringTeam{oracle: oracle, store: store, maxSteps: defaultMaxSteps}
}

var _ Team = (*AuthoringTeam)(nil)

// Name returns the routing name of the team.
func (t *AuthoringTeam) Name() string { return TeamAuthoring }

// Run lets the authoring agent work the transcript with the document tools
// and returns its report as a single message.
func (t *AuthoringTeam) Run(ctx context.Context, transcript []Message) (Message, error) {
	local := append([]Message(nil), transcript...)

	for step := 0; step < t.maxSteps; step++ {
		prelude, err := t.store.Snapshot(ctx)
		if err != nil {
			return Message{}, fmt.Errorf("workspace snapshot: %w", err)
		}
		system := authoringPrompt + "\n" + prelude + autonomySuffix

		action, err := t.oracle.Act(ctx, system, local, documentToolSpecs())
		if err != nil {
			return Message{}, fmt.Errorf("authoring step %d: %w", step, err)
		}
		if action.Call == nil {
			return Message{Role: RoleAssistant, Name: TeamAuthoring, Content: action.Text}, nil
		}

		output, err := t.dispatch(ctx, action.Call)
		if err != nil {
			return Message{}, err
		}
		local = append(local, Message{Role: RoleTool, Name: action.Call.Name, Content: output})
	}
	return Message{}, fmt.Errorf("authoring agent did not answer within %d steps", t.maxSteps)
}

// dispatch executes one document tool call against the workspace store.
// Storage-level failures are returned as tool output so the agent can
// recover; only unknown tools abort the run.
func (t *AuthoringTeam) dispatch(ctx context.Context, call *ToolCall) (string, error) {
	name := stringArg(call.Args, "file_name")
	if err := workspace.ValidateDocumentName(name); err != nil {
		return err.Error(), nil
	}

	switch call.Name {
	case config.ToolDocOutline:
		points := stringSliceArg(call.Args, "points")
		if len(points) == 0 {
			return "points must not be empty", nil
		}
		var outline strings.Builder
		for i, point := range points {
			fmt.Fprintf(&outline, "%d. %s\n", i+1, point)
		}
		if err := t.store.Write(ctx, name, outline.String(), workspace.WriteCreateOnly); err != nil {
			return err.Error(), nil
		}
		return fmt.Sprintf(config.MsgOutlineSaved, name), nil

	case config.ToolDocWrite:
		if err := t.store.Write(ctx, name, stringArg(call.Args, "content"), workspace.WriteCreateOnly); err != nil {
			return err.Error(), nil
		}
		return fmt.Sprintf(config.MsgDocumentSaved, name), nil

	case config.ToolDocEdit:
		exists, err := t.store.Exists(ctx, name)
		if err != nil {
			return err.Error(), nil
		}
		if !exists {
			return fmt.Sprintf("%v: %s", workspace.ErrDocumentNotFound, name), nil
		}
		content := stringArg(call.Args, "content")
		if insertAt := intArg(call.Args, "insert_at"); insertAt > 0 {
			if err := t.store.InsertLines(ctx, name, insertAt, content); err != nil {
				return err.Error(), nil
			}
			return fmt.Sprintf(config.MsgDocumentEdited, name), nil
		}
		mode := workspace.WriteMode(stringArg(call.Args, "mode"))
		if mode == "" {
			mode = workspace.WriteOverwrite
		}
		if mode != workspace.WriteOverwrite && mode != workspace.WriteAppend {
			return fmt.Sprintf("unknown edit mode %q", mode), nil
		}
		if err := t.store.Write(ctx, name, content, mode); err != nil {
			return err.Error(), nil
		}
		return fmt.Sprintf(config.MsgDocumentEdited, name), nil

	case config.ToolDocRead:
		content, err := t.store.Read(ctx, name)
		if err != nil {
			return err.Error(), nil
		}
		return content, nil

	default:
		return "", fmt.Errorf("authoring agent called unknown tool %q", call.Name)
	}
}

// documentToolSpecs describes the document tools for the authoring agent.
func documentToolSpecs() []ToolSpec {
	fileName := map[string]interface{}{"type": "string"}
	return []ToolSpec{
		{
			Name:        config.ToolDocOutline,
			Description: "Create an outline document from a list of points",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file_name": fileName,
					"points": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "string"},
					},
				},
				"required": []string{"file_name", "points"},
			},
		},
		{
			Name:        config.ToolDocWrite,
			Description: "Create a new document with the given content",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file_name": fileName,
					"content":   map[string]interface{}{"type": "string"},
				},
				"required": []string{"file_name", "content"},
			},
		},
		{
			Name:        config.ToolDocEdit,
			Description: "Edit an existing document: overwrite, append or insert a line",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file_name": fileName,
					"content":   map[string]interface{}{"type": "string"},
					"mode": map[string]interface{}{
						"type": "string",
						"enum": []string{"overwrite", "append"},
					},
					"insert_at": map[string]interface{}{"type": "integer"},
				},
				"required": []string{"file_name", "content"},
			},
		},
		{
			Name:        config.ToolDocRead,
			Description: "Read a document from the directory",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file_name": fileName,
				},
				"required": []string{"file_name"},
			},
		},
	}
}

// Argument helpers tolerant of JSON decoding types.

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func intArg(args map[string]interface{}, key string) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func stringSliceArg(args map[string]interface{}, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
