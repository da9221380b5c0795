package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

// routeFunctionName is the forced function used to constrain routing output
// to one of the offered options.
const routeFunctionName = "route"

// OpenAIOracle implements ReasoningOracle on the OpenAI chat completions API.
type OpenAIOracle struct {
	client *openai.Client
	model  string
}

// NewOpenAIOracle creates an oracle using the given API key. An empty model
// selects the default.
func NewOpenAIOracle(apiKey, model string) *OpenAIOracle {
	if model == "" {
		model = defaultModel
	}
	return &OpenAIOracle{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

var _ ReasoningOracle = (*OpenAIOracle)(nil)

// Route forces a function call whose single argument is constrained to the
// offered options, so the model cannot answer outside the set.
func (o *OpenAIOracle) Route(ctx context.Context, system string, transcript []Message, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("route requires at least one option")
	}

	routeTool := openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: openai.FunctionDefinition{
			Name:        routeFunctionName,
			Description: "Select who acts next",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"next": map[string]interface{}{
						"type": "string",
						"enum": options,
					},
				},
				"required": []string{"next"},
			},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: o.chatMessages(system, transcript),
		Tools:    []openai.Tool{routeTool},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: routeFunctionName},
		},
	})
	if err != nil {
		return "", fmt.Errorf("route completion: %w", err)
	}
	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		return "", fmt.Errorf("route completion returned no tool call")
	}

	var decision struct {
		Next string `json:"next"`
	}
	raw := resp.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(raw), &decision); err != nil {
		return "", fmt.Errorf("decoding route decision %q: %w", raw, err)
	}
	for _, opt := range options {
		if decision.Next == opt {
			return decision.Next, nil
		}
	}
	return "", fmt.Errorf("route decision %q is not an offered option", decision.Next)
}

// Act runs one agent turn. The model may answer in text or call exactly one
// of the offered tools.
func (o *OpenAIOracle) Act(ctx context.Context, system string, transcript []Message, tools []ToolSpec) (AgentAction, error) {
	req := openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: o.chatMessages(system, transcript),
	}
	for _, spec := range tools {
		req.Tools = append(req.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionDefinition{
				Name:        spec.Name,
				Description: spec.Description,
				Parameters:  spec.Parameters,
			},
		})
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return AgentAction{}, fmt.Errorf("act completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return AgentAction{}, fmt.Errorf("act completion returned no choices")
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		call := msg.ToolCalls[0]
		args := map[string]interface{}{}
		if call.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				return AgentAction{}, fmt.Errorf("decoding tool arguments for %s: %w", call.Function.Name, err)
			}
		}
		return AgentAction{Call: &ToolCall{Name: call.Function.Name, Args: args}}, nil
	}
	return AgentAction{Text: msg.Content}, nil
}

// chatMessages converts a transcript to OpenAI chat messages. Tool messages
// are replayed as user messages since transcripts do not track tool call ids.
func (o *OpenAIOracle) chatMessages(system string, transcript []Message) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(transcript)+1)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, m := range transcript {
		role := m.Role
		if role == RoleTool {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Name:    m.Name,
			Content: m.Content,
		})
	}
	return messages
}
