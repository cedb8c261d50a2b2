package providers

import (
	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"

	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
)

// toLangchainMessages converts advisor messages to langchaingo MessageContent.
func toLangchainMessages(messages []llm.Message) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(messages))

	for _, msg := range messages {
		var role llms.ChatMessageType
		switch msg.Role {
		case llm.RoleSystem:
			role = llms.ChatMessageTypeSystem
		case llm.RoleAssistant:
			role = llms.ChatMessageTypeAI
		case llm.RoleTool:
			role = llms.ChatMessageTypeTool
		default:
			role = llms.ChatMessageTypeHuman
		}

		var parts []llms.ContentPart
		switch msg.Role {
		case llm.RoleTool:
			parts = []llms.ContentPart{llms.ToolCallResponse{
				ToolCallID: msg.ToolCallID,
				Content:    msg.Content,
			}}
		case llm.RoleAssistant:
			if msg.Content != "" {
				parts = append(parts, llms.TextPart(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				parts = append(parts, llms.ToolCall{
					ID:   tc.ID,
					Type: tc.Type,
					FunctionCall: &llms.FunctionCall{
						Name:      tc.Name,
						Arguments: tc.Arguments,
					},
				})
			}
		default:
			parts = []llms.ContentPart{llms.TextPart(msg.Content)}
		}

		result = append(result, llms.MessageContent{Role: role, Parts: parts})
	}

	return result
}

// fromLangchainResponse converts a langchaingo response to an advisor response.
func fromLangchainResponse(resp *llms.ContentResponse, model string) *llm.CompletionResponse {
	if resp == nil || len(resp.Choices) == 0 {
		return &llm.CompletionResponse{
			ID:    uuid.New().String(),
			Model: model,
			Message: llm.Message{
				Role: llm.RoleAssistant,
			},
			FinishReason: llm.FinishReasonStop,
		}
	}

	choice := resp.Choices[0]

	var toolCalls []llm.ToolCall
	for _, tc := range choice.ToolCalls {
		var name, arguments string
		if tc.FunctionCall != nil {
			name = tc.FunctionCall.Name
			arguments = tc.FunctionCall.Arguments
		}
		toolCalls = append(toolCalls, llm.ToolCall{
			ID:        tc.ID,
			Type:      tc.Type,
			Name:      name,
			Arguments: arguments,
		})
	}

	finishReason := llm.FinishReasonStop
	switch choice.StopReason {
	case "length", "max_tokens":
		finishReason = llm.FinishReasonLength
	case "tool_calls", "function_call", "tool_use":
		finishReason = llm.FinishReasonToolCalls
	}
	if len(toolCalls) > 0 && finishReason == llm.FinishReasonStop {
		finishReason = llm.FinishReasonToolCalls
	}

	return &llm.CompletionResponse{
		ID:    uuid.New().String(),
		Model: model,
		Message: llm.Message{
			Role:      llm.RoleAssistant,
			Content:   choice.Content,
			ToolCalls: toolCalls,
		},
		FinishReason: finishReason,
	}
}

// buildCallOptions converts an advisor request to langchaingo call options.
func buildCallOptions(req llm.CompletionRequest) []llms.CallOption {
	callOpts := make([]llms.CallOption, 0)

	if req.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Model != "" {
		callOpts = append(callOpts, llms.WithModel(req.Model))
	}

	return callOpts
}

// buildCallOptionsWithTools adds tool definitions to the call options.
func buildCallOptionsWithTools(req llm.CompletionRequest, tools []llm.ToolDef) []llms.CallOption {
	callOpts := buildCallOptions(req)
	if len(tools) == 0 {
		return callOpts
	}

	lcTools := make([]llms.Tool, 0, len(tools))
	for _, tool := range tools {
		lcTools = append(lcTools, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}

	return append(callOpts, llms.WithTools(lcTools))
}
