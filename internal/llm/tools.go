package llm

import (
	"encoding/json"
	"fmt"

	"github.com/gabrielc1317/mdc-pathfinder/internal/schema"
)

// ToolDef defines a tool the model may call during a completion.
type ToolDef struct {
	// Name is the unique identifier for this tool
	Name string `json:"name"`

	// Description explains what the tool does and when to use it
	Description string `json:"description"`

	// Parameters defines the JSON schema for the tool's argument record
	Parameters schema.JSONSchema `json:"parameters"`
}

// NewToolDef creates a tool definition with the given name, description, and parameters.
func NewToolDef(name, description string, params schema.JSONSchema) ToolDef {
	if params.Type == "" {
		params.Type = "object"
	}
	return ToolDef{
		Name:        name,
		Description: description,
		Parameters:  params,
	}
}

// Validate checks if the tool definition is valid.
func (t ToolDef) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if t.Description == "" {
		return fmt.Errorf("tool description is required")
	}
	if t.Parameters.Type != "" && t.Parameters.Type != "object" {
		return fmt.Errorf("tool parameters must be an object schema, got %s", t.Parameters.Type)
	}
	return nil
}

// ToolCall represents a tool invocation requested by the model. Arguments is
// the JSON-encoded argument record exactly as the model produced it.
type ToolCall struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ParseArguments deserializes the tool call arguments into the provided type.
func (t ToolCall) ParseArguments(v any) error {
	if t.Arguments == "" {
		return fmt.Errorf("tool call arguments are empty")
	}
	if err := json.Unmarshal([]byte(t.Arguments), v); err != nil {
		return fmt.Errorf("failed to parse tool call arguments: %w", err)
	}
	return nil
}

// ToolResult is the outcome of executing one tool call, fed back to the model
// as the next turn's input.
type ToolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content"`
	IsError    bool   `json:"is_error,omitempty"`
}

// NewToolResult creates a successful tool result.
func NewToolResult(toolCallID, content string) ToolResult {
	return ToolResult{ToolCallID: toolCallID, Content: content}
}

// NewToolError creates an error tool result.
func NewToolError(toolCallID, errorMessage string) ToolResult {
	return ToolResult{ToolCallID: toolCallID, Content: errorMessage, IsError: true}
}
