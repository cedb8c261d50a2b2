package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielc1317/mdc-pathfinder/internal/schema"
)

func TestNewToolDef_DefaultsToObject(t *testing.T) {
	def := NewToolDef("searchPrograms", "Search programs for a goal", schema.JSONSchema{})
	assert.Equal(t, "object", def.Parameters.Type)
	require.NoError(t, def.Validate())
}

func TestToolDef_Validate(t *testing.T) {
	params := schema.NewObjectSchema(map[string]schema.SchemaField{
		"goalId": schema.NewIntegerField("Career goal id"),
	}, []string{"goalId"})

	tests := []struct {
		name    string
		def     ToolDef
		wantErr bool
	}{
		{"valid", NewToolDef("estimateCost", "Estimate cost to completion", params), false},
		{"missing name", ToolDef{Description: "x", Parameters: params}, true},
		{"missing description", ToolDef{Name: "x", Parameters: params}, true},
		{"non-object parameters", ToolDef{Name: "x", Description: "y", Parameters: schema.JSONSchema{Type: "array"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToolCall_ParseArguments(t *testing.T) {
	call := ToolCall{
		ID:        "call_1",
		Type:      "function",
		Name:      "getProgramDetails",
		Arguments: `{"program_id": 101}`,
	}

	var args struct {
		ProgramID int `json:"program_id"`
	}
	require.NoError(t, call.ParseArguments(&args))
	assert.Equal(t, 101, args.ProgramID)
}

func TestToolCall_ParseArguments_Empty(t *testing.T) {
	call := ToolCall{ID: "call_1", Name: "estimateCost"}

	var args map[string]any
	assert.Error(t, call.ParseArguments(&args))
}

func TestToolResults(t *testing.T) {
	ok := NewToolResult("call_1", `{"candidates": []}`)
	assert.False(t, ok.IsError)
	assert.Equal(t, "call_1", ok.ToolCallID)

	fail := NewToolError("call_2", "unknown tool")
	assert.True(t, fail.IsError)
	assert.Equal(t, "unknown tool", fail.Content)
}
