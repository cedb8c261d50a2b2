package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectSchema(t *testing.T) {
	s := NewObjectSchema(map[string]SchemaField{
		"goalId":      NewIntegerField("Career goal identifier").WithMin(1),
		"preferOnline": NewBooleanField("Prefer online delivery").WithDefault(false),
	}, []string{"goalId"})

	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"goalId"}, s.Required)
	require.Contains(t, s.Properties, "goalId")
	require.NotNil(t, s.Properties["goalId"].Minimum)
	assert.Equal(t, 1.0, *s.Properties["goalId"].Minimum)
}

func TestSchemaField_JSONShape(t *testing.T) {
	s := NewObjectSchema(map[string]SchemaField{
		"award": NewStringField("Award level").WithEnum("AA", "AS", "BS"),
	}, nil)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	props := decoded["properties"].(map[string]any)
	award := props["award"].(map[string]any)
	assert.Equal(t, "string", award["type"])
	assert.Len(t, award["enum"], 3)

	// Optional constraints must be omitted when unset.
	assert.NotContains(t, award, "minimum")
}
