package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_FencedJSONBlock(t *testing.T) {
	response := "Here are my recommendations:\n\n```json\n" +
		`{"recommendations": [{"score": 7, "program": {"id": 101}}]}` +
		"\n```\n\nLet me know if you need more detail."

	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Contains(t, result, `"recommendations"`)
	assert.Contains(t, result, `"score": 7`)
}

func TestExtractJSON_UntaggedFence(t *testing.T) {
	response := "```\n{\"key\": \"value\", \"number\": 42}\n```"

	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, `{"key": "value", "number": 42}`, result)
}

func TestExtractJSON_SkipsOtherLanguageFences(t *testing.T) {
	response := "```python\nprint('hi')\n```\n\n```json\n{\"result\": true}\n```"

	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, `{"result": true}`, result)
}

func TestExtractJSON_RawObjectInProse(t *testing.T) {
	response := `Based on the catalog, {"recommendations": []} is my answer.`

	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, `{"recommendations": []}`, result)
}

func TestExtractJSON_RawArray(t *testing.T) {
	response := `[{"item": 1}, {"item": 2}]`

	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, response, result)
}

func TestExtractJSON_NestedBracesInStrings(t *testing.T) {
	response := `{"why_this": "braces {inside} a \"string\" stay put", "score": 4}`

	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, response, result)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON("I could not find any suitable programs, sorry.")
	require.Error(t, err)
}

func TestExtractJSON_UnbalancedBrackets(t *testing.T) {
	_, err := ExtractJSON(`{"recommendations": [`)
	require.Error(t, err)
}

func TestExtractJSONAs(t *testing.T) {
	type answer struct {
		Score int `json:"score"`
	}

	got, err := ExtractJSONAs[answer]("the result is\n```json\n{\"score\": 9}\n```")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Score)
}

func TestExtractJSONAs_TypeMismatch(t *testing.T) {
	type answer struct {
		Score int `json:"score"`
	}

	_, err := ExtractJSONAs[answer](`{"score": "not a number"}`)
	require.Error(t, err)
}
