package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPlainObject(t *testing.T) {
	jsonStr, err := ExtractJSON(`{"suggested_occupancies": [], "overall_reasoning": "none"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"suggested_occupancies": [], "overall_reasoning": "none"}`, jsonStr)
}

func TestExtractJSONInsideMarkdownFence(t *testing.T) {
	response := "Here is the result:\n```json\n{\"overall_reasoning\": \"done\"}\n```\nHope that helps."
	jsonStr, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"overall_reasoning": "done"}`, jsonStr)
}

func TestExtractJSONNestedBraces(t *testing.T) {
	response := `prefix {"a": {"b": "}"}, "c": [1, 2]} suffix`
	jsonStr, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": {"b": "}"}, "c": [1, 2]}`, jsonStr)
}

func TestExtractJSONNoJSON(t *testing.T) {
	_, err := ExtractJSON("sorry, I cannot answer that")
	assert.Error(t, err)
}

func TestParseJSONResponse(t *testing.T) {
	type payload struct {
		OverallReasoning string `json:"overall_reasoning"`
	}

	parsed, err := ParseJSONResponse[payload]("```json\n{\"overall_reasoning\": \"matched on welding\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "matched on welding", parsed.OverallReasoning)
}

func TestParseJSONResponseTypeMismatch(t *testing.T) {
	type payload struct {
		Count int `json:"count"`
	}

	_, err := ParseJSONResponse[payload](`{"count": "not-a-number"}`)
	assert.Error(t, err)
}
