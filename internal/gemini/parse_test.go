package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateEnvelope(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{
						map[string]any{"text": text},
					},
				},
			},
		},
	}
}

func TestParseResponseCandidatePath(t *testing.T) {
	got := ParseResponse(candidateEnvelope(`{"projects": []}`))

	parsed, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{}, parsed["projects"])
}

func TestParseResponseStripsCodeFence(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"json fence", "```json\n{\"projects\": []}\n```"},
		{"plain fence", "```\n{\"projects\": []}\n```"},
		{"fence with padding", "  ```json \n {\"projects\": []} \n ``` "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseResponse(candidateEnvelope(tt.text))
			parsed, ok := got.(map[string]any)
			require.True(t, ok, "expected decoded JSON, got %T", got)
			assert.Equal(t, []any{}, parsed["projects"])
		})
	}
}

func TestParseResponseFlatContent(t *testing.T) {
	got := ParseResponse(map[string]any{"content": `{"projects": []}`})
	parsed, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, parsed, "projects")
}

func TestParseResponseFlatData(t *testing.T) {
	got := ParseResponse(map[string]any{"data": `{"projects": []}`})
	parsed, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, parsed, "projects")
}

func TestParseResponsePriorityOrder(t *testing.T) {
	envelope := candidateEnvelope(`{"from": "candidates"}`)
	envelope["content"] = `{"from": "content"}`
	envelope["data"] = `{"from": "data"}`

	parsed, ok := ParseResponse(envelope).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "candidates", parsed["from"])
}

func TestParseResponseUnparseableTextReturnedVerbatim(t *testing.T) {
	got := ParseResponse(candidateEnvelope("I could not produce JSON, sorry."))
	assert.Equal(t, "I could not produce JSON, sorry.", got)
}

func TestParseResponseNoTextAnywhere(t *testing.T) {
	tests := []struct {
		name     string
		envelope any
	}{
		{"nil envelope", nil},
		{"empty map", map[string]any{}},
		{"empty candidates", map[string]any{"candidates": []any{}}},
		{"candidate without parts", map[string]any{
			"candidates": []any{map[string]any{"content": map[string]any{}}},
		}},
		{"empty text", candidateEnvelope("")},
		{"fence only", candidateEnvelope("```json\n```")},
		{"non-map envelope", "just a string"},
		{"non-string content", map[string]any{"content": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseResponse(tt.envelope))
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
	assert.Equal(t, "", stripCodeFence("   "))
}
