package contract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionResponseDecode(t *testing.T) {
	raw := `{
		"id": "msg_01",
		"model": "claude-sonnet-4-5-20250929",
		"content": [
			{"type": "text", "text": "Hello"},
			{"type": "tool_use", "name": "search_kb", "input": {"query": "streaming", "limit": 5}},
			{"type": "server_tool_use", "name": "code_execution", "input": {"code": "print(1)"}}
		],
		"usage": {"input_tokens": 1000, "output_tokens": 500}
	}`

	var resp CompletionResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	require.Len(t, resp.Content, 3)

	assert.Equal(t, BlockTypeText, resp.Content[0].Type)
	assert.Equal(t, "Hello", resp.Content[0].Text)

	assert.Equal(t, BlockTypeToolUse, resp.Content[1].Type)
	assert.Equal(t, "search_kb", resp.Content[1].Name)
	assert.JSONEq(t, `{"query": "streaming", "limit": 5}`, string(resp.Content[1].Input))

	code, ok := resp.Content[2].Code()
	require.True(t, ok)
	assert.Equal(t, "print(1)", code)

	assert.Equal(t, 1000, resp.Usage.InputTokens)
	assert.Equal(t, 500, resp.Usage.OutputTokens)
}

func TestContentBlockCode_AbsentOrWrongType(t *testing.T) {
	noCode := ContentBlock{
		Type:  BlockTypeServerToolUse,
		Name:  "code_execution",
		Input: json.RawMessage(`{"command": "ls"}`),
	}
	_, ok := noCode.Code()
	assert.False(t, ok)

	wrongType := ContentBlock{
		Type:  BlockTypeToolUse,
		Name:  "search_kb",
		Input: json.RawMessage(`{"code": "print(1)"}`),
	}
	_, ok = wrongType.Code()
	assert.False(t, ok)

	empty := ContentBlock{Type: BlockTypeServerToolUse}
	_, ok = empty.Code()
	assert.False(t, ok)
}

func TestCompletionRequestEncode_CarriesBetaToolFields(t *testing.T) {
	req := CompletionRequest{
		Model:     "claude-sonnet-4-5-20250929",
		MaxTokens: 4096,
		Tools: []ToolDecl{
			{Type: ToolTypeSearch, Name: "tool_search"},
			{
				Name:           "search_kb",
				InputSchema:    map[string]any{"type": "object"},
				DeferLoading:   true,
				AllowedCallers: []string{ToolTypeCodeExecution},
			},
		},
		Messages: []Message{{Role: "user", Content: "hi"}},
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	encoded := string(data)
	assert.Contains(t, encoded, `"max_tokens":4096`)
	assert.Contains(t, encoded, `"type":"tool_search_tool_regex_20251119"`)
	assert.Contains(t, encoded, `"defer_loading":true`)
	assert.Contains(t, encoded, `"allowed_callers":["code_execution_20250825"]`)
	// Built-in tools carry no schema; the field must stay absent.
	assert.NotContains(t, encoded, `"input_schema":null`)
}
