// Package contract defines the wire shapes exchanged with the
// completion service. These are the source of truth for request and
// response bodies; the transport client marshals them as-is.
package contract

import "encoding/json"

// Tool invocation kinds carried in ToolDecl.Type. User-defined tools
// leave Type empty and are identified by name and schema alone.
const (
	ToolTypeSearch        = "tool_search_tool_regex_20251119"
	ToolTypeCodeExecution = "code_execution_20250825"
)

// Content block discriminators.
const (
	BlockTypeText          = "text"
	BlockTypeToolUse       = "tool_use"
	BlockTypeServerToolUse = "server_tool_use"
)

// ToolDecl is a single tool declaration offered to the model.
// Declarations are assembled once at startup and never mutated.
type ToolDecl struct {
	Type           string           `json:"type,omitempty"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	InputSchema    map[string]any   `json:"input_schema,omitempty"`
	DeferLoading   bool             `json:"defer_loading,omitempty"`
	AllowedCallers []string         `json:"allowed_callers,omitempty"`
	InputExamples  []map[string]any `json:"input_examples,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Model     string     `json:"model"`
	MaxTokens int        `json:"max_tokens"`
	Tools     []ToolDecl `json:"tools,omitempty"`
	Messages  []Message  `json:"messages"`
}

// ContentBlock is the tagged union of response block shapes,
// discriminated on Type. Text carries the payload for text blocks;
// Name and Input carry it for both tool-use variants.
type ContentBlock struct {
	Type  string          `json:"type"`
	Text  string          `json:"text,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`
}

// Code extracts the "code" field from a server-side tool invocation's
// input. The second return reports presence; absence is not an error.
func (b ContentBlock) Code() (string, bool) {
	if b.Type != BlockTypeServerToolUse || len(b.Input) == 0 {
		return "", false
	}

	var input struct {
		Code *string `json:"code"`
	}
	if err := json.Unmarshal(b.Input, &input); err != nil || input.Code == nil {
		return "", false
	}
	return *input.Code, true
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type CompletionResponse struct {
	ID      string         `json:"id,omitempty"`
	Model   string         `json:"model,omitempty"`
	Content []ContentBlock `json:"content"`
	Usage   Usage          `json:"usage"`
}
