// Package toolset holds the fixed tool catalog forwarded to the
// completion service. Nothing here is executed locally: the built-in
// entries are resolved server-side, and the custom entries are stubs
// the service may call through programmatic tool calling.
package toolset

import "github.com/harunnryd/kawasemi/internal/model/contract"

// Default returns the tool declarations sent with every request.
func Default() []contract.ToolDecl {
	return []contract.ToolDecl{
		// Tool Search Tool - discovers tools on-demand
		{
			Type: contract.ToolTypeSearch,
			Name: "tool_search",
		},
		// Code Execution - enables programmatic tool calling
		{
			Type: contract.ToolTypeCodeExecution,
			Name: "code_execution",
		},
		{
			Name:        "search_kb",
			Description: "Search the knowledge base for relevant information",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{"type": "string", "description": "Search query"},
					"limit": map[string]any{"type": "integer", "default": 10},
				},
				"required": []string{"query"},
			},
			DeferLoading:   true,
			AllowedCallers: []string{contract.ToolTypeCodeExecution},
			InputExamples: []map[string]any{
				{"query": "react streaming hooks", "limit": 5},
				{"query": "webllm integration"},
			},
		},
		{
			Name:        "read_file",
			Description: "Read a file from the project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"path": map[string]any{"type": "string", "description": "File path relative to project root"},
				},
				"required": []string{"path"},
			},
			DeferLoading:   true,
			AllowedCallers: []string{contract.ToolTypeCodeExecution},
		},
	}
}
