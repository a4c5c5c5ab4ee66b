package service

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// toolResponse is the standardized payload every tool returns.
type toolResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// createToolResult creates a consistent MCP tool result.
func createToolResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(toolResponse{Success: true, Data: data}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: string(jsonData),
			},
		},
	}, nil
}

// createMessageResult creates a success result carrying only a message.
func createMessageResult(format string, args ...any) (*mcp.CallToolResult, error) {
	return createToolResult(map[string]string{"message": fmt.Sprintf(format, args...)})
}

// createErrorResult reports a failed tool call as a result payload rather than
// a protocol error, so callers always receive structured output.
func createErrorResult(err error) (*mcp.CallToolResult, error) {
	jsonData, marshalErr := json.MarshalIndent(toolResponse{Success: false, Error: err.Error()}, "", "  ")
	if marshalErr != nil {
		return nil, fmt.Errorf("failed to marshal error result: %w", marshalErr)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: string(jsonData),
			},
		},
		IsError: true,
	}, nil
}
