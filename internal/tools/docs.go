package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mdscope/mdscope/internal/contract"
)

// DocsTool handles the get_tool_documentation MCP tool. It delegates to the
// contract documentation provider, which always answers — unknown tools come
// back as error objects, never protocol faults.
type DocsTool struct {
	registry *contract.Registry
	provider contract.DocumentationProvider
}

// NewDocsTool creates a DocsTool.
func NewDocsTool(registry *contract.Registry, provider contract.DocumentationProvider) *DocsTool {
	return &DocsTool{registry: registry, provider: provider}
}

// Definition returns the MCP tool definition for get_tool_documentation.
func (t *DocsTool) Definition() mcp.Tool {
	return definitionFor(t.registry, "get_tool_documentation")
}

// Handle processes the get_tool_documentation tool call.
func (t *DocsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if rej := validate(t.registry, "get_tool_documentation", req); rej != nil {
		return rej, nil
	}
	return jsonResult(t.provider.ToolDocumentation(req.GetString("tool_name", ""))), nil
}
