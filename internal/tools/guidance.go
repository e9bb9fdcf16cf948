package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mdscope/mdscope/internal/contract"
	"github.com/mdscope/mdscope/internal/guidance"
)

// GuidanceTool handles the get_query_guidance MCP tool.
type GuidanceTool struct {
	registry *contract.Registry
	engine   *guidance.Engine
}

// NewGuidanceTool creates a GuidanceTool.
func NewGuidanceTool(registry *contract.Registry, engine *guidance.Engine) *GuidanceTool {
	return &GuidanceTool{registry: registry, engine: engine}
}

// Definition returns the MCP tool definition for get_query_guidance.
func (t *GuidanceTool) Definition() mcp.Tool {
	return definitionFor(t.registry, "get_query_guidance")
}

// Handle processes the get_query_guidance tool call.
func (t *GuidanceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if rej := validate(t.registry, "get_query_guidance", req); rej != nil {
		return rej, nil
	}

	g := t.engine.Guidance(
		req.GetString("analysis_type", ""),
		req.GetString("content_description", ""),
	)
	return jsonResult(g), nil
}
