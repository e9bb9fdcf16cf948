package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mdscope/mdscope/internal/contract"
	"github.com/mdscope/mdscope/internal/guidance"
)

// OptimizeTool handles the get_optimization_suggestions MCP tool.
type OptimizeTool struct {
	registry *contract.Registry
	engine   *guidance.Engine
}

// NewOptimizeTool creates an OptimizeTool.
func NewOptimizeTool(registry *contract.Registry, engine *guidance.Engine) *OptimizeTool {
	return &OptimizeTool{registry: registry, engine: engine}
}

// Definition returns the MCP tool definition for get_optimization_suggestions.
func (t *OptimizeTool) Definition() mcp.Tool {
	return definitionFor(t.registry, "get_optimization_suggestions")
}

// Handle processes the get_optimization_suggestions tool call.
func (t *OptimizeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if rej := validate(t.registry, "get_optimization_suggestions", req); rej != nil {
		return rej, nil
	}

	suggestions := t.engine.OptimizationSuggestions(req.GetString("query", ""))
	if suggestions == nil {
		suggestions = []guidance.QueryOptimization{}
	}
	return jsonResult(map[string]any{
		"suggestions": suggestions,
		"count":       len(suggestions),
	}), nil
}
