package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mdscope/mdscope/internal/contract"
	"github.com/mdscope/mdscope/internal/guidance"
)

// TemplatesTool handles the get_query_templates MCP tool.
type TemplatesTool struct {
	registry *contract.Registry
	engine   *guidance.Engine
}

// NewTemplatesTool creates a TemplatesTool.
func NewTemplatesTool(registry *contract.Registry, engine *guidance.Engine) *TemplatesTool {
	return &TemplatesTool{registry: registry, engine: engine}
}

// Definition returns the MCP tool definition for get_query_templates.
func (t *TemplatesTool) Definition() mcp.Tool {
	return definitionFor(t.registry, "get_query_templates")
}

// Handle processes the get_query_templates tool call.
func (t *TemplatesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if rej := validate(t.registry, "get_query_templates", req); rej != nil {
		return rej, nil
	}

	category := req.GetString("category", "")
	complexity := guidance.Complexity(req.GetString("complexity", ""))

	templates := t.engine.Templates(category, complexity)
	return jsonResult(map[string]any{
		"templates": templates,
		"count":     len(templates),
	}), nil
}
