package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mdscope/mdscope/internal/contract"
	"github.com/mdscope/mdscope/internal/guidance"
)

// SchemaTool handles the get_schema MCP tool. It answers from the guidance
// engine's static syntax reference — it never touches the database, so it
// works even when the index is unavailable.
type SchemaTool struct {
	registry *contract.Registry
	engine   *guidance.Engine
}

// NewSchemaTool creates a SchemaTool.
func NewSchemaTool(registry *contract.Registry, engine *guidance.Engine) *SchemaTool {
	return &SchemaTool{registry: registry, engine: engine}
}

// Definition returns the MCP tool definition for get_schema.
func (t *SchemaTool) Definition() mcp.Tool {
	return definitionFor(t.registry, "get_schema")
}

// Handle processes the get_schema tool call.
func (t *SchemaTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if rej := validate(t.registry, "get_schema", req); rej != nil {
		return rej, nil
	}

	ref := t.engine.SyntaxReference()
	table := req.GetString("table", "")
	if table == "" {
		return jsonResult(ref), nil
	}

	entry, ok := ref.Tables[table]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown table %q — known tables: files, tags, frontmatter, links, content_fts", table)), nil
	}
	return jsonResult(map[string]any{"table": table, "description": entry.Description, "key_columns": entry.KeyColumns}), nil
}
