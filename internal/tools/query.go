package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mdscope/mdscope/internal/contract"
	"github.com/mdscope/mdscope/internal/index"
)

// QueryTool handles the query_markdown MCP tool: validated, read-only SQL
// over the note index.
type QueryTool struct {
	registry *contract.Registry
	store    *index.Store
}

// NewQueryTool creates a QueryTool.
func NewQueryTool(registry *contract.Registry, store *index.Store) *QueryTool {
	return &QueryTool{registry: registry, store: store}
}

// Definition returns the MCP tool definition for query_markdown.
func (t *QueryTool) Definition() mcp.Tool {
	return definitionFor(t.registry, "query_markdown")
}

// Handle processes the query_markdown tool call.
func (t *QueryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if rej := validate(t.registry, "query_markdown", req); rej != nil {
		return rej, nil
	}

	sql := req.GetString("sql", "")
	format := req.GetString("format", "json")
	maxRows := intArg(req, "max_rows", 0)

	res, err := t.store.Query(ctx, sql, maxRows)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}

	out, err := index.FormatResult(res, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("formatting result: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}
