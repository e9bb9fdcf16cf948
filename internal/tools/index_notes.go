package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mdscope/mdscope/internal/contract"
	"github.com/mdscope/mdscope/internal/index"
)

// IndexTool handles the index_notes MCP tool.
type IndexTool struct {
	registry *contract.Registry
	store    *index.Store
}

// NewIndexTool creates an IndexTool.
func NewIndexTool(registry *contract.Registry, store *index.Store) *IndexTool {
	return &IndexTool{registry: registry, store: store}
}

// Definition returns the MCP tool definition for index_notes.
func (t *IndexTool) Definition() mcp.Tool {
	return definitionFor(t.registry, "index_notes")
}

// Handle processes the index_notes tool call.
func (t *IndexTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if rej := validate(t.registry, "index_notes", req); rej != nil {
		return rej, nil
	}

	path := req.GetString("path", "")
	rescan := boolArg(req, "rescan", false)

	if rescan {
		if err := t.store.Reset(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("resetting index: %v", err)), nil
		}
	}

	stats, err := t.store.IndexDir(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("indexing %s: %v", path, err)), nil
	}
	return jsonResult(stats), nil
}
