// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the contract registry, the guidance
// engine, and the note index exactly once, and injects them into the tool
// handlers. No business logic lives here — only wiring.
package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mdscope/mdscope/internal/contract"
	"github.com/mdscope/mdscope/internal/guidance"
	"github.com/mdscope/mdscope/internal/index"
	"github.com/mdscope/mdscope/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools registered.
// The static catalogs are constructed here, before any request is served,
// and are read-only afterwards.
//
// The returned cleanup function closes the index's database connection and
// must be called on shutdown (typically via defer). It is always non-nil and
// safe to call even if the index failed to open.
func New(indexCfg index.Config) (*server.MCPServer, func(), error) {
	registry := contract.NewRegistry(contract.DefaultCatalog())
	engine := guidance.New()
	docs := contract.NewDocProvider(registry)

	s := server.NewMCPServer(
		"mdscope",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Guidance and documentation tools ---
	//
	// These answer from static catalogs and never touch the disk, so they are
	// registered unconditionally.

	schemaTool := tools.NewSchemaTool(registry, engine)
	s.AddTool(schemaTool.Definition(), schemaTool.Handle)

	templatesTool := tools.NewTemplatesTool(registry, engine)
	s.AddTool(templatesTool.Definition(), templatesTool.Handle)

	optimizeTool := tools.NewOptimizeTool(registry, engine)
	s.AddTool(optimizeTool.Definition(), optimizeTool.Handle)

	guidanceTool := tools.NewGuidanceTool(registry, engine)
	s.AddTool(guidanceTool.Definition(), guidanceTool.Handle)

	docsTool := tools.NewDocsTool(registry, docs)
	s.AddTool(docsTool.Definition(), docsTool.Handle)

	// --- Index-backed tools ---
	//
	// The index is an independent subsystem: if it fails to open, guidance
	// and documentation keep working. We log a warning and skip query/index
	// tool registration rather than refusing to start.

	cleanup := noop
	store, err := index.New(indexCfg)
	if err != nil {
		log.Printf("WARNING: note index disabled: %v", err)
	} else {
		cleanup = func() {
			if err := store.Close(); err != nil {
				log.Printf("WARNING: index close: %v", err)
			}
		}

		queryTool := tools.NewQueryTool(registry, store)
		s.AddTool(queryTool.Definition(), queryTool.Handle)

		indexTool := tools.NewIndexTool(registry, store)
		s.AddTool(indexTool.Definition(), indexTool.Handle)
	}

	return s, cleanup, nil
}

// noop is the default cleanup when the index is disabled.
func noop() {}

// serverInstructions tells the AI client how to use mdscope effectively.
func serverInstructions() string {
	return `You have access to mdscope, a server that answers SQL queries over an
indexed collection of markdown notes.

## Workflow

1. Call index_notes with the notes directory before querying (repeat after
   large edits; pass rescan=true to rebuild from scratch).
2. Call get_schema to see the queryable tables: files, tags, frontmatter,
   links, and the content_fts full-text table.
3. Query with query_markdown. Only read-only SELECT statements are accepted.

## Writing good queries

- Never use LIKE with leading wildcards on note content. Join content_fts and
  use MATCH instead — it is indexed.
- Always end exploratory queries with LIMIT.
- Use IN (...) instead of chains of OR equality comparisons.

If you are unsure what to query, call get_query_guidance with a short
description of the analysis you want (e.g. "tag-analysis", "links",
"recent activity") — it returns ready-to-run example queries. Call
get_optimization_suggestions with a draft query to check it for common
anti-patterns before running it. get_tool_documentation describes every
tool and its parameters.`
}
