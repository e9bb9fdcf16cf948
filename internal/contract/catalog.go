package contract

// DefaultCatalog returns the full tool catalog. This is the single
// hand-authored description of the mdscope tool surface; the registry, the
// documentation provider, and the MCP server definitions are all derived
// from it.
func DefaultCatalog() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "query_markdown",
			Category:    CategoryQuery,
			Description: "Run a read-only SQL query against the indexed note collection.",
			Parameters: []ParameterSpec{
				{
					Name:        "sql",
					Type:        TypeString,
					Description: "SELECT statement to execute (tables: files, tags, frontmatter, links, content_fts)",
					Required:    true,
				},
				{
					Name:          "format",
					Type:          TypeEnum,
					Description:   "Result rendering format",
					AllowedValues: []string{"json", "table", "csv"},
					Default:       "json",
				},
				{
					Name:        "max_rows",
					Type:        TypeInteger,
					Description: "Row cap applied to the result set",
					Default:     100,
				},
			},
			ResponseType: ResponseJSON,
		},
		{
			Name:        "get_schema",
			Category:    CategoryDiagnostics,
			Description: "Describe the index schema: tables, columns, and full-text search syntax.",
			Parameters: []ParameterSpec{
				{
					Name:        "table",
					Type:        TypeString,
					Description: "Limit the description to one table",
				},
			},
			ResponseType: ResponseJSON,
		},
		{
			Name:        "index_notes",
			Category:    CategoryIndexing,
			Description: "Scan a directory of markdown notes and refresh the index.",
			Parameters: []ParameterSpec{
				{
					Name:        "path",
					Type:        TypeString,
					Description: "Directory to scan for .md files",
					Required:    true,
				},
				{
					Name:        "rescan",
					Type:        TypeBoolean,
					Description: "Drop and rebuild all rows for the directory",
					Default:     false,
				},
			},
			ResponseType: ResponseJSON,
		},
		{
			Name:        "get_query_templates",
			Category:    CategoryAnalysis,
			Description: "List reusable query templates, optionally filtered by category and complexity.",
			Parameters: []ParameterSpec{
				{
					Name:        "category",
					Type:        TypeString,
					Description: "Template category filter (e.g. tag-analysis, content, links)",
				},
				{
					Name:          "complexity",
					Type:          TypeEnum,
					Description:   "Complexity tier filter",
					AllowedValues: []string{"basic", "intermediate", "advanced"},
				},
			},
			ResponseType: ResponseJSON,
		},
		{
			Name:        "get_optimization_suggestions",
			Category:    CategoryAnalysis,
			Description: "Analyze a query for common anti-patterns and suggest rewrites.",
			Parameters: []ParameterSpec{
				{
					Name:        "query",
					Type:        TypeString,
					Description: "The literal query text to analyze",
					Required:    true,
				},
			},
			ResponseType: ResponseJSON,
		},
		{
			Name:        "get_query_guidance",
			Category:    CategoryAnalysis,
			Description: "Get suggested templates, optimization tips, and syntax reference for an analysis intent.",
			Parameters: []ParameterSpec{
				{
					Name:        "analysis_type",
					Type:        TypeString,
					Description: "What you want to analyze (e.g. tag-analysis, links, recent activity)",
					Required:    true,
				},
				{
					Name:        "content_description",
					Type:        TypeString,
					Description: "Optional description of the corpus to tailor examples",
				},
			},
			ResponseType: ResponseJSON,
		},
		{
			Name:        "get_tool_documentation",
			Category:    CategoryDiagnostics,
			Description: "Self-describing documentation for one tool or the whole catalog.",
			Parameters: []ParameterSpec{
				{
					Name:        "tool_name",
					Type:        TypeString,
					Description: "Tool to describe; omit for the catalog overview",
				},
			},
			ResponseType: ResponseJSON,
		},
	}
}
