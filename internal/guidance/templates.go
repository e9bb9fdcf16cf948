package guidance

// DefaultTemplates returns the built-in query template catalog. Order here is
// the order templates appear in filtered listings and guidance responses.
func DefaultTemplates() []QueryTemplate {
	return []QueryTemplate{
		{
			Name:        "Most used tags",
			Description: "Rank tags by how many notes carry them.",
			Category:    "tag-analysis",
			SQLTemplate: "SELECT tag, COUNT(*) AS note_count FROM tags GROUP BY tag ORDER BY note_count DESC LIMIT :limit",
			Parameters: []QueryParameter{
				{Name: "limit", Type: "integer", Description: "Number of tags to return", Default: 20},
			},
			ExampleUsage: "SELECT tag, COUNT(*) AS note_count FROM tags GROUP BY tag ORDER BY note_count DESC LIMIT 20",
			Complexity:   ComplexityBasic,
		},
		{
			Name:        "Notes for a tag",
			Description: "List the notes carrying a given tag, newest first.",
			Category:    "tag-analysis",
			SQLTemplate: "SELECT f.path, f.title, f.modified_date FROM files f JOIN tags t ON t.file_id = f.id WHERE t.tag = :tag ORDER BY f.modified_date DESC LIMIT :limit",
			Parameters: []QueryParameter{
				{Name: "tag", Type: "string", Description: "Tag to look up", Default: "project"},
				{Name: "limit", Type: "integer", Description: "Row cap", Default: 25},
			},
			ExampleUsage: "SELECT f.path, f.title FROM files f JOIN tags t ON t.file_id = f.id WHERE t.tag = 'project' LIMIT 25",
			Complexity:   ComplexityBasic,
		},
		{
			Name:        "Tag co-occurrence",
			Description: "Find pairs of tags that appear together on the same note.",
			Category:    "tag-analysis",
			SQLTemplate: "SELECT a.tag AS first_tag, b.tag AS second_tag, COUNT(*) AS together FROM tags a JOIN tags b ON a.file_id = b.file_id AND a.tag < b.tag GROUP BY a.tag, b.tag HAVING together >= :min_count ORDER BY together DESC LIMIT :limit",
			Parameters: []QueryParameter{
				{Name: "min_count", Type: "integer", Description: "Minimum co-occurrences to report", Default: 2},
				{Name: "limit", Type: "integer", Description: "Row cap", Default: 30},
			},
			ExampleUsage: "SELECT a.tag, b.tag, COUNT(*) FROM tags a JOIN tags b ON a.file_id = b.file_id AND a.tag < b.tag GROUP BY a.tag, b.tag LIMIT 30",
			Complexity:   ComplexityAdvanced,
		},
		{
			Name:        "Full-text search",
			Description: "Search note content with FTS5 match syntax instead of LIKE.",
			Category:    "content",
			SQLTemplate: "SELECT f.path, f.title FROM files f JOIN content_fts ON content_fts.rowid = f.id WHERE content_fts MATCH :terms ORDER BY rank LIMIT :limit",
			Parameters: []QueryParameter{
				{Name: "terms", Type: "string", Description: "FTS5 match expression", Default: "python"},
				{Name: "limit", Type: "integer", Description: "Row cap", Default: 20},
			},
			ExampleUsage: "SELECT f.path FROM files f JOIN content_fts ON content_fts.rowid = f.id WHERE content_fts MATCH 'python NOT django' LIMIT 20",
			Complexity:   ComplexityBasic,
		},
		{
			Name:        "Longest notes",
			Description: "Rank notes by word count to find the heavyweights.",
			Category:    "content",
			SQLTemplate: "SELECT path, title, word_count FROM files ORDER BY word_count DESC LIMIT :limit",
			Parameters: []QueryParameter{
				{Name: "limit", Type: "integer", Description: "Row cap", Default: 15},
			},
			ExampleUsage: "SELECT path, word_count FROM files ORDER BY word_count DESC LIMIT 15",
			Complexity:   ComplexityBasic,
		},
		{
			Name:        "Recently modified notes",
			Description: "Show the notes touched most recently — a quick picture of current work.",
			Category:    "workflow",
			SQLTemplate: "SELECT path, title, modified_date FROM files ORDER BY modified_date DESC LIMIT :limit",
			Parameters: []QueryParameter{
				{Name: "limit", Type: "integer", Description: "Row cap", Default: 10},
			},
			ExampleUsage: "SELECT path, modified_date FROM files ORDER BY modified_date DESC LIMIT 10",
			Complexity:   ComplexityBasic,
		},
		{
			Name:        "Stale notes for a tag",
			Description: "Notes carrying a tag that have not been modified recently.",
			Category:    "workflow",
			SQLTemplate: "SELECT f.path, f.title, f.modified_date FROM files f JOIN tags t ON t.file_id = f.id WHERE t.tag = :tag AND f.modified_date < date('now', :age) ORDER BY f.modified_date ASC LIMIT :limit",
			Parameters: []QueryParameter{
				{Name: "tag", Type: "string", Description: "Tag to inspect", Default: "todo"},
				{Name: "age", Type: "string", Description: "SQLite date modifier, e.g. '-30 days'", Default: "-30 days"},
				{Name: "limit", Type: "integer", Description: "Row cap", Default: 20},
			},
			ExampleUsage: "SELECT f.path FROM files f JOIN tags t ON t.file_id = f.id WHERE t.tag = 'todo' AND f.modified_date < date('now', '-30 days') LIMIT 20",
			Complexity:   ComplexityAdvanced,
		},
		{
			Name:        "Orphaned notes",
			Description: "Notes that no other note links to.",
			Category:    "links",
			SQLTemplate: "SELECT f.path, f.title FROM files f LEFT JOIN links l ON l.target = f.path WHERE l.target IS NULL ORDER BY f.modified_date DESC LIMIT :limit",
			Parameters: []QueryParameter{
				{Name: "limit", Type: "integer", Description: "Row cap", Default: 50},
			},
			ExampleUsage: "SELECT f.path FROM files f LEFT JOIN links l ON l.target = f.path WHERE l.target IS NULL LIMIT 50",
			Complexity:   ComplexityIntermediate,
		},
		{
			Name:        "Broken links",
			Description: "Link targets that do not resolve to any indexed note.",
			Category:    "links",
			SQLTemplate: "SELECT l.target, COUNT(*) AS ref_count FROM links l LEFT JOIN files f ON f.path = l.target WHERE f.path IS NULL GROUP BY l.target ORDER BY ref_count DESC LIMIT :limit",
			Parameters: []QueryParameter{
				{Name: "limit", Type: "integer", Description: "Row cap", Default: 50},
			},
			ExampleUsage: "SELECT l.target FROM links l LEFT JOIN files f ON f.path = l.target WHERE f.path IS NULL LIMIT 50",
			Complexity:   ComplexityIntermediate,
		},
		{
			Name:        "Frontmatter field values",
			Description: "Distribution of values for one frontmatter key across the corpus.",
			Category:    "frontmatter",
			SQLTemplate: "SELECT value, COUNT(*) AS note_count FROM frontmatter WHERE key = :key GROUP BY value ORDER BY note_count DESC LIMIT :limit",
			Parameters: []QueryParameter{
				{Name: "key", Type: "string", Description: "Frontmatter key to inspect", Default: "status"},
				{Name: "limit", Type: "integer", Description: "Row cap", Default: 25},
			},
			ExampleUsage: "SELECT value, COUNT(*) FROM frontmatter WHERE key = 'status' GROUP BY value LIMIT 25",
			Complexity:   ComplexityIntermediate,
		},
	}
}
