package guidance

// DefaultSyntaxReference returns the static schema and syntax reference for
// the note index. The table set and shape here is a compatibility contract —
// consumers rely on the files/tags/frontmatter/links/content_fts keys.
func DefaultSyntaxReference() SyntaxReference {
	return SyntaxReference{
		Tables: map[string]TableRef{
			"files": {
				Description: "One row per indexed markdown note",
				KeyColumns:  []string{"id", "path", "title", "modified_date", "word_count"},
			},
			"tags": {
				Description: "Tag assignments, one row per (note, tag) pair",
				KeyColumns:  []string{"file_id", "tag"},
			},
			"frontmatter": {
				Description: "Flattened YAML frontmatter, one row per (note, key) pair",
				KeyColumns:  []string{"file_id", "key", "value"},
			},
			"links": {
				Description: "Outgoing wiki and markdown links, one row per link occurrence",
				KeyColumns:  []string{"file_id", "target", "link_type"},
			},
			"content_fts": {
				Description: "FTS5 virtual table over note content; query with MATCH, rowid joins files.id",
				KeyColumns:  []string{"rowid", "path", "title", "content"},
			},
		},
		Operators: map[string]string{
			"comparison": "=, !=, <, <=, >, >= on any column",
			"IN":         "Set membership — prefer over chains of OR equality comparisons",
			"LIKE":       "Pattern match with % and _ wildcards; avoid leading wildcards on content",
			"MATCH":      "FTS5 full-text match, only valid against content_fts",
			"IS NULL":    "Null check, useful with LEFT JOIN for absence queries",
		},
		Functions: map[string]string{
			"COUNT(*)":            "Row count per group",
			"GROUP_CONCAT(x)":     "Concatenate group values into one string",
			"date(x, modifier)":   "Date arithmetic, e.g. date('now', '-30 days')",
			"length(x)":           "String length in bytes",
			"lower(x) / upper(x)": "Case folding for comparisons",
		},
		FTSSyntax: map[string]string{
			"term":     "Single bare word matches any note containing it",
			"\"a b\"":  "Quoted phrase matches the exact sequence",
			"a AND b":  "Both terms must be present (AND is implicit between terms)",
			"a OR b":   "Either term may be present",
			"a NOT b":  "First term present, second absent",
			"col:term": "Restrict a term to one column, e.g. title:roadmap",
			"prefix*":  "Prefix match, e.g. data* matches database and dataset",
		},
	}
}

// DefaultPatterns returns the static common-pattern table included in every
// guidance response.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:        "Count per group",
			Description: "GROUP BY a dimension and rank groups by COUNT(*) to see distribution.",
			Example:     "SELECT tag, COUNT(*) AS n FROM tags GROUP BY tag ORDER BY n DESC LIMIT 20",
		},
		{
			Name:        "Join tags to files",
			Description: "tags.file_id joins files.id; filter on tags, project from files.",
			Example:     "SELECT f.path FROM files f JOIN tags t ON t.file_id = f.id WHERE t.tag = 'project'",
		},
		{
			Name:        "Full-text search with metadata filter",
			Description: "MATCH on content_fts, then narrow by joining files columns.",
			Example:     "SELECT f.path FROM files f JOIN content_fts ON content_fts.rowid = f.id WHERE content_fts MATCH 'roadmap' AND f.modified_date > date('now', '-7 days')",
		},
		{
			Name:        "Absence via LEFT JOIN",
			Description: "LEFT JOIN and keep rows where the right side IS NULL to find notes missing something.",
			Example:     "SELECT f.path FROM files f LEFT JOIN tags t ON t.file_id = f.id WHERE t.tag IS NULL",
		},
		{
			Name:        "Always bound result sets",
			Description: "End exploratory queries with LIMIT; an unbounded ORDER BY sorts the whole corpus.",
			Example:     "SELECT path FROM files ORDER BY modified_date DESC LIMIT 10",
		},
	}
}
