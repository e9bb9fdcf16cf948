package guidance

import (
	"regexp"
	"strings"
)

// orChainThreshold is the number of same-column equality comparisons joined
// by OR at which the membership-test rewrite fires. Two ORed values read
// fine; three or more is an IN list waiting to happen.
const orChainThreshold = 3

// Rule is one independent heuristic detector. Detect inspects raw query text
// and reports whether the rule's anti-pattern is present. Detection is
// textual and best-effort — it tolerates empty, non-SQL, and arbitrarily
// long input, and absence of a pattern simply means no suggestion.
type Rule struct {
	Name         string
	Optimization QueryOptimization
	Detect       func(text string) bool
}

// Apply runs the detector and returns the rule's optimization on a match.
func (r Rule) Apply(text string) (QueryOptimization, bool) {
	if r.Detect == nil || !r.Detect(text) {
		return QueryOptimization{}, false
	}
	return r.Optimization, true
}

var (
	// LIKE with a leading and trailing wildcard against a free-text column.
	reWildcardLike = regexp.MustCompile(`(?is)\b(?:\w+\.)?(content|title|body|text)\s+LIKE\s+'%.*%'`)

	reOrderBy = regexp.MustCompile(`(?is)\bORDER\s+BY\b`)
	reLimit   = regexp.MustCompile(`(?i)\bLIMIT\b`)

	reSelectStar = regexp.MustCompile(`(?is)\bSELECT\s+\*`)

	// One column = literal comparison. Column names may be qualified (t.tag).
	reEquality = regexp.MustCompile(`(?i)([A-Za-z_][\w]*(?:\.[\w]+)?)\s*=\s*(?:'[^']*'|"[^"]*"|\d+)`)
	reOr       = regexp.MustCompile(`(?i)\bOR\b`)
)

// detectOrChain reports whether the same column is compared by equality to
// orChainThreshold or more literals in a query that also contains OR. This is
// a token count, not a parse — mixed columns only qualify through their own
// per-column counts.
func detectOrChain(text string) bool {
	if !reOr.MatchString(text) {
		return false
	}
	counts := make(map[string]int)
	for _, m := range reEquality.FindAllStringSubmatch(text, -1) {
		col := strings.ToLower(m[1])
		counts[col]++
		if counts[col] >= orChainThreshold {
			return true
		}
	}
	return false
}

// DefaultRules returns the built-in optimization rule set in declaration
// order. Suggestions are collected in this order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "wildcard-like-on-free-text",
			Optimization: QueryOptimization{
				Issue:             "Wildcard LIKE against a free-text column scans every row",
				Suggestion:        "Use the content_fts full-text search table with a MATCH predicate instead of LIKE with leading and trailing wildcards. The FTS5 index answers term queries without scanning note bodies.",
				ExampleBefore:     "SELECT * FROM files WHERE content LIKE '%python%'",
				ExampleAfter:      "SELECT f.* FROM files f JOIN content_fts ON content_fts.rowid = f.id WHERE content_fts MATCH 'python'",
				PerformanceImpact: ImpactHigh,
			},
			Detect: reWildcardLike.MatchString,
		},
		{
			Name: "order-by-without-limit",
			Optimization: QueryOptimization{
				Issue:             "ORDER BY without a LIMIT sorts and returns the entire result set",
				Suggestion:        "Add an explicit LIMIT so the sort can stop early and the caller is not flooded with rows it will never read.",
				ExampleBefore:     "SELECT path, title FROM files ORDER BY modified_date DESC",
				ExampleAfter:      "SELECT path, title FROM files ORDER BY modified_date DESC LIMIT 20",
				PerformanceImpact: ImpactMedium,
			},
			Detect: func(text string) bool {
				return reOrderBy.MatchString(text) && !reLimit.MatchString(text)
			},
		},
		{
			Name: "or-chain-membership",
			Optimization: QueryOptimization{
				Issue:             "Repeated OR conditions compare the same column against several literals",
				Suggestion:        "Collapse the OR chain into a single IN (...) membership test, one predicate the planner can satisfy with a single index probe per value.",
				ExampleBefore:     "SELECT f.path FROM files f JOIN tags t ON t.file_id = f.id WHERE t.tag = 'ai' OR t.tag = 'llm' OR t.tag = 'coding'",
				ExampleAfter:      "SELECT f.path FROM files f JOIN tags t ON t.file_id = f.id WHERE t.tag IN ('ai', 'llm', 'coding')",
				PerformanceImpact: ImpactMedium,
			},
			Detect: detectOrChain,
		},
		{
			Name: "select-star",
			Optimization: QueryOptimization{
				Issue:             "SELECT * fetches every column of every matched row",
				Suggestion:        "Name the columns you need. Narrow projections keep results small and survive schema changes.",
				ExampleBefore:     "SELECT * FROM files WHERE word_count > 1000",
				ExampleAfter:      "SELECT path, title, word_count FROM files WHERE word_count > 1000",
				PerformanceImpact: ImpactLow,
			},
			Detect: reSelectStar.MatchString,
		},
	}
}
