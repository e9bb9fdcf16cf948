// Package guidance implements the query guidance and optimization engine.
//
// It owns three static catalogs — parameterized query templates, heuristic
// optimization rules, and a syntax reference for the note index schema — and
// composes them to answer two questions: "what should I query for this kind
// of analysis" and "what is wrong with this literal query text".
//
// Everything here is built once and read-only afterwards. The engine never
// executes queries and never touches the index; detection is best-effort
// pattern matching over query text, not semantic analysis.
package guidance

// Complexity is the closed tier set for query templates.
type Complexity string

// Complexity tiers.
const (
	ComplexityBasic        Complexity = "basic"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
)

// Valid reports whether c is a member of the closed tier set.
func (c Complexity) Valid() bool {
	switch c {
	case ComplexityBasic, ComplexityIntermediate, ComplexityAdvanced:
		return true
	}
	return false
}

// Impact rates how much a suggested rewrite matters.
type Impact string

// Performance impact ratings.
const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Valid reports whether i is a member of the closed rating set.
func (i Impact) Valid() bool {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return true
	}
	return false
}

// QueryParameter describes one placeholder of a query template. Templates are
// advisory, never executed directly, so the type is a free-form descriptive
// string rather than a closed tag.
type QueryParameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
}

// QueryTemplate is a named, categorized, complexity-tagged SQL template with
// worked examples. Every :name placeholder in SQLTemplate has a matching
// Parameters entry (checked by tests).
type QueryTemplate struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Category     string           `json:"category"`
	SQLTemplate  string           `json:"sql_template"`
	Parameters   []QueryParameter `json:"parameters"`
	ExampleUsage string           `json:"example_usage"`
	Complexity   Complexity       `json:"complexity"`
}

// QueryOptimization is the static outcome of one heuristic rule: the detected
// anti-pattern, the rewrite rationale, and a before/after pair.
type QueryOptimization struct {
	Issue             string `json:"issue"`
	Suggestion        string `json:"suggestion"`
	ExampleBefore     string `json:"example_before"`
	ExampleAfter      string `json:"example_after"`
	PerformanceImpact Impact `json:"performance_impact"`
}

// TableRef documents one queryable table of the index schema.
type TableRef struct {
	Description string   `json:"description"`
	KeyColumns  []string `json:"key_columns"`
}

// SyntaxReference is the static schema/operator/function reference copied
// into every guidance response.
type SyntaxReference struct {
	Tables    map[string]TableRef `json:"tables"`
	Operators map[string]string   `json:"operators"`
	Functions map[string]string   `json:"functions"`
	FTSSyntax map[string]string   `json:"fts_syntax"`
}

// Pattern is one entry of the common query pattern table.
type Pattern struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Example is a worked, runnable instance of a template.
type Example struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Query       string `json:"query"`
}

// QueryGuidance is the aggregate advisory response for one analysis intent.
// It is assembled per request and owned by the caller.
type QueryGuidance struct {
	SuggestedQueries []QueryTemplate     `json:"suggested_queries"`
	OptimizationTips []QueryOptimization `json:"optimization_tips"`
	CommonPatterns   []Pattern           `json:"common_patterns"`
	SyntaxReference  SyntaxReference     `json:"syntax_reference"`
	Examples         []Example           `json:"examples"`
}
