package guidance

import (
	"fmt"
	"sort"
	"strings"
)

// Engine composes the template catalog, the optimization rule set, and the
// syntax reference. It is constructed once at startup and is read-only
// afterwards, so every method is safe for concurrent callers.
type Engine struct {
	templates []QueryTemplate
	rules     []Rule
	syntax    SyntaxReference
	patterns  []Pattern
}

// New returns an engine over the built-in catalogs.
func New() *Engine {
	return NewEngine(DefaultTemplates(), DefaultRules(), DefaultSyntaxReference(), DefaultPatterns())
}

// NewEngine builds an engine from explicit catalogs. Exposed so tests can
// inject small fixtures.
func NewEngine(templates []QueryTemplate, rules []Rule, syntax SyntaxReference, patterns []Pattern) *Engine {
	return &Engine{templates: templates, rules: rules, syntax: syntax, patterns: patterns}
}

// SyntaxReference returns the static schema and syntax reference.
func (e *Engine) SyntaxReference() SyntaxReference {
	return e.syntax
}

// Templates returns every template matching all supplied filters. Empty
// filters match everything; both empty returns the full catalog. Matching is
// exact on the category and complexity tags, catalog order preserved.
func (e *Engine) Templates(category string, complexity Complexity) []QueryTemplate {
	out := make([]QueryTemplate, 0, len(e.templates))
	for _, t := range e.templates {
		if category != "" && t.Category != category {
			continue
		}
		if complexity != "" && t.Complexity != complexity {
			continue
		}
		out = append(out, t)
	}
	return out
}

// OptimizationSuggestions applies every rule to the query text and collects
// matches in rule-declaration order. Arbitrary input is fine: empty strings,
// non-SQL text, and very long text all simply yield fewer (or no) matches.
func (e *Engine) OptimizationSuggestions(queryText string) []QueryOptimization {
	var out []QueryOptimization
	for _, r := range e.rules {
		if opt, hit := r.Apply(queryText); hit {
			out = append(out, opt)
		}
	}
	return out
}

// Guidance assembles the full advisory response for an analysis intent.
// Template selection is a case-insensitive substring match of the analysis
// type (and its tokens) against template names and categories. The response
// is never fully empty: tips, patterns, and the syntax reference are always
// populated even when no template matches.
func (e *Engine) Guidance(analysisType, contentDescription string) QueryGuidance {
	selected := e.matchTemplates(analysisType)

	examples := make([]Example, 0, len(selected))
	for _, t := range selected {
		examples = append(examples, Example{
			Title:       t.Name,
			Description: t.Description,
			Query:       FillTemplate(t),
		})
	}

	return QueryGuidance{
		SuggestedQueries: selected,
		OptimizationTips: e.generalTips(),
		CommonPatterns:   e.patterns,
		SyntaxReference:  e.syntax,
		Examples:         examples,
	}
}

// generalTips returns the representative rule outcomes included in every
// guidance response — the medium and high impact rules, in declaration order.
func (e *Engine) generalTips() []QueryOptimization {
	var tips []QueryOptimization
	for _, r := range e.rules {
		if r.Optimization.PerformanceImpact != ImpactLow {
			tips = append(tips, r.Optimization)
		}
	}
	if len(tips) == 0 && len(e.rules) > 0 {
		tips = append(tips, e.rules[0].Optimization)
	}
	return tips
}

// matchTemplates selects templates whose category or name contains the
// analysis type, or any of its tokens. "tag-analysis" therefore selects both
// templates in the tag-analysis category and templates with "tag" in the name.
func (e *Engine) matchTemplates(analysisType string) []QueryTemplate {
	query := strings.ToLower(strings.TrimSpace(analysisType))
	if query == "" {
		return nil
	}

	tokens := strings.FieldsFunc(query, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})

	var out []QueryTemplate
	for _, t := range e.templates {
		name := strings.ToLower(t.Name)
		cat := strings.ToLower(t.Category)
		if e.matches(query, tokens, name, cat) {
			out = append(out, t)
		}
	}
	return out
}

func (e *Engine) matches(query string, tokens []string, name, cat string) bool {
	if strings.Contains(name, query) || strings.Contains(cat, query) || strings.Contains(query, cat) {
		return true
	}
	for _, tok := range tokens {
		// "analysis" appears in half the intents users type; it carries no
		// selectivity on its own.
		if tok == "analysis" || len(tok) < 3 {
			continue
		}
		if strings.Contains(name, tok) || strings.Contains(cat, tok) {
			return true
		}
	}
	return false
}

// FillTemplate produces a runnable instance of a template by substituting
// each :name placeholder with the parameter's default, or a representative
// literal when no default is declared. Longer names are substituted first so
// a placeholder never clobbers another's prefix.
func FillTemplate(t QueryTemplate) string {
	params := make([]QueryParameter, len(t.Parameters))
	copy(params, t.Parameters)
	sort.Slice(params, func(i, j int) bool { return len(params[i].Name) > len(params[j].Name) })

	query := t.SQLTemplate
	for _, p := range params {
		query = strings.ReplaceAll(query, ":"+p.Name, sqlLiteral(p))
	}
	return query
}

func sqlLiteral(p QueryParameter) string {
	v := p.Default
	if v == nil {
		switch p.Type {
		case "integer", "number":
			v = 10
		default:
			v = "example"
		}
	}
	switch n := v.(type) {
	case int, int64, float64:
		return fmt.Sprintf("%v", n)
	case string:
		return "'" + strings.ReplaceAll(n, "'", "''") + "'"
	default:
		return fmt.Sprintf("'%v'", n)
	}
}

// ToDict serializes the full engine state — templates, rule outcomes, syntax
// reference, and common patterns — into a JSON-representable mapping.
func (e *Engine) ToDict() map[string]any {
	optimizations := make([]QueryOptimization, 0, len(e.rules))
	for _, r := range e.rules {
		optimizations = append(optimizations, r.Optimization)
	}
	return map[string]any{
		"templates":        e.templates,
		"optimizations":    optimizations,
		"syntax_reference": e.syntax,
		"common_patterns":  e.patterns,
	}
}
