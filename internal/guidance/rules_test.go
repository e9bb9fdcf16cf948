package guidance

import (
	"strings"
	"testing"
)

// ─── Individual detectors ────────────────────────────────────────────────────

func TestWildcardLikeRule(t *testing.T) {
	e := New()

	got := e.OptimizationSuggestions("SELECT * FROM files WHERE content LIKE '%python%'")
	var hit *QueryOptimization
	for i := range got {
		if strings.Contains(got[i].Suggestion, "full-text") {
			hit = &got[i]
			break
		}
	}
	if hit == nil {
		t.Fatalf("expected a full-text search suggestion, got %v", got)
	}
	if !strings.Contains(hit.ExampleAfter, "content_fts") {
		t.Errorf("example_after should reference content_fts: %q", hit.ExampleAfter)
	}
	if hit.PerformanceImpact != ImpactHigh {
		t.Errorf("performance_impact = %q, want %q", hit.PerformanceImpact, ImpactHigh)
	}
}

func TestWildcardLikeRule_TrailingOnlyDoesNotFire(t *testing.T) {
	e := New()
	for _, opt := range e.OptimizationSuggestions("SELECT path FROM files WHERE title LIKE 'daily-%' LIMIT 5") {
		if strings.Contains(opt.Suggestion, "full-text") {
			t.Errorf("prefix LIKE should not trigger the FTS rewrite: %v", opt)
		}
	}
}

func TestOrderByWithoutLimitRule(t *testing.T) {
	e := New()

	got := e.OptimizationSuggestions("SELECT * FROM files ORDER BY modified_date DESC")
	var hit *QueryOptimization
	for i := range got {
		if strings.Contains(got[i].Issue, "ORDER BY") {
			hit = &got[i]
			break
		}
	}
	if hit == nil {
		t.Fatalf("expected an unbounded ORDER BY suggestion, got %v", got)
	}
	if !strings.Contains(hit.ExampleAfter, "LIMIT") {
		t.Errorf("example_after should contain an explicit LIMIT: %q", hit.ExampleAfter)
	}

	// Same query with a bound must not fire the rule.
	for _, opt := range e.OptimizationSuggestions("SELECT path FROM files ORDER BY modified_date DESC LIMIT 10") {
		if strings.Contains(opt.Issue, "ORDER BY") {
			t.Errorf("bounded ORDER BY should not fire: %v", opt)
		}
	}
}

func TestOrChainRule(t *testing.T) {
	e := New()

	query := "SELECT f.path FROM files f JOIN tags t ON t.file_id = f.id " +
		"WHERE t.tag = 'ai' OR t.tag = 'llm' OR t.tag = 'coding' LIMIT 10"
	got := e.OptimizationSuggestions(query)
	var hit *QueryOptimization
	for i := range got {
		if strings.Contains(got[i].Issue, "OR conditions") {
			hit = &got[i]
			break
		}
	}
	if hit == nil {
		t.Fatalf("expected an OR-chain suggestion, got %v", got)
	}
	if !strings.Contains(hit.ExampleAfter, "IN (") {
		t.Errorf("example_after should contain a set-membership rewrite: %q", hit.ExampleAfter)
	}
}

func TestOrChainRule_BelowThreshold(t *testing.T) {
	if !detectOrChain("WHERE tag = 'a' OR tag = 'b' OR tag = 'c'") {
		t.Error("three same-column comparisons should fire")
	}
	if detectOrChain("WHERE tag = 'a' OR tag = 'b'") {
		t.Error("two comparisons are below the threshold")
	}
	if detectOrChain("WHERE tag = 'a' OR title = 'b' OR path = 'c'") {
		t.Error("mixed columns do not form a chain")
	}
	if detectOrChain("WHERE tag = 'a' AND title = 'b' AND path = 'c'") {
		t.Error("no OR, no chain")
	}
}

// ─── Whole-set behavior ──────────────────────────────────────────────────────

func TestOptimizedQueryYieldsAtMostOneSuggestion(t *testing.T) {
	e := New()

	query := "SELECT f.path, f.title FROM files f JOIN tags t ON t.file_id = f.id " +
		"WHERE t.tag IN ('ai', 'llm', 'coding') ORDER BY f.modified_date DESC LIMIT 10"
	got := e.OptimizationSuggestions(query)
	if len(got) > 1 {
		t.Errorf("optimized query produced %d suggestions: %v", len(got), got)
	}
}

func TestOptimizationSuggestions_ToleratesArbitraryInput(t *testing.T) {
	e := New()

	inputs := []string{
		"",
		"not sql at all",
		"SELECT",
		"'; DROP TABLE files; --",
		strings.Repeat("x OR ", 100000),
	}
	for _, in := range inputs {
		// Must not panic, and the empty string yields nothing.
		got := e.OptimizationSuggestions(in)
		if in == "" && len(got) != 0 {
			t.Errorf("empty input produced suggestions: %v", got)
		}
	}
}

func TestOptimizationSuggestions_DeclarationOrder(t *testing.T) {
	e := New()

	// Triggers the LIKE rule, the missing-LIMIT rule, and select-star.
	got := e.OptimizationSuggestions("SELECT * FROM files WHERE content LIKE '%go%' ORDER BY path")
	if len(got) < 3 {
		t.Fatalf("expected at least 3 suggestions, got %v", got)
	}
	if got[0].PerformanceImpact != ImpactHigh {
		t.Errorf("first suggestion should be the high-impact LIKE rule, got %v", got[0])
	}
}

// ─── Static rule catalog properties ──────────────────────────────────────────

func TestDefaultRules_ClosedImpactSet(t *testing.T) {
	for _, r := range DefaultRules() {
		if !r.Optimization.PerformanceImpact.Valid() {
			t.Errorf("rule %s has invalid impact %q", r.Name, r.Optimization.PerformanceImpact)
		}
		if r.Optimization.Issue == "" || r.Optimization.Suggestion == "" {
			t.Errorf("rule %s missing issue or suggestion text", r.Name)
		}
		if r.Optimization.ExampleBefore == "" || r.Optimization.ExampleAfter == "" {
			t.Errorf("rule %s missing before/after examples", r.Name)
		}
		if r.Detect == nil {
			t.Errorf("rule %s has no detector", r.Name)
		}
	}
}
