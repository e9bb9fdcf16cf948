package contract

import (
	"strings"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(DefaultCatalog())
}

// ─── Lookup ──────────────────────────────────────────────────────────────────

func TestGetToolSpec_AllRegisteredNames(t *testing.T) {
	reg := newTestRegistry(t)
	for _, name := range reg.ToolNames() {
		spec, found := reg.GetToolSpec(name)
		if !found {
			t.Errorf("registered tool %q not found", name)
			continue
		}
		if spec.Name != name {
			t.Errorf("spec.Name = %q, want %q", spec.Name, name)
		}
	}
}

func TestGetToolSpec_Unknown(t *testing.T) {
	reg := newTestRegistry(t)
	if _, found := reg.GetToolSpec("no_such_tool"); found {
		t.Error("lookup of unknown tool should report not found")
	}
}

// ─── ValidateToolCall ────────────────────────────────────────────────────────

func TestValidateToolCall_ValidQuery(t *testing.T) {
	reg := newTestRegistry(t)

	ok, problems := reg.ValidateToolCall("query_markdown", map[string]any{
		"sql":    "SELECT * FROM files LIMIT 5",
		"format": "json",
	})
	if !ok {
		t.Errorf("expected ok, got problems: %v", problems)
	}
	if len(problems) != 0 {
		t.Errorf("expected no problems, got %v", problems)
	}
}

func TestValidateToolCall_MissingRequired(t *testing.T) {
	reg := newTestRegistry(t)

	ok, problems := reg.ValidateToolCall("query_markdown", map[string]any{
		"invalid_param": "test",
	})
	if ok {
		t.Error("call without required sql should fail")
	}
	if len(problems) == 0 {
		t.Fatal("expected accumulated problems")
	}
	joined := strings.Join(problems, "\n")
	if !strings.Contains(joined, "sql") {
		t.Errorf("problems should mention the missing sql parameter: %v", problems)
	}
	if !strings.Contains(joined, string(CodeUnknownParameterWarning)) {
		t.Errorf("problems should include the unknown-parameter warning: %v", problems)
	}
}

func TestValidateToolCall_UnknownTool(t *testing.T) {
	reg := newTestRegistry(t)

	ok, problems := reg.ValidateToolCall("no_such_tool", map[string]any{})
	if ok {
		t.Error("unknown tool should fail validation")
	}
	if len(problems) != 1 {
		t.Fatalf("expected exactly one problem, got %v", problems)
	}
	if !strings.Contains(problems[0], "unknown tool") {
		t.Errorf("problem should say unknown tool: %q", problems[0])
	}
}

func TestValidateToolCall_AccumulatesAllFailures(t *testing.T) {
	reg := newTestRegistry(t)

	// Missing sql, bad enum value, bad integer — all three must be reported.
	ok, problems := reg.ValidateToolCall("query_markdown", map[string]any{
		"format":   "xml",
		"max_rows": "ten",
	})
	if ok {
		t.Error("expected failure")
	}
	joined := strings.Join(problems, "\n")
	for _, want := range []string{"sql", "format", "max_rows"} {
		if !strings.Contains(joined, want) {
			t.Errorf("problems should mention %q: %v", want, problems)
		}
	}
}

func TestValidateToolCall_WarningsDoNotFail(t *testing.T) {
	reg := newTestRegistry(t)

	ok, problems := reg.ValidateToolCall("query_markdown", map[string]any{
		"sql":   "SELECT path FROM files",
		"extra": "ignored",
	})
	if !ok {
		t.Errorf("undeclared keys alone must not fail the call: %v", problems)
	}
	if len(problems) != 1 {
		t.Fatalf("expected one warning, got %v", problems)
	}
	if !strings.Contains(problems[0], string(CodeUnknownParameterWarning)) {
		t.Errorf("expected an unknown-parameter warning, got %q", problems[0])
	}
}

// ─── Documentation provider ──────────────────────────────────────────────────

func TestToolDocumentation_Overview(t *testing.T) {
	reg := newTestRegistry(t)
	docs := NewDocProvider(reg)

	doc := docs.ToolDocumentation("")
	total, ok := doc["total_tools"].(int)
	if !ok || total != len(reg.ToolNames()) {
		t.Errorf("total_tools = %v, want %d", doc["total_tools"], len(reg.ToolNames()))
	}

	categories, ok := doc["tool_categories"].(map[string][]map[string]any)
	if !ok {
		t.Fatalf("tool_categories has unexpected shape %T", doc["tool_categories"])
	}
	counted := 0
	for _, tools := range categories {
		counted += len(tools)
		for _, summary := range tools {
			if summary["name"] == "" {
				t.Error("tool summary missing name")
			}
			if _, ok := summary["parameter_count"].(int); !ok {
				t.Errorf("tool summary missing parameter_count: %v", summary)
			}
		}
	}
	if counted != total {
		t.Errorf("category members sum to %d, want %d", counted, total)
	}
}

func TestToolDocumentation_SingleTool(t *testing.T) {
	reg := newTestRegistry(t)
	docs := NewDocProvider(reg)

	doc := docs.ToolDocumentation("query_markdown")
	if doc["tool"] != "query_markdown" {
		t.Errorf("tool = %v, want query_markdown", doc["tool"])
	}
	if doc["category"] != string(CategoryQuery) {
		t.Errorf("category = %v, want %s", doc["category"], CategoryQuery)
	}

	params, ok := doc["parameters"].([]map[string]any)
	if !ok || len(params) == 0 {
		t.Fatalf("parameters has unexpected shape %T", doc["parameters"])
	}
	if params[0]["name"] != "sql" || params[0]["required"] != true {
		t.Errorf("first parameter should be the required sql, got %v", params[0])
	}
}

func TestToolDocumentation_UnknownToolAnswers(t *testing.T) {
	reg := newTestRegistry(t)
	docs := NewDocProvider(reg)

	doc := docs.ToolDocumentation("bogus")
	msg, ok := doc["error"].(string)
	if !ok || !strings.Contains(msg, "bogus") {
		t.Errorf("unknown tool should yield an error object naming the tool, got %v", doc)
	}
}
