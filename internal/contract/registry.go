package contract

import "fmt"

// Registry wraps the tool catalog and validates whole calls against it.
// It is built once at startup and read-only afterwards, so it is safe to
// share across concurrent request handlers without locking.
type Registry struct {
	byName map[string]ToolSpec
	order  []string
}

// NewRegistry builds a registry from a catalog of tool specs. It panics on
// an inconsistent catalog — that is a hand-authoring mistake caught at
// process start, never a request-time condition.
func NewRegistry(catalog []ToolSpec) *Registry {
	r := &Registry{byName: make(map[string]ToolSpec, len(catalog))}
	for _, spec := range catalog {
		if err := spec.check(); err != nil {
			panic(fmt.Sprintf("contract: invalid catalog: %v", err))
		}
		if _, dup := r.byName[spec.Name]; dup {
			panic(fmt.Sprintf("contract: invalid catalog: duplicate tool %s", spec.Name))
		}
		r.byName[spec.Name] = spec
		r.order = append(r.order, spec.Name)
	}
	return r
}

// GetToolSpec looks up a tool by name. A missing tool is not an error —
// callers must check the second return.
func (r *Registry) GetToolSpec(name string) (ToolSpec, bool) {
	spec, ok := r.byName[name]
	return spec, ok
}

// ToolNames returns every registered tool name in catalog order.
func (r *Registry) ToolNames() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// ValidateToolCall checks every supplied argument against the tool's declared
// parameters. All failures are accumulated — no short-circuit — so a caller
// sees every problem in one round trip. Keys not declared on the tool are
// appended as non-fatal warnings and never fail the call by themselves.
func (r *Registry) ValidateToolCall(name string, args map[string]any) (bool, []string) {
	spec, found := r.byName[name]
	if !found {
		e := &ValidationError{Code: CodeUnknownTool, Message: fmt.Sprintf("unknown tool %q", name)}
		return false, []string{e.Error()}
	}

	var problems []string
	ok := true
	declared := make(map[string]bool, len(spec.Parameters))
	for _, p := range spec.Parameters {
		declared[p.Name] = true
		if verr := ValidateParam(args[p.Name], p); verr != nil {
			problems = append(problems, verr.Error())
			if verr.Code.Fatal() {
				ok = false
			}
		}
	}

	// Undeclared keys become warnings, appended after the declared-parameter
	// results so they always trail real errors.
	for key := range args {
		if !declared[key] {
			w := &ValidationError{
				Code:      CodeUnknownParameterWarning,
				Parameter: key,
				Message:   fmt.Sprintf("not declared on tool %q", name),
			}
			problems = append(problems, w.Error())
		}
	}
	return ok, problems
}
