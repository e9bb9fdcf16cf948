package contract

// DocumentationProvider is implemented by anything that can describe the tool
// surface as a JSON-shaped document. Server types compose it by delegating to
// an owned Registry — never through shared globals.
type DocumentationProvider interface {
	ToolDocumentation(name string) map[string]any
}

// DocProvider emits self-describing documentation for one tool or the whole
// catalog by delegating to its registry.
type DocProvider struct {
	registry *Registry
}

// NewDocProvider creates a DocProvider over the given registry.
func NewDocProvider(registry *Registry) *DocProvider {
	return &DocProvider{registry: registry}
}

// ToolDocumentation returns the documentation document for a single tool, or
// a catalog overview when name is empty.
//
// An unknown name yields an error object, not a Go error — this is a
// discovery endpoint and must always answer.
func (d *DocProvider) ToolDocumentation(name string) map[string]any {
	if name == "" {
		return d.catalogOverview()
	}

	spec, found := d.registry.GetToolSpec(name)
	if !found {
		return map[string]any{
			"error": (&ValidationError{
				Code:    CodeUnknownTool,
				Message: "unknown tool " + name,
			}).Error(),
		}
	}

	params := make([]map[string]any, 0, len(spec.Parameters))
	for _, p := range spec.Parameters {
		doc := map[string]any{
			"name":        p.Name,
			"type":        string(p.Type),
			"description": p.Description,
			"required":    p.Required,
		}
		if p.Default != nil {
			doc["default"] = p.Default
		}
		if len(p.AllowedValues) > 0 {
			doc["allowed_values"] = p.AllowedValues
		}
		params = append(params, doc)
	}

	return map[string]any{
		"tool":          spec.Name,
		"category":      string(spec.Category),
		"description":   spec.Description,
		"response_type": string(spec.ResponseType),
		"parameters":    params,
	}
}

func (d *DocProvider) catalogOverview() map[string]any {
	names := d.registry.ToolNames()
	categories := make(map[string][]map[string]any)
	for _, name := range names {
		spec, _ := d.registry.GetToolSpec(name)
		categories[string(spec.Category)] = append(categories[string(spec.Category)], map[string]any{
			"name":            spec.Name,
			"description":     spec.Description,
			"parameter_count": len(spec.Parameters),
		})
	}
	return map[string]any{
		"total_tools":     len(names),
		"tool_categories": categories,
	}
}
