// Package contract defines the declarative tool surface of mdscope and the
// validation layer that guards it.
//
// Every externally invocable tool is described once, at construction time, by
// a ToolSpec: its category, its ordered parameter list, and its response
// shape. The Registry validates incoming calls against those specs before any
// handler runs, so malformed calls are rejected with structured reasons
// instead of surfacing as runtime failures deeper in the stack.
//
// The catalog is a closed, versioned surface — tools are registered exactly
// once and never at runtime.
package contract

import "fmt"

// ─── Parameter model ─────────────────────────────────────────────────────────

// ParameterType is the closed set of types a tool parameter can declare.
type ParameterType string

// Parameter type tags.
const (
	TypeString  ParameterType = "string"
	TypeInteger ParameterType = "integer"
	TypeBoolean ParameterType = "boolean"
	TypeNumber  ParameterType = "number"
	TypeArray   ParameterType = "array"
	TypeObject  ParameterType = "object"
	TypeEnum    ParameterType = "enum"
)

// Valid reports whether t is a member of the closed type set.
func (t ParameterType) Valid() bool {
	switch t {
	case TypeString, TypeInteger, TypeBoolean, TypeNumber, TypeArray, TypeObject, TypeEnum:
		return true
	}
	return false
}

// ParameterSpec describes a single declared tool parameter.
//
// Invariants (enforced by ToolSpec.check at catalog construction):
//   - a required parameter carries no default
//   - an enum parameter has a non-empty AllowedValues set
type ParameterSpec struct {
	Name          string        `json:"name"`
	Type          ParameterType `json:"type"`
	Description   string        `json:"description"`
	Required      bool          `json:"required"`
	Default       any           `json:"default,omitempty"`
	AllowedValues []string      `json:"allowed_values,omitempty"`
}

// ─── Tool model ──────────────────────────────────────────────────────────────

// ToolCategory groups tools for documentation and discovery.
type ToolCategory string

// Tool categories.
const (
	CategoryQuery       ToolCategory = "query"
	CategoryAnalysis    ToolCategory = "analysis"
	CategoryDiagnostics ToolCategory = "diagnostics"
	CategoryIndexing    ToolCategory = "indexing"
)

// ResponseType describes the output shape a tool produces.
type ResponseType string

// Response types.
const (
	ResponseJSON  ResponseType = "json"
	ResponseText  ResponseType = "text"
	ResponseTable ResponseType = "table"
)

// ToolSpec is the full declarative description of one tool. Specs are built
// once in DefaultCatalog and shared by reference for the process lifetime.
type ToolSpec struct {
	Name         string          `json:"name"`
	Category     ToolCategory    `json:"category"`
	Description  string          `json:"description"`
	Parameters   []ParameterSpec `json:"parameters"`
	ResponseType ResponseType    `json:"response_type"`
}

// check verifies the hand-authored spec is internally consistent. A failure
// here is a programming error in the catalog, not a request-time condition.
func (s ToolSpec) check() error {
	if s.Name == "" {
		return fmt.Errorf("tool with empty name")
	}
	seen := make(map[string]bool, len(s.Parameters))
	for _, p := range s.Parameters {
		if !p.Type.Valid() {
			return fmt.Errorf("tool %s: parameter %s has invalid type %q", s.Name, p.Name, p.Type)
		}
		if seen[p.Name] {
			return fmt.Errorf("tool %s: duplicate parameter %s", s.Name, p.Name)
		}
		seen[p.Name] = true
		if p.Required && p.Default != nil {
			return fmt.Errorf("tool %s: required parameter %s must not declare a default", s.Name, p.Name)
		}
		if p.Type == TypeEnum && len(p.AllowedValues) == 0 {
			return fmt.Errorf("tool %s: enum parameter %s has no allowed values", s.Name, p.Name)
		}
	}
	return nil
}

// ─── Error taxonomy ──────────────────────────────────────────────────────────

// ErrorCode identifies a class of validation failure.
type ErrorCode string

// Validation error codes. UnknownParameterWarning is advisory — it is reported
// alongside real errors but never fails a call on its own.
const (
	CodeUnknownTool             ErrorCode = "UnknownTool"
	CodeMissingRequired         ErrorCode = "MissingRequiredParameter"
	CodeTypeMismatch            ErrorCode = "TypeMismatch"
	CodeInvalidEnumValue        ErrorCode = "InvalidEnumValue"
	CodeUnknownParameterWarning ErrorCode = "UnknownParameterWarning"
)

// Fatal reports whether this code fails a tool call.
func (c ErrorCode) Fatal() bool {
	return c != CodeUnknownParameterWarning
}

// ValidationError is a single structured validation outcome. It is returned
// as a value — this layer rejects with reasons, it never panics on input.
type ValidationError struct {
	Code      ErrorCode `json:"code"`
	Parameter string    `json:"parameter,omitempty"`
	Message   string    `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("%s: parameter %q: %s", e.Code, e.Parameter, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
