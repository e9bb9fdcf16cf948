package contract

import "fmt"

// ValidateParam checks a supplied value against a parameter spec. A nil
// return means the value is acceptable. An absent optional value passes
// implicitly — the caller substitutes spec.Default when it needs one.
//
// Pure function of its inputs; no side effects.
func ValidateParam(value any, spec ParameterSpec) *ValidationError {
	if value == nil {
		if spec.Required {
			return &ValidationError{
				Code:      CodeMissingRequired,
				Parameter: spec.Name,
				Message:   "required parameter is missing",
			}
		}
		return nil
	}

	switch spec.Type {
	case TypeString:
		if _, ok := value.(string); !ok {
			return typeMismatch(spec, "string", value)
		}
	case TypeEnum:
		s, ok := value.(string)
		if !ok {
			return typeMismatch(spec, "string", value)
		}
		for _, allowed := range spec.AllowedValues {
			if s == allowed {
				return nil
			}
		}
		return &ValidationError{
			Code:      CodeInvalidEnumValue,
			Parameter: spec.Name,
			Message:   fmt.Sprintf("value %q is not one of %v", s, spec.AllowedValues),
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return typeMismatch(spec, "boolean", value)
		}
	case TypeInteger:
		if !isInteger(value) {
			return typeMismatch(spec, "integer", value)
		}
	case TypeNumber:
		if !isNumber(value) {
			return typeMismatch(spec, "number", value)
		}
	case TypeArray:
		if !isArray(value) {
			return typeMismatch(spec, "array", value)
		}
	case TypeObject:
		if _, ok := value.(map[string]any); !ok {
			return typeMismatch(spec, "object", value)
		}
	}
	return nil
}

func typeMismatch(spec ParameterSpec, want string, got any) *ValidationError {
	return &ValidationError{
		Code:      CodeTypeMismatch,
		Parameter: spec.Name,
		Message:   fmt.Sprintf("expected %s, got %T", want, got),
	}
}

// isInteger accepts native int kinds plus float64 with an integral value —
// JSON decoding hands every number to us as float64.
func isInteger(v any) bool {
	switch n := v.(type) {
	case int, int32, int64:
		return true
	case float64:
		return n == float64(int64(n))
	}
	return false
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}

func isArray(v any) bool {
	switch v.(type) {
	case []any, []string, []int, []float64:
		return true
	}
	return false
}
