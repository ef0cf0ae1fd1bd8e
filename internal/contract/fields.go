package contract

import (
	"encoding/json"
	"fmt"
	"math"
)

// warnings collects non-fatal contract deviations encountered during
// validation. Callers log them; they never fail a result.
type warnings []string

func (w *warnings) addf(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

// stringField returns the string value for key, or def when the key is
// absent. A present but non-string value is replaced with def and reported
// as a warning.
func stringField(raw map[string]any, key, def string, warns *warnings) string {
	value, ok := raw[key]
	if !ok || value == nil {
		return def
	}

	s, ok := value.(string)
	if !ok {
		warns.addf("field %q has type %T, expected string; using default", key, value)
		return def
	}

	return s
}

// boundedIntField returns the integer value for key, constrained to
// [min, max]. An absent key yields def; an out-of-range, fractional, or
// wrong-typed value is replaced with def and reported as a warning.
func boundedIntField(raw map[string]any, key string, def, min, max int, warns *warnings) int {
	value, ok := raw[key]
	if !ok || value == nil {
		return def
	}

	n, ok := asInt(value)
	if !ok {
		warns.addf("field %q has type %T, expected integer; using default %d", key, value, def)
		return def
	}

	if n < min || n > max {
		warns.addf("field %q value %d outside [%d, %d]; using default %d", key, n, min, max, def)
		return def
	}

	return n
}

// asInt converts the JSON decoder's numeric representations to an int.
// Fractional floats are rejected rather than truncated.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// listField returns the raw element slice for key. An absent key yields an
// empty slice; a present but non-list value is a contract violation.
func listField(raw map[string]any, key string) ([]any, error) {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil, nil
	}

	elems, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: field %q has type %T, expected list", ErrViolation, key, value)
	}

	return elems, nil
}

// stringListField returns the []string value for key. Non-string elements
// are dropped and reported as warnings. An absent key yields an empty
// slice; a non-list value is a contract violation.
func stringListField(raw map[string]any, key string, warns *warnings) ([]string, error) {
	elems, err := listField(raw, key)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(elems))
	for i, elem := range elems {
		s, ok := elem.(string)
		if !ok {
			warns.addf("field %q element %d has type %T, expected string; dropped", key, i, elem)
			continue
		}
		result = append(result, s)
	}

	return result, nil
}

// objectField returns the nested object for key, or nil when the key is
// absent. A present but non-object value is replaced with nil and reported
// as a warning; nested objects are lenient, not required lists.
func objectField(raw map[string]any, key string, warns *warnings) map[string]any {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil
	}

	obj, ok := value.(map[string]any)
	if !ok {
		warns.addf("field %q has type %T, expected object; ignored", key, value)
		return nil
	}

	return obj
}

// stringMapField returns the map[string]string value for key. Non-string
// values are dropped with a warning. Used for optional maps like verb
// conjugation tables.
func stringMapField(raw map[string]any, key string, warns *warnings) map[string]string {
	obj := objectField(raw, key, warns)
	if len(obj) == 0 {
		return nil
	}

	result := make(map[string]string, len(obj))
	for k, v := range obj {
		s, ok := v.(string)
		if !ok {
			warns.addf("field %q entry %q has type %T, expected string; dropped", key, k, v)
			continue
		}
		result[k] = s
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// requiredString extracts a required, non-empty string sub-field from a
// list element. The second return value reports whether the sub-field was
// usable; callers drop the element when it is not.
func requiredString(elem map[string]any, key string) (string, bool) {
	value, ok := elem[key]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// optionalString extracts an optional string sub-field from a list element,
// returning the empty string when absent or unusable.
func optionalString(elem map[string]any, key string) string {
	s, _ := elem[key].(string)
	return s
}
