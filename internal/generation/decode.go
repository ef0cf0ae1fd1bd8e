package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeObject extracts a JSON object from a raw backend response. Backends
// asked for JSON still wrap it in markdown code fences or surrounding prose
// often enough that decoding proceeds in two steps: strip any fences, then
// cut the text down to the outermost brace pair before unmarshalling.
func DecodeObject(raw string) (map[string]any, error) {
	text := stripFences(raw)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrInvalidResponse)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return obj, nil
}

// stripFences removes a markdown code fence (``` or ```json) wrapping the
// response, if present. Text without fences passes through unchanged.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
