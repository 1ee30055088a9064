package genai

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// StructuredResult is the answer of a structured-output call. Valid reports
// whether Text conforms to the requested schema.
type StructuredResult struct {
	Text       string   `json:"text"`
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
	Usage      Usage    `json:"usage"`
}

// ValidateAgainstSchema checks text against schema and returns one line per
// violation. The provider spells types in upper case ("OBJECT", "STRING"); they
// are lowered before validation so the same schema serves both sides.
func ValidateAgainstSchema(schema map[string]any, text string) []string {
	if len(schema) == 0 {
		if !json.Valid([]byte(text)) {
			return []string{"response is not valid JSON"}
		}
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(normalizeSchema(schema)),
		gojsonschema.NewStringLoader(text),
	)
	if err != nil {
		return []string{err.Error()}
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return violations
}

func normalizeSchema(node any) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			if key == "type" {
				if s, ok := val.(string); ok {
					out[key] = strings.ToLower(s)
					continue
				}
			}
			out[key] = normalizeSchema(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = normalizeSchema(val)
		}
		return out
	default:
		return v
	}
}
