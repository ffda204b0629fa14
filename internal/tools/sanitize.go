package tools

// Schema fields some completion endpoints reject in function declarations.
// "additionalProperties" implies open-ended object shapes, which strict
// function-calling backends refuse.
var unsupportedSchemaFields = map[string]bool{
	"additionalProperties": true,
}

// StripUnsupported returns a copy of a decoded JSON value with unsupported
// schema fields removed at every nesting depth. The input is never mutated,
// and the transform is idempotent: applying it twice equals applying it once.
func StripUnsupported(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			if unsupportedSchemaFields[k] {
				continue
			}
			out[k] = StripUnsupported(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = StripUnsupported(child)
		}
		return out
	default:
		return v
	}
}
