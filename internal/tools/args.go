package tools

import "encoding/json"

// parameterSchema is the subset of JSON Schema the executor reads when
// filling in defaults for omitted optional parameters.
type parameterSchema struct {
	Properties map[string]struct {
		Default any `json:"default"`
	} `json:"properties"`
}

// ApplyDefaults returns a new argument map with declared defaults filled in
// for every parameter the planner omitted. The caller's map is not mutated.
func ApplyDefaults(params json.RawMessage, args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}

	var ps parameterSchema
	if err := json.Unmarshal(params, &ps); err != nil {
		return out
	}
	for name, prop := range ps.Properties {
		if prop.Default == nil {
			continue
		}
		if _, present := out[name]; !present {
			out[name] = prop.Default
		}
	}
	return out
}
