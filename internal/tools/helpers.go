package tools

import (
	"encoding/json"
	"fmt"
)

// errorResult is the payload every tool returns when the platform call
// fails. The planner sees it as ordinary tool output and can narrate it
// back to the user or retry with different arguments.
type errorResult struct {
	Error string `json:"error"`
	Tool  string `json:"tool"`
}

// successResult is the payload mutating tools return on success.
type successResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// errorPayload serialises a platform fault for the named tool.
func errorPayload(tool string, err error) string {
	out, _ := json.Marshal(errorResult{
		Error: fmt.Sprintf("Databricks API Error: %v", err),
		Tool:  tool,
	})
	return string(out)
}

// successPayload serialises a success confirmation message.
func successPayload(format string, a ...any) string {
	out, _ := json.Marshal(successResult{
		Status:  "Success",
		Message: fmt.Sprintf(format, a...),
	})
	return string(out)
}

// extractList pulls the named list field out of a JSON envelope and returns
// it serialised. A missing or empty field yields "[]".
func extractList(raw []byte, field string) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "[]"
	}
	list, ok := envelope[field]
	if !ok {
		return "[]"
	}
	return string(list)
}

// stringArg reads a string argument, returning "" when absent or mistyped.
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// intArg reads an integer argument. JSON decoding yields float64 for
// numbers, so both forms are accepted.
func intArg(args map[string]any, key string) (int64, bool) {
	switch v := args[key].(type) {
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

// boolArg reads a boolean argument, returning def when absent or mistyped.
func boolArg(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

// setIfPresent copies args[key] into body when the planner supplied it.
func setIfPresent(body, args map[string]any, key string) {
	if v, ok := args[key]; ok && v != nil {
		body[key] = v
	}
}
