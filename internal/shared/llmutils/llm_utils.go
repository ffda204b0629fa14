// Package llmutils holds small helpers shared between the agent loop,
// channels, and logging call sites.
package llmutils

import (
	"fmt"
	"strings"

	"github.com/lakebot/lakebot/internal/schema"
)

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. max values below 4 are treated as 4.
func Truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// ToolHint renders a one-line human-readable summary of a tool call, used
// by channels that surface progress to the user.
func ToolHint(call schema.ToolCall) string {
	if len(call.Arguments) == 0 {
		return fmt.Sprintf("running %s", call.Name)
	}
	parts := make([]string, 0, len(call.Arguments))
	for key, value := range call.Arguments {
		parts = append(parts, fmt.Sprintf("%s=%v", key, value))
	}
	return fmt.Sprintf("running %s (%s)", call.Name, Truncate(strings.Join(parts, ", "), 120))
}
