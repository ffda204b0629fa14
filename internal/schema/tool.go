package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface every LLM-callable operation must satisfy.
// Implementations are immutable once registered and must never let an
// execution fault escape Execute as an error: platform failures are
// reported inside the returned string payload so the planner sees them
// as ordinary data.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this
	// tool's parameters. Optional parameters may declare "default" values,
	// which the executor applies when the planner omits them.
	Parameters() json.RawMessage
	Execute(ctx context.Context, args map[string]any) (string, error)
}
