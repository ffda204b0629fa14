// Package tools holds the administrative tool catalog: the registry the
// agent loop dispatches through, and the Databricks REST wrappers exposed
// to the planner as function-calling tools.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lakebot/lakebot/internal/schema"
)

var (
	// ErrDuplicateTool is returned by Register when a tool with the same
	// name is already present.
	ErrDuplicateTool = errors.New("duplicate tool name")
	// ErrUnknownTool is returned by Resolve for names never registered.
	ErrUnknownTool = errors.New("unknown tool")
)

// Registry holds the named tool set. Registration happens once at startup;
// after that the registry is read-only and shared across requests.
type Registry struct {
	tools map[string]schema.Tool
	order []string // registration order, for stable listings
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]schema.Tool)}
}

// Register adds t to the registry. Names are unique across the registry.
func (r *Registry) Register(t schema.Tool) error {
	name := t.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}
	r.tools[name] = t
	r.order = append(r.order, name)
	return nil
}

// Resolve returns the tool registered under name.
func (r *Registry) Resolve(name string) (schema.Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t, nil
}

// All returns every registered tool in registration order.
func (r *Registry) All() []schema.Tool {
	out := make([]schema.Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.order) }

// Definitions renders every tool in OpenAI function-calling format, with
// provider-unsupported schema fields stripped from the parameter schemas.
func (r *Registry) Definitions() []map[string]any {
	defs := make([]map[string]any, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        t.Name(),
				"description": t.Description(),
				"parameters":  sanitizedParameters(t.Parameters()),
			},
		})
	}
	return defs
}

// sanitizedParameters decodes a tool's parameter schema and applies the
// strip pass. An undecodable schema degrades to an empty object schema so a
// bad tool definition can never break the whole declaration list.
func sanitizedParameters(raw json.RawMessage) any {
	var params any
	if err := json.Unmarshal(raw, &params); err != nil {
		return map[string]any{"type": "object", "properties": map[string]any{}}
	}
	return StripUnsupported(params)
}
