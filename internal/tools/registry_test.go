package tools

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

type fakeTool struct {
	name   string
	params string
}

func (f *fakeTool) Name() string        { return f.name }
func (f *fakeTool) Description() string { return "fake tool" }
func (f *fakeTool) Parameters() json.RawMessage {
	if f.params == "" {
		return json.RawMessage(`{"type": "object", "properties": {}}`)
	}
	return json.RawMessage(f.params)
}
func (f *fakeTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	return "ok", nil
}

func TestRegister_Duplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&fakeTool{name: "a"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := r.Register(&fakeTool{name: "a"})
	if !errors.Is(err, ErrDuplicateTool) {
		t.Fatalf("expected ErrDuplicateTool, got %v", err)
	}
}

func TestResolve_Unknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve("nope")
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}

func TestAll_RegistrationOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		if err := r.Register(&fakeTool{name: name}); err != nil {
			t.Fatal(err)
		}
	}
	var got []string
	for _, tool := range r.All() {
		got = append(got, tool.Name())
	}
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order: got %v want %v", got, want)
	}
}

func TestDefinitions_StripsUnsupportedFields(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&fakeTool{
		name: "nested",
		params: `{
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"outer": {
					"type": "object",
					"additionalProperties": false,
					"properties": {
						"inner": {"type": "array", "items": {"type": "object", "additionalProperties": true}}
					}
				}
			}
		}`,
	})
	if err != nil {
		t.Fatal(err)
	}

	defs := r.Definitions()
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}

	data, err := json.Marshal(defs)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if containsKey(decoded, "additionalProperties") {
		t.Errorf("additionalProperties survived at some depth: %s", data)
	}

	fn := defs[0]["function"].(map[string]any)
	if fn["name"] != "nested" {
		t.Errorf("name: %v", fn["name"])
	}
}

// containsKey walks a decoded JSON value looking for key at any depth.
func containsKey(v any, key string) bool {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			if k == key || containsKey(child, key) {
				return true
			}
		}
	case []any:
		for _, child := range val {
			if containsKey(child, key) {
				return true
			}
		}
	}
	return false
}

func TestDefinitions_BadSchemaDegrades(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&fakeTool{name: "broken", params: `{nope`}); err != nil {
		t.Fatal(err)
	}
	defs := r.Definitions()
	fn := defs[0]["function"].(map[string]any)
	params := fn["parameters"].(map[string]any)
	if params["type"] != "object" {
		t.Errorf("expected empty object schema fallback, got %v", params)
	}
}
