package tools

import (
	"encoding/json"
	"testing"
)

func TestApplyDefaults_FillsOmitted(t *testing.T) {
	params := json.RawMessage(`{
		"type": "object",
		"properties": {
			"limit": {"type": "integer", "default": 20},
			"expand_tasks": {"type": "boolean", "default": false},
			"name": {"type": "string"}
		},
		"required": []
	}`)

	args := ApplyDefaults(params, map[string]any{"name": "etl"})
	if args["limit"] != float64(20) && args["limit"] != 20 {
		// json.Unmarshal of the schema yields float64 defaults.
		t.Errorf("limit default not applied: %v", args["limit"])
	}
	if args["expand_tasks"] != false {
		t.Errorf("expand_tasks default not applied: %v", args["expand_tasks"])
	}
	if args["name"] != "etl" {
		t.Errorf("supplied arg lost: %v", args["name"])
	}
}

func TestApplyDefaults_DoesNotOverrideSupplied(t *testing.T) {
	params := json.RawMessage(`{
		"properties": {"active": {"type": "boolean", "default": true}}
	}`)

	args := ApplyDefaults(params, map[string]any{"active": false})
	if args["active"] != false {
		t.Errorf("supplied value overridden: %v", args["active"])
	}
}

func TestApplyDefaults_DoesNotMutateCaller(t *testing.T) {
	params := json.RawMessage(`{"properties": {"x": {"default": 1}}}`)
	in := map[string]any{"y": 2}
	_ = ApplyDefaults(params, in)
	if _, ok := in["x"]; ok {
		t.Error("caller map was mutated")
	}
}
