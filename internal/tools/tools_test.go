package tools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lakebot/lakebot/internal/config"
	"github.com/lakebot/lakebot/internal/databricks"
)

// newTestClient starts a mock workspace and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *databricks.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return databricks.NewClient(config.DatabricksConfig{Host: srv.URL, Token: "dapi-test"})
}

// unreachableClient returns a client pointed at a port nothing listens on.
func unreachableClient() *databricks.Client {
	return databricks.NewClient(config.DatabricksConfig{Host: "http://127.0.0.1:1", Token: "dapi-test"})
}

// decodeResult unmarshals a tool's string result into a generic map.
func decodeResult(t *testing.T, result string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal([]byte(result), &out); err != nil {
		t.Fatalf("tool result is not JSON: %v\n%s", err, result)
	}
	return out
}

// assertErrorPayload checks the two-key error contract shared by all tools.
func assertErrorPayload(t *testing.T, result, toolName string) {
	t.Helper()
	out := decodeResult(t, result)
	if _, ok := out["error"]; !ok {
		t.Errorf("missing 'error' key: %s", result)
	}
	if out["tool"] != toolName {
		t.Errorf("'tool' key = %v, want %q", out["tool"], toolName)
	}
}
