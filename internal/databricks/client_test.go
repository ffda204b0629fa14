package databricks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lakebot/lakebot/internal/config"
)

func TestDo_SendsAuthAndBody(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(config.DatabricksConfig{Host: srv.URL + "/", Token: "dapi-secret"})

	raw, err := c.Do(context.Background(), http.MethodPost, "/api/2.0/test", map[string]any{"scope": "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"ok":true}` {
		t.Errorf("unexpected body: %s", raw)
	}
	if gotAuth != "Bearer dapi-secret" {
		t.Errorf("auth header: %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type: %q", gotContentType)
	}
	if gotBody["scope"] != "s1" {
		t.Errorf("body not forwarded: %v", gotBody)
	}
}

func TestDo_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error_code":"PERMISSION_DENIED"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(config.DatabricksConfig{Host: srv.URL, Token: "t"})

	_, err := c.Do(context.Background(), http.MethodGet, "/api/2.1/clusters/list", nil)
	if err == nil {
		t.Fatal("expected error for 403")
	}
	if !strings.Contains(err.Error(), "HTTP 403") {
		t.Errorf("error should carry status: %v", err)
	}
	if !strings.Contains(err.Error(), "PERMISSION_DENIED") {
		t.Errorf("error should carry body snippet: %v", err)
	}
}

func TestDo_UnreachableHost(t *testing.T) {
	c := NewClient(config.DatabricksConfig{Host: "http://127.0.0.1:1", Token: "t"})
	_, err := c.Do(context.Background(), http.MethodGet, "/api/2.1/clusters/list", nil)
	if err == nil {
		t.Fatal("expected network error")
	}
}
