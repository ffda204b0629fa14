package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/lakebot/lakebot/internal/agent"
	"github.com/lakebot/lakebot/internal/config"
	"github.com/lakebot/lakebot/internal/schema"
	"github.com/lakebot/lakebot/internal/tools"
)

// cannedProvider always returns the same terminal answer.
type cannedProvider struct {
	answer string
	calls  int
}

func (p *cannedProvider) Chat(context.Context, schema.Conversation, []map[string]any, schema.ChatOptions) (schema.LLMResponse, error) {
	p.calls++
	return schema.LLMResponse{Content: p.answer}, nil
}

func (p *cannedProvider) DefaultModel() string { return "test-model" }

func newTestServer(t *testing.T, provider *cannedProvider) (*httptest.Server, *Server) {
	t.Helper()
	runner := agent.NewLoopRunner(provider, tools.NewRegistry(),
		schema.NewAgentSettings("test-model", 5, 0, 1024))
	adapter := agent.NewResponsesAdapter(runner, agent.NewPromptBuilder(t.TempDir()))
	srv := NewServer(adapter, config.GatewayConfig{Host: "127.0.0.1", Port: 0})
	ts := httptest.NewServer(srv.http.Handler)
	t.Cleanup(ts.Close)
	return ts, srv
}

func TestHandleResponses_RoundTrip(t *testing.T) {
	provider := &cannedProvider{answer: "two clusters running"}
	ts, _ := newTestServer(t, provider)

	body := `{"input": [{"role": "user", "content": "how many clusters?"}]}`
	resp, err := http.Post(ts.URL+"/v1/responses", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out schema.AgentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Output) != 1 || out.Output[0].Content[0].Text != "two clusters running" {
		t.Fatalf("response = %+v", out)
	}
}

func TestHandleResponses_MissingInputStillHTTP200(t *testing.T) {
	provider := &cannedProvider{answer: "never"}
	ts, _ := newTestServer(t, provider)

	resp, err := http.Post(ts.URL+"/v1/responses", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 with error text in body", resp.StatusCode)
	}
	if provider.calls != 0 {
		t.Fatalf("provider called %d times, want 0", provider.calls)
	}

	var out schema.AgentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out.Output[0].Content[0].Text, "invalid request format") {
		t.Fatalf("text = %q", out.Output[0].Content[0].Text)
	}
}

func TestHandleResponses_BadJSON(t *testing.T) {
	ts, _ := newTestServer(t, &cannedProvider{answer: "x"})

	resp, err := http.Post(ts.URL+"/v1/responses", "application/json", strings.NewReader(`{not json`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleHealthz(t *testing.T) {
	ts, _ := newTestServer(t, &cannedProvider{answer: "x"})

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestHandleWS_ChatTurn(t *testing.T) {
	ts, _ := newTestServer(t, &cannedProvider{answer: "pong"})

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(wsRequest{Text: "ping"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out wsResponse
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Text != "pong" {
		t.Fatalf("answer = %q", out.Text)
	}
}
