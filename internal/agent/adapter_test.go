package agent

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lakebot/lakebot/internal/schema"
)

func newTestAdapter(t *testing.T, provider *scriptedProvider, toolset ...schema.Tool) *ResponsesAdapter {
	t.Helper()
	runner := NewLoopRunner(provider, newTestRegistry(t, toolset...), testSettings())
	return NewResponsesAdapter(runner, NewPromptBuilder(t.TempDir()))
}

func TestRespond_MissingInputShortCircuits(t *testing.T) {
	provider := &scriptedProvider{responses: []schema.LLMResponse{{Content: "never"}}}
	adapter := newTestAdapter(t, provider)

	resp := adapter.Respond(context.Background(), schema.AgentRequest{})

	if len(provider.calls) != 0 {
		t.Fatalf("provider called %d times, want 0", len(provider.calls))
	}
	got := resp.Output[0].Content[0].Text
	if got != invalidRequestAnswer {
		t.Fatalf("text = %q, want %q", got, invalidRequestAnswer)
	}
}

func TestRespond_RoundTripVerbatim(t *testing.T) {
	provider := &scriptedProvider{responses: []schema.LLMResponse{{Content: "X"}}}
	adapter := newTestAdapter(t, provider)

	req := schema.AgentRequest{Input: []schema.InputMessage{schema.NewTextInput("user", "X")}}
	resp := adapter.Respond(context.Background(), req)

	if resp.ID == "" {
		t.Error("response ID not generated")
	}
	if len(resp.Output) != 1 {
		t.Fatalf("output items = %d, want 1", len(resp.Output))
	}
	item := resp.Output[0]
	if item.Type != "message" || item.Role != "assistant" || item.ID == "" {
		t.Fatalf("output item = %+v", item)
	}
	if len(item.Content) != 1 || item.Content[0].Type != "output_text" || item.Content[0].Text != "X" {
		t.Fatalf("content = %+v, want single output_text %q", item.Content, "X")
	}
}

func TestRespond_ContentPartsJoined(t *testing.T) {
	provider := &scriptedProvider{responses: []schema.LLMResponse{{Content: "ok"}}}
	adapter := newTestAdapter(t, provider)

	parts := json.RawMessage(`[
		{"type": "input_text", "text": "list"},
		{"type": "input_image", "image_url": "https://example.com/x.png"},
		{"type": "input_text", "text": "clusters"}
	]`)
	req := schema.AgentRequest{Input: []schema.InputMessage{{Role: "user", Content: parts}}}
	adapter.Respond(context.Background(), req)

	if len(provider.calls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(provider.calls))
	}
	var userText string
	for _, m := range provider.calls[0].Messages {
		if m.Role == "user" {
			userText = m.Content
		}
	}
	if userText != "list clusters" {
		t.Fatalf("user text = %q, want %q", userText, "list clusters")
	}
}

func TestRespond_UnknownRoleSkipped(t *testing.T) {
	provider := &scriptedProvider{responses: []schema.LLMResponse{{Content: "ok"}}}
	adapter := newTestAdapter(t, provider)

	req := schema.AgentRequest{Input: []schema.InputMessage{
		schema.NewTextInput("tool", "stale result"),
		schema.NewTextInput("user", "hello"),
	}}
	adapter.Respond(context.Background(), req)

	conv := provider.calls[0]
	// System prompt plus the single user message; the tool-role entry is
	// ignored during translation.
	if len(conv.Messages) != 2 {
		t.Fatalf("conversation length = %d, want 2", len(conv.Messages))
	}
	if conv.Messages[0].Role != "system" || conv.Messages[1].Role != "user" {
		t.Fatalf("roles = %s, %s", conv.Messages[0].Role, conv.Messages[1].Role)
	}
}

func TestRespond_LoopErrorWrapped(t *testing.T) {
	provider := &scriptedProvider{responses: []schema.LLMResponse{
		{ToolCalls: []schema.ToolCall{{ID: "c1", Name: "no_such_tool"}}},
	}}
	adapter := newTestAdapter(t, provider)

	req := schema.AgentRequest{Input: []schema.InputMessage{schema.NewTextInput("user", "go")}}
	resp := adapter.Respond(context.Background(), req)

	got := resp.Output[0].Content[0].Text
	if !strings.HasPrefix(got, "Sorry, an error occurred:") {
		t.Fatalf("text = %q, want error wrapper", got)
	}
	if !strings.Contains(got, "no_such_tool") {
		t.Fatalf("text %q should name the unknown tool", got)
	}
}

func TestRespondText(t *testing.T) {
	provider := &scriptedProvider{responses: []schema.LLMResponse{{Content: "forty-two"}}}
	adapter := newTestAdapter(t, provider)

	if got := adapter.RespondText(context.Background(), "meaning of life"); got != "forty-two" {
		t.Fatalf("RespondText = %q", got)
	}
}
