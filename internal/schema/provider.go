package schema

import "context"

// ChatOptions configures a single LLM chat request.
type ChatOptions struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

func NewChatOptions(model string, maxTokens int, temperature float64) ChatOptions {
	return ChatOptions{Model: model, MaxTokens: maxTokens, Temperature: temperature}
}

// LLMResponse is the normalised response from any LLM provider: either a
// terminal answer (Content, no ToolCalls) or a request to invoke tools.
type LLMResponse struct {
	Content      string
	ToolCalls    []ToolCall
	FinishReason string
	Usage        map[string]int
}

// HasToolCalls reports whether the response contains at least one tool call.
func (r LLMResponse) HasToolCalls() bool { return len(r.ToolCalls) > 0 }

// LLMProvider is the planner-facing contract every LLM backend satisfies.
// Chat performs exactly one synchronous completion call; it never retries.
type LLMProvider interface {
	Chat(ctx context.Context, conversation Conversation, tools []map[string]any, opts ChatOptions) (LLMResponse, error)
	DefaultModel() string
}
