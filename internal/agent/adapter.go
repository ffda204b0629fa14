package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lakebot/lakebot/internal/schema"
)

const invalidRequestAnswer = "Error: Model received invalid request format."

// ResponsesAdapter sits between the transport layer and the LoopRunner. It
// translates the external role-tagged message list into a seeded
// Conversation, runs the loop, and wraps the outcome in the outbound wire
// shape. Orchestration faults never escape this boundary: the caller always
// gets a well-formed AgentResponse.
type ResponsesAdapter struct {
	runner *LoopRunner
	prompt *PromptBuilder
}

// NewResponsesAdapter creates an adapter over the given runner and prompt
// builder.
func NewResponsesAdapter(runner *LoopRunner, prompt *PromptBuilder) *ResponsesAdapter {
	return &ResponsesAdapter{runner: runner, prompt: prompt}
}

// Respond handles one inbound request end to end. A request without an
// "input" field short-circuits to an error response before any model or
// platform call is made.
func (a *ResponsesAdapter) Respond(ctx context.Context, req schema.AgentRequest) schema.AgentResponse {
	if req.Input == nil {
		slog.Warn("inbound request missing input field")
		return schema.NewAgentResponse(invalidRequestAnswer)
	}

	conversation := schema.NewConversation(schema.NewSystemMessage(a.prompt.SystemPrompt()))
	for _, msg := range req.Input {
		switch msg.Role {
		case "system":
			conversation.AddSystem(msg.Text())
		case "user":
			conversation.AddUser(msg.Text())
		case "assistant":
			conversation.AddAssistant(msg.Text(), nil)
		default:
			slog.Warn("ignoring message with unrecognised role", "role", msg.Role)
		}
	}

	answer, err := a.runner.Run(ctx, &conversation)
	if err != nil {
		slog.Error("agent loop failed", "error", err)
		return schema.NewAgentResponse(fmt.Sprintf("Sorry, an error occurred: %v", err))
	}
	return schema.NewAgentResponse(answer)
}

// RespondText is the convenience entry point for channels and the
// scheduler: one user utterance in, final answer text out.
func (a *ResponsesAdapter) RespondText(ctx context.Context, text string) string {
	req := schema.AgentRequest{Input: []schema.InputMessage{schema.NewTextInput("user", text)}}
	resp := a.Respond(ctx, req)
	if len(resp.Output) == 0 || len(resp.Output[0].Content) == 0 {
		return ""
	}
	return resp.Output[0].Content[0].Text
}
