// Package agent implements the planner/tool orchestration loop and the
// request/response adapter around it.
package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lakebot/lakebot/internal/schema"
	"github.com/lakebot/lakebot/internal/shared/llmutils"
	"github.com/lakebot/lakebot/internal/tools"
)

// maxTurnsAnswer is the terminal text returned when the planner keeps
// requesting tools past the configured turn budget.
const maxTurnsAnswer = "I've reached the maximum number of tool turns without a final answer."

// LoopRunner drives one conversation through the planner and tool-execution
// loop until the planner yields a terminal answer.
//
// The loop alternates two states: Planning (one chat-completion call with
// the tool declarations attached) and Executing (resolving every requested
// tool call, in request order, before planning again). Tool-level faults
// come back as ordinary result payloads; only an unknown tool name or a
// planner transport fault aborts the turn.
type LoopRunner struct {
	provider schema.LLMProvider
	registry *tools.Registry
	settings schema.AgentSettings
}

// NewLoopRunner creates a LoopRunner over the given provider and registry.
func NewLoopRunner(provider schema.LLMProvider, registry *tools.Registry, settings schema.AgentSettings) *LoopRunner {
	return &LoopRunner{provider: provider, registry: registry, settings: settings}
}

// Run mutates conversation in place, appending assistant and tool messages
// as the loop progresses, and returns the final answer text. Planner faults
// and unknown tool names propagate as errors for the adapter to absorb.
func (r *LoopRunner) Run(ctx context.Context, conversation *schema.Conversation) (string, error) {
	definitions := r.registry.Definitions()
	opts := schema.NewChatOptions(r.settings.Model, r.settings.MaxTokens, r.settings.Temperature)

	for turn := 0; turn < r.settings.MaxTurns; turn++ {
		resp, err := r.provider.Chat(ctx, *conversation, definitions, opts)
		if err != nil {
			return "", fmt.Errorf("planner: %w", err)
		}

		if !resp.HasToolCalls() {
			conversation.AddAssistant(resp.Content, nil)
			return resp.Content, nil
		}

		conversation.AddAssistant(resp.Content, resp.ToolCalls)

		// Every pending call is resolved, in request order, before the
		// next planner call.
		for _, call := range resp.ToolCalls {
			result, err := r.execute(ctx, call)
			if err != nil {
				return "", err
			}
			conversation.AddToolResult(call.ID, call.Name, result)
		}
	}

	slog.Warn("turn budget exhausted", "maxTurns", r.settings.MaxTurns)
	conversation.AddAssistant(maxTurnsAnswer, nil)
	return maxTurnsAnswer, nil
}

// execute resolves and invokes one tool call. Declared defaults fill in
// omitted optional arguments before invocation.
func (r *LoopRunner) execute(ctx context.Context, call schema.ToolCall) (string, error) {
	tool, err := r.registry.Resolve(call.Name)
	if err != nil {
		return "", err
	}

	args := tools.ApplyDefaults(tool.Parameters(), call.Arguments)
	slog.Info("tool call", "id", call.ID, "hint", llmutils.ToolHint(schema.ToolCall{ID: call.ID, Name: call.Name, Arguments: args}))

	result, err := tool.Execute(ctx, args)
	if err != nil {
		// Tools report platform faults in their payloads; an error here
		// means the tool itself misbehaved. Feed it back as data anyway.
		result = fmt.Sprintf("Error: %v", err)
	}
	return result, nil
}
