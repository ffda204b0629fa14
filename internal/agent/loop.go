package agent

import (
	"context"
	"log/slog"

	"github.com/lakebot/lakebot/internal/bus"
)

// AgentLoop consumes inbound channel messages from the bus, runs each one
// through the adapter, and publishes the answer back on the outbound queue.
// Each message gets a fresh conversation; no history is carried between
// messages.
type AgentLoop struct {
	adapter *ResponsesAdapter
	bus     *bus.MessageBus
}

// NewAgentLoop creates an AgentLoop bound to the shared message bus.
func NewAgentLoop(adapter *ResponsesAdapter, mb *bus.MessageBus) *AgentLoop {
	return &AgentLoop{adapter: adapter, bus: mb}
}

// Run blocks, draining the inbound queue until ctx is cancelled. Messages
// are handled one at a time: the whole planner/tool loop completes before
// the next message is read.
func (l *AgentLoop) Run(ctx context.Context) error {
	slog.Info("agent loop started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("agent loop stopping")
			return ctx.Err()
		case msg := <-l.bus.Inbound:
			slog.Info("processing message", "channel", msg.Channel, "sender", msg.SenderID, "preview", msg.Preview())
			answer := l.adapter.RespondText(ctx, msg.Content)
			l.bus.Outbound <- bus.OutboundMessage{
				Channel:  msg.Channel,
				ChatID:   msg.ChatID,
				Content:  answer,
				Metadata: msg.Metadata,
			}
		}
	}
}

// ProcessDirect runs one prompt through the agent synchronously, bypassing
// the bus. Used by the chat command and the scheduler.
func (l *AgentLoop) ProcessDirect(ctx context.Context, prompt string) string {
	return l.adapter.RespondText(ctx, prompt)
}
