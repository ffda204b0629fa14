// Package bus defines the message types that flow between chat channels and
// the agent core, and the in-process bus connecting them.
package bus

import "time"

// InboundMessage is a message received from a chat channel.
type InboundMessage struct {
	Channel   string // "cli", "slack", "telegram", "scheduler"
	SenderID  string // user identifier within the channel
	ChatID    string // chat / channel / DM identifier
	Content   string // message text
	Timestamp time.Time
	Metadata  map[string]any // channel-specific extras (thread_ts, message_id, ...)
}

// NewInboundMessage creates an InboundMessage with Timestamp set to now.
func NewInboundMessage(channel, senderID, chatID, content string) InboundMessage {
	return InboundMessage{
		Channel:   channel,
		SenderID:  senderID,
		ChatID:    chatID,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Preview returns a short snippet of the message content for logging.
func (m InboundMessage) Preview() string {
	if len(m.Content) > 80 {
		return m.Content[:80] + "..."
	}
	return m.Content
}

// OutboundMessage is a response to be sent back through a channel.
type OutboundMessage struct {
	Channel  string
	ChatID   string
	Content  string
	Metadata map[string]any
}

// MessageBus decouples chat channels from the agent core.
//
// Channels push InboundMessages; the agent consumes them, processes, and
// pushes OutboundMessages back for the channel manager to route. Both
// directions use buffered channels so senders never block on a slow consumer.
type MessageBus struct {
	Inbound  chan InboundMessage  // channels → agent
	Outbound chan OutboundMessage // agent → channels
}

func NewMessageBus(bufSize int) *MessageBus {
	return &MessageBus{
		Inbound:  make(chan InboundMessage, bufSize),
		Outbound: make(chan OutboundMessage, bufSize),
	}
}
