package schema

// Conversation is the ordered message history for one request/response
// cycle. It is created per inbound request, mutated in place as the loop
// progresses, and discarded once the final response is produced. Order is
// chronological and replay-sensitive.
type Conversation struct {
	Messages []Message
}

// NewConversation returns a Conversation seeded with the given messages.
// Called with no arguments it returns an empty Conversation ready for use.
func NewConversation(msgs ...Message) Conversation {
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return Conversation{Messages: out}
}

// AddSystem appends a system message.
func (c *Conversation) AddSystem(content string) {
	c.Messages = append(c.Messages, NewSystemMessage(content))
}

// AddUser appends a user message.
func (c *Conversation) AddUser(content string) {
	c.Messages = append(c.Messages, NewUserMessage(content))
}

// AddAssistant appends an assistant message with optional tool calls.
func (c *Conversation) AddAssistant(content string, toolCalls []ToolCall) {
	c.Messages = append(c.Messages, NewAssistantMessage(content, toolCalls))
}

// AddToolResult appends a tool-result message correlated to toolCallID.
func (c *Conversation) AddToolResult(toolCallID, toolName, result string) {
	c.Messages = append(c.Messages, NewToolResultMessage(toolCallID, toolName, result))
}

// Last returns the most recent message, or a zero Message when empty.
func (c *Conversation) Last() Message {
	if len(c.Messages) == 0 {
		return Message{}
	}
	return c.Messages[len(c.Messages)-1]
}

// Clone returns a copy of c with an independent backing slice.
func (c *Conversation) Clone() Conversation {
	cloned := make([]Message, len(c.Messages))
	copy(cloned, c.Messages)
	return Conversation{Messages: cloned}
}
