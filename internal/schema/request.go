package schema

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// AgentRequest is the inbound wire payload: an ordered list of role-tagged
// messages. Input stays nil when the "input" field is absent, which the
// adapter treats as a malformed request.
type AgentRequest struct {
	Input []InputMessage `json:"input"`
}

// InputMessage is one element of the inbound "input" list. Content is
// either a flat JSON string or a list of typed content parts.
type InputMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// NewTextInput builds an InputMessage whose content is a flat string.
func NewTextInput(role, text string) InputMessage {
	raw, _ := json.Marshal(text)
	return InputMessage{Role: role, Content: raw}
}

// contentPart is one element of a structured content list.
type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Text flattens the message content to plain text. Structured parts are
// space-joined in order; parts without text are dropped.
func (m InputMessage) Text() string {
	if len(m.Content) == 0 {
		return ""
	}

	var flat string
	if err := json.Unmarshal(m.Content, &flat); err == nil {
		return flat
	}

	var parts []contentPart
	if err := json.Unmarshal(m.Content, &parts); err != nil {
		return ""
	}
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, " ")
}

// OutputContent is one typed content block of an output item.
type OutputContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// OutputItem is one message in the outbound response.
type OutputItem struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Role    string          `json:"role"`
	Content []OutputContent `json:"content"`
}

// AgentResponse is the outbound wire payload. ID is freshly generated per
// request; Output carries exactly one assistant message.
type AgentResponse struct {
	ID     string       `json:"id"`
	Output []OutputItem `json:"output"`
}

// NewAgentResponse wraps final text in the outbound wire shape with fresh
// response and output-item identifiers.
func NewAgentResponse(text string) AgentResponse {
	return AgentResponse{
		ID: uuid.NewString(),
		Output: []OutputItem{{
			Type: "message",
			ID:   uuid.NewString(),
			Role: "assistant",
			Content: []OutputContent{{
				Type: "output_text",
				Text: text,
			}},
		}},
	}
}
