package enhancer

import "strings"

type (
	MessageRole string
	ContentKind string
)

const (
	RoleUser MessageRole = "user"
)

const (
	ContentText ContentKind = "text"
)

// ContentBlock is one typed part of a message.
type ContentBlock struct {
	Type ContentKind `json:"type"`
	Text string      `json:"text,omitempty"`
}

// Message is an abstraction over a "prompt".
type Message struct {
	Role    MessageRole    `json:"role"`
	Content []ContentBlock `json:"content"`
}

// UserMessage builds a user message holding a single text block.
func UserMessage(text string) Message {
	return Message{
		Role:    RoleUser,
		Content: []ContentBlock{{Type: ContentText, Text: text}},
	}
}

// TextContent returns the concatenation of all text blocks in the message.
func (m Message) TextContent() string {
	var sb strings.Builder

	for _, block := range m.Content {
		if block.Type == ContentText {
			sb.WriteString(block.Text)
		}
	}

	return sb.String()
}
