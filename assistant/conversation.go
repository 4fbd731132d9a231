package assistant

import "strings"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// WelcomeMessage doubles as the language sample on the first turn, before
// the user has typed anything.
const WelcomeMessage = "Hello! I can help you create a help request or an offer of help. What would you like to do?"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is the client-owned chat state, sent whole with each request.
// The server keeps nothing between turns.
type Conversation struct {
	Intent   Intent    `json:"intent"`
	Language string    `json:"language"` // BCP 47 tag from the client, e.g. "ar", "en"
	Messages []Message `json:"messages"`
}

func (c *Conversation) Append(role, content string) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content})
}

// Transcript renders the conversation the way the prompts expect it,
// skipping system messages.
func (c *Conversation) Transcript() string {
	var sb strings.Builder
	for _, m := range c.Messages {
		if m.Role == RoleSystem {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		if m.Role == RoleUser {
			sb.WriteString("User: ")
		} else {
			sb.WriteString("Assistant: ")
		}
		sb.WriteString(m.Content)
	}
	return sb.String()
}

// LanguageSample returns the most recent user message as a sample of the
// user's language, or the canned welcome when the transcript has none.
func (c *Conversation) LanguageSample() string {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleUser && strings.TrimSpace(c.Messages[i].Content) != "" {
			return c.Messages[i].Content
		}
	}
	return WelcomeMessage
}
