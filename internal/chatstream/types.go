// Package chatstream is the client side of the docs assistant: it sends a
// conversation to the chat relay, decodes the streamed reply and keeps the
// chat panel's session state.
package chatstream

// Role identifies who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// State is the phase of a session's request lifecycle.
type State int

const (
	StateIdle State = iota
	StateSending
	StateStreaming
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateStreaming:
		return "streaming"
	default:
		return "unknown"
	}
}

// Suggestions are starter questions shown in an empty chat panel.
var Suggestions = []string{
	"How do I install the SDK?",
	"What are verifiable credentials?",
	"Show me a quick start example",
}
