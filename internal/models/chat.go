package models

// ChatRole represents the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn in an assistant conversation. Messages live
// only in the session's transient state and are never persisted.
type ChatMessage struct {
	ID      string   `json:"id"`
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
