package entity

import "time"

// Chat roles stored in a session's history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of the AI mentor conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the server-side state behind a login cookie.
// The AI mentor history lives here and is dropped with the session.
type Session struct {
	ID          string        `json:"id"`
	UserID      uint          `json:"user_id"`
	DisplayName string        `json:"display_name"`
	History     []ChatMessage `json:"history"`
	CreatedAt   time.Time     `json:"created_at"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// ResetHistory drops all chat turns.
func (s *Session) ResetHistory() {
	s.History = []ChatMessage{}
}

// Append adds a chat turn to the history.
func (s *Session) Append(role, content string) {
	s.History = append(s.History, ChatMessage{Role: role, Content: content})
}
