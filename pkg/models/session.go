package models

import (
	"time"

	"github.com/lorekeep/lorekeep/ent"
)

// CreateSessionRequest starts a public chat session
type CreateSessionRequest struct {
	// InitialMessage, when present, triggers an immediate assistant reply
	InitialMessage string `json:"initial_message,omitempty"`
}

// SessionResponse describes a created session
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Greeting  string    `json:"greeting,omitempty"`
	// InitialReply carries the assistant answer to InitialMessage, if any
	InitialReply string `json:"initial_reply,omitempty"`
}

// SessionDetail is a session with its message history
type SessionDetail struct {
	Session  *ent.ChatSession `json:"session"`
	Messages []*ent.Message   `json:"messages"`
}

// SendMessageRequest is the body of a streamed chat message
type SendMessageRequest struct {
	Message string `json:"message"`
}
