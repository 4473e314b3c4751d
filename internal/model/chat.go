package model

import "time"

// Role identifies the speaker of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage is one turn exchanged with a language model collaborator.
type ChatMessage struct {
	Role    Role
	Content string
}

// Speaker is the role stored on a persisted chat log line.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// ChatSession groups the logs of one conversation.
type ChatSession struct {
	ID          string // UUID
	UserID      int64
	Title       string
	CreatedAt   time.Time
	LastMessage string
	LastDate    *time.Time
}

// ChatLog is one persisted line of a conversation.
type ChatLog struct {
	ID        int64
	SessionID string
	UserID    int64
	Role      Speaker
	Message   string
	URL       string // map link of a recommended restaurant
	Name      string // restaurant name
	Food      string // recommended food, used to avoid repeats
	CreatedAt time.Time
}

// ToChatMessage maps a persisted line onto the model-facing role set.
func (l ChatLog) ToChatMessage() ChatMessage {
	role := RoleUser
	if l.Role == SpeakerBot {
		role = RoleAssistant
	}
	return ChatMessage{Role: role, Content: l.Message}
}
