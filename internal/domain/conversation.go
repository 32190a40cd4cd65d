package domain

import "time"

type MessageRole string

const (
	MessageRoleReporter     MessageRole = "reporter"
	MessageRoleGovernment   MessageRole = "government"
	MessageRoleCitizenReply MessageRole = "citizen-reply"
)

// Message is one rendered line of a conversation.
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Text      string      `json:"text"`
	AuthorID  string      `json:"author_id"`
	CreatedAt time.Time   `json:"created_at"`
}

// Conversation is a thread summary for the reporter's list view.
type Conversation struct {
	Report         Report    `json:"report"`
	ResponseCount  int       `json:"response_count"`
	ReplyCount     int       `json:"reply_count"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
