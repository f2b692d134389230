package models

import "time"

// MaxMessageLength is the upper bound on message content, in characters.
const MaxMessageLength = 300

// Message is an anonymous text submitted to a user's inbox.
type Message struct {
	// MessageID is a UUIDv7 string, unique across all inboxes.
	MessageID string `json:"id"`

	// UserID is the owner of the inbox the message was delivered to.
	UserID int64 `json:"-"`

	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
