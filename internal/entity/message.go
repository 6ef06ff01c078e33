package entity

import "time"

// Message is a direct message between two identities.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Attachment *string   `json:"attachment,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Between reports whether m was exchanged by a and b, in either direction.
func (m Message) Between(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}

type NewMessage struct {
	ReceiverID string
	Content    string
	Attachment *string
}

// Conversation is the thread of the viewer with one contact, oldest message first.
type Conversation struct {
	Contact     Identity  `json:"contact"`
	Messages    []Message `json:"messages"`
	UnreadCount int       `json:"unreadCount"`
}
