package entity

import "time"

type EventType string

const (
	EventRequestSubmitted    EventType = "request.submitted"
	EventRequestDecided      EventType = "request.decided"
	EventNotificationCreated EventType = "notification.created"
	EventMessageSent         EventType = "message.sent"
)

type Event struct {
	Type         EventType     `json:"type"`
	Request      *Request      `json:"request,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
	Message      *Message      `json:"message,omitempty"`
	At           time.Time     `json:"at"`

	// Audience lists the identity IDs allowed to observe the event.
	Audience []string `json:"-"`
}

func (e Event) VisibleTo(identityID string) bool {
	for _, id := range e.Audience {
		if id == identityID {
			return true
		}
	}

	return false
}
