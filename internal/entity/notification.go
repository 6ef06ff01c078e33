package entity

import "time"

type NotificationCategory string

const (
	CategoryMessage  NotificationCategory = "message"
	CategoryLeave    NotificationCategory = "leave"
	CategoryAdvance  NotificationCategory = "advance"
	CategoryNews     NotificationCategory = "news"
	CategoryDocument NotificationCategory = "document"
)

func (c NotificationCategory) Valid() bool {
	switch c {
	case CategoryMessage, CategoryLeave, CategoryAdvance, CategoryNews, CategoryDocument:
		return true
	default:
		return false
	}
}

type Notification struct {
	ID        string               `json:"id"`
	UserID    string               `json:"userId"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Category  NotificationCategory `json:"category"`
	Read      bool                 `json:"read"`
	RelatedID *string              `json:"relatedId,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

// Feed is the per-user view over the registry.
type Feed struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}

func UnreadCount(notifications []Notification) int {
	n := 0

	for _, v := range notifications {
		if !v.Read {
			n++
		}
	}

	return n
}
