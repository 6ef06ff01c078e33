package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

// NotificationRepository is the global notification list. Entries keep their insertion order.
type NotificationRepository struct {
	mu            sync.RWMutex
	notifications []entity.Notification
}

func NewNotificationRepository(seed []entity.Notification) *NotificationRepository {
	return &NotificationRepository{notifications: cloneNotifications(seed)}
}

func (r *NotificationRepository) NotificationsByUser(_ context.Context, userID string) ([]entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]entity.Notification, 0)

	for _, n := range r.notifications {
		if n.UserID == userID {
			res = append(res, cloneNotification(n))
		}
	}

	return res, nil
}

// MarkRead flags a single notification of userID. It reports whether anything changed.
func (r *NotificationRepository) MarkRead(_ context.Context, userID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		n := &r.notifications[i]
		if n.ID != id || n.UserID != userID {
			continue
		}

		if n.Read {
			return false, nil
		}

		n.Read = true

		return true, nil
	}

	return false, nil
}

func (r *NotificationRepository) MarkAllRead(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	marked := 0

	for i := range r.notifications {
		n := &r.notifications[i]
		if n.UserID == userID && !n.Read {
			n.Read = true
			marked++
		}
	}

	return marked, nil
}

func (r *NotificationRepository) CreateNotification(_ context.Context, n entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.notifications, func(v entity.Notification) bool { return v.ID == n.ID }) {
		return entity.ErrAlreadyExists
	}

	r.notifications = append(r.notifications, cloneNotification(n))

	return nil
}

func cloneNotification(n entity.Notification) entity.Notification {
	if n.RelatedID != nil {
		id := *n.RelatedID
		n.RelatedID = &id
	}

	return n
}

func cloneNotifications(ns []entity.Notification) []entity.Notification {
	res := make([]entity.Notification, 0, len(ns))

	for _, n := range ns {
		res = append(res, cloneNotification(n))
	}

	return res
}
