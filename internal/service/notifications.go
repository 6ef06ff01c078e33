package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

// Notifications is the per-user view over the notification registry.
type Notifications struct {
	repo       NotificationRepository
	identities IdentityRepository
	publisher  Publisher
	now        func() time.Time
}

func NewNotifications(repo NotificationRepository, identities IdentityRepository, publisher Publisher) *Notifications {
	return &Notifications{
		repo:       repo,
		identities: identities,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s *Notifications) List(ctx context.Context, userID string) ([]entity.Notification, error) {
	list, err := s.repo.NotificationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notifications by user: %w", err)
	}

	return list, nil
}

func (s *Notifications) UnreadCount(ctx context.Context, userID string) (int, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return 0, err
	}

	return entity.UnreadCount(list), nil
}

func (s *Notifications) Feed(ctx context.Context, userID string) (entity.Feed, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return entity.Feed{}, err
	}

	return entity.Feed{Notifications: list, UnreadCount: entity.UnreadCount(list)}, nil
}

// MarkAsRead is a no-op for entries already read, absent, or owned by another user.
func (s *Notifications) MarkAsRead(ctx context.Context, userID, id string) error {
	changed, err := s.repo.MarkRead(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}

	if changed {
		slog.DebugContext(ctx, "notification read", "notification_id", id)
	}

	return nil
}

func (s *Notifications) MarkAllAsRead(ctx context.Context, userID string) (int, error) {
	marked, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	slog.DebugContext(ctx, "notifications read", "count", marked)

	return marked, nil
}

// Push appends a notification to the registry and announces it to its recipient.
func (s *Notifications) Push(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	if n.UserID == "" {
		return entity.Notification{}, validationErr("notification recipient is required")
	}

	if !n.Category.Valid() {
		return entity.Notification{}, validationErr("unknown notification category %q", n.Category)
	}

	if n.ID == "" {
		n.ID = uuid.Must(uuid.NewV4()).String()
	}

	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now().UTC()
	}

	n.Read = false

	err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return entity.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	s.publisher.Publish(ctx, entity.Event{
		Type:         entity.EventNotificationCreated,
		Notification: &n,
		At:           n.CreatedAt,
		Audience:     []string{n.UserID},
	})

	return n, nil
}

// OnEvent turns request events into notifications: the supervisor hears about submissions, the
// owner about decisions.
func (s *Notifications) OnEvent(ctx context.Context, e entity.Event) {
	if e.Request == nil {
		return
	}

	var (
		n   entity.Notification
		err error
	)

	switch e.Type {
	case entity.EventRequestSubmitted:
		n, err = s.submittedNotification(ctx, *e.Request)
	case entity.EventRequestDecided:
		n = decidedNotification(*e.Request)
	default:
		return
	}

	if err != nil {
		slog.ErrorContext(ctx, "build notification", "event", e.Type, "error", err)
		return
	}

	if n.UserID == "" {
		return
	}

	_, err = s.Push(ctx, n)
	if err != nil {
		slog.ErrorContext(ctx, "push notification", "event", e.Type, "error", err)
	}
}

func (s *Notifications) submittedNotification(ctx context.Context, req entity.Request) (entity.Notification, error) {
	owner, err := s.identities.IdentityByID(ctx, req.EmployeeID)
	if err != nil {
		return entity.Notification{}, fmt.Errorf("owner identity: %w", err)
	}

	if owner.SupervisorID == nil {
		return entity.Notification{}, nil
	}

	title := "Nouvelle demande de congé"
	message := owner.Name + " a soumis une demande de congé."

	if req.Kind == entity.KindAdvance && req.Amount != nil {
		title = "Nouvelle demande d'avance"
		message = fmt.Sprintf("%s a soumis une demande d'avance de %s €.", owner.Name, req.Amount.StringFixed(2))
	}

	return entity.Notification{
		UserID:    *owner.SupervisorID,
		Title:     title,
		Message:   message,
		Category:  req.Kind.Category(),
		RelatedID: &req.ID,
	}, nil
}

func decidedNotification(req entity.Request) entity.Notification {
	title, noun := "Demande de congé", "demande de congé"
	if req.Kind == entity.KindAdvance {
		title, noun = "Demande d'avance", "demande d'avance"
	}

	verdict := "approuvée"
	if req.Status == entity.StatusRejected {
		verdict = "refusée"
	}

	message := fmt.Sprintf("Votre %s a été %s.", noun, verdict)
	if req.Comments != nil {
		message += " Commentaire : " + *req.Comments
	}

	return entity.Notification{
		UserID:    req.EmployeeID,
		Title:     title + " " + verdict,
		Message:   message,
		Category:  req.Kind.Category(),
		RelatedID: &req.ID,
	}
}
