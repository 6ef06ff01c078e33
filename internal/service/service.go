package service

import (
	"context"
	"time"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/session"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type IdentityRepository interface {
	IdentityByID(ctx context.Context, id string) (entity.Identity, error)
	Identities(ctx context.Context) ([]entity.Identity, error)
	Subordinates(ctx context.Context, supervisorID string) ([]entity.Identity, error)
}

type NotificationRepository interface {
	NotificationsByUser(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, userID, id string) (bool, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
	CreateNotification(ctx context.Context, n entity.Notification) error
}

type RequestRepository interface {
	CreateRequest(ctx context.Context, req entity.Request) error
	RequestByID(ctx context.Context, id string) (entity.Request, error)
	RequestsByQuery(ctx context.Context, q entity.RequestQuery) ([]entity.Request, error)
	TransitionRequest(ctx context.Context, t entity.Transition) (entity.Request, error)
	SetAttachment(ctx context.Context, id, key string) error
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg entity.Message) error
	// Conversation returns the messages exchanged by a and b, oldest first.
	Conversation(ctx context.Context, a, b string) ([]entity.Message, error)
	MarkConversationRead(ctx context.Context, receiverID, senderID string) (int, error)
}

type StageRepository interface {
	SaveStage(ctx context.Context, d entity.StagedDecision) error
	Stage(ctx context.Context, id string) (entity.StagedDecision, error)
	DeleteStage(ctx context.Context, id string) (entity.StagedDecision, error)
	DeleteExpiredStages(ctx context.Context, now time.Time) (int, error)
}

type Publisher interface {
	Publish(ctx context.Context, e entity.Event)
}

type Notifier interface {
	Push(ctx context.Context, n entity.Notification) (entity.Notification, error)
}

type PresenceSource interface {
	Presence(ctx context.Context, userID string) entity.PresenceStatus
}

type AttachmentStorage interface {
	PresignUpload(ctx context.Context, key string) (string, time.Time, error)
}

// MailQueue accepts outgoing e-mails, either for immediate delivery or for a broker.
type MailQueue interface {
	SendMail(ctx context.Context, mail entity.Mail) error
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string, contentType string) error
}

type SessionManager interface {
	Login(ctx context.Context, email, password string) (session.Token, error)
	Logout(ctx context.Context, sid string) error
}

func viewer(ctx context.Context) (entity.Identity, error) {
	identity, err := entity.IdentityFromContext(ctx)
	if err != nil {
		return entity.Identity{}, entity.ErrUnauthorized
	}

	return identity, nil
}
