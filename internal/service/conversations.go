package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

// Conversations is the direct messaging between identities of the directory.
type Conversations struct {
	repo       MessageRepository
	identities IdentityRepository
	notifier   Notifier
	publisher  Publisher
	storage    AttachmentStorage
	now        func() time.Time
}

type ConversationsOption func(*Conversations)

// WithMessageAttachments enables presigned uploads of files joined to messages.
func WithMessageAttachments(storage AttachmentStorage) ConversationsOption {
	return func(c *Conversations) {
		c.storage = storage
	}
}

func NewConversations(
	repo MessageRepository,
	identities IdentityRepository,
	notifier Notifier,
	publisher Publisher,
	opts ...ConversationsOption,
) *Conversations {
	c := &Conversations{
		repo:       repo,
		identities: identities,
		notifier:   notifier,
		publisher:  publisher,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Contacts lists everyone but the viewer whose name contains term.
func (s *Conversations) Contacts(ctx context.Context, term string) ([]entity.Identity, error) {
	v, err := viewer(ctx)
	if err != nil {
		return nil, err
	}

	identities, err := s.identities.Identities(ctx)
	if err != nil {
		return nil, fmt.Errorf("identities: %w", err)
	}

	term = normalizeTerm(term)
	contacts := make([]entity.Identity, 0, len(identities))

	for _, i := range identities {
		if i.ID != v.ID && containsTerm(term, i.Name) {
			contacts = append(contacts, i)
		}
	}

	return contacts, nil
}

func (s *Conversations) contact(ctx context.Context, v entity.Identity, id string) (entity.Identity, error) {
	if id == v.ID {
		return entity.Identity{}, validationErr("cannot open a conversation with yourself")
	}

	other, err := s.identities.IdentityByID(ctx, id)
	if err != nil {
		return entity.Identity{}, fmt.Errorf("contact identity: %w", err)
	}

	return other, nil
}

// Conversation returns the thread between the viewer and otherID in both directions, oldest first.
func (s *Conversations) Conversation(ctx context.Context, otherID string) (entity.Conversation, error) {
	v, err := viewer(ctx)
	if err != nil {
		return entity.Conversation{}, err
	}

	other, err := s.contact(ctx, v, otherID)
	if err != nil {
		return entity.Conversation{}, err
	}

	messages, err := s.repo.Conversation(ctx, v.ID, other.ID)
	if err != nil {
		return entity.Conversation{}, fmt.Errorf("conversation: %w", err)
	}

	if messages == nil {
		messages = []entity.Message{}
	}

	unread := 0

	for _, m := range messages {
		if m.ReceiverID == v.ID && !m.Read {
			unread++
		}
	}

	return entity.Conversation{Contact: other, Messages: messages, UnreadCount: unread}, nil
}

// Send stores a message from the viewer and notifies the receiver. A failed notification does not
// undo the message.
func (s *Conversations) Send(ctx context.Context, in entity.NewMessage) (entity.Message, error) {
	v, err := viewer(ctx)
	if err != nil {
		return entity.Message{}, err
	}

	in, err = ValidateNewMessage(v.ID, in)
	if err != nil {
		return entity.Message{}, err
	}

	receiver, err := s.contact(ctx, v, in.ReceiverID)
	if err != nil {
		return entity.Message{}, err
	}

	m := entity.Message{
		ID:         uuid.Must(uuid.NewV4()).String(),
		SenderID:   v.ID,
		ReceiverID: receiver.ID,
		Content:    in.Content,
		Attachment: in.Attachment,
		CreatedAt:  s.now().UTC(),
	}

	err = s.repo.CreateMessage(ctx, m)
	if err != nil {
		return entity.Message{}, fmt.Errorf("create message: %w", err)
	}

	slog.InfoContext(ctx, "message sent", "message_id", m.ID, "receiver_id", receiver.ID)

	s.publisher.Publish(ctx, entity.Event{
		Type:     entity.EventMessageSent,
		Message:  &m,
		At:       m.CreatedAt,
		Audience: []string{v.ID, receiver.ID},
	})

	relatedID := m.ID

	_, err = s.notifier.Push(ctx, entity.Notification{
		UserID:    receiver.ID,
		Title:     "Nouveau message",
		Message:   fmt.Sprintf("%s vous a envoyé un message", v.Name),
		Category:  entity.CategoryMessage,
		RelatedID: &relatedID,
		CreatedAt: m.CreatedAt,
	})
	if err != nil {
		slog.ErrorContext(ctx, "push message notification", "message_id", m.ID, "error", err)
	}

	return m, nil
}

// MarkConversationRead flags every message otherID sent to the viewer.
func (s *Conversations) MarkConversationRead(ctx context.Context, otherID string) (int, error) {
	v, err := viewer(ctx)
	if err != nil {
		return 0, err
	}

	other, err := s.contact(ctx, v, otherID)
	if err != nil {
		return 0, err
	}

	marked, err := s.repo.MarkConversationRead(ctx, v.ID, other.ID)
	if err != nil {
		return 0, fmt.Errorf("mark conversation read: %w", err)
	}

	slog.DebugContext(ctx, "conversation read", "contact_id", other.ID, "count", marked)

	return marked, nil
}

// AttachmentURL presigns the upload of a file the viewer can then attach to a message.
func (s *Conversations) AttachmentURL(ctx context.Context, fileName string) (Attachment, error) {
	if s.storage == nil {
		return Attachment{}, entity.ErrAttachmentsDisabled
	}

	v, err := viewer(ctx)
	if err != nil {
		return Attachment{}, err
	}

	fileName, err = ValidateFileName(fileName)
	if err != nil {
		return Attachment{}, err
	}

	key := fmt.Sprintf("%s%s-%s", messageAttachmentPrefix(v.ID), uuid.Must(uuid.NewV4()), fileName)

	url, expiresAt, err := s.storage.PresignUpload(ctx, key)
	if err != nil {
		return Attachment{}, fmt.Errorf("presign upload: %w", err)
	}

	return Attachment{URL: url, Key: key, ExpiresAt: expiresAt}, nil
}
