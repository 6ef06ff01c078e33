package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/fixtures"
	"github.com/samandr77/microservices/intranet/internal/mocks"
	"github.com/samandr77/microservices/intranet/internal/repository/memory"
	"github.com/samandr77/microservices/intranet/internal/service"
)

type conversationsEnv struct {
	svc       *service.Conversations
	repo      *memory.MessageRepository
	notifier  *mocks.MockNotifier
	publisher *mocks.MockPublisher
	storage   *mocks.MockAttachmentStorage
}

func newConversationsEnv(t *testing.T, withStorage bool) *conversationsEnv {
	t.Helper()

	ctrl := gomock.NewController(t)

	identities, err := memory.NewIdentityRepository(fixtures.Accounts(), bcrypt.MinCost)
	require.NoError(t, err)

	env := &conversationsEnv{
		repo:      memory.NewMessageRepository(fixtures.Messages()),
		notifier:  mocks.NewMockNotifier(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		storage:   mocks.NewMockAttachmentStorage(ctrl),
	}

	var opts []service.ConversationsOption
	if withStorage {
		opts = append(opts, service.WithMessageAttachments(env.storage))
	}

	env.svc = service.NewConversations(env.repo, identities, env.notifier, env.publisher, opts...)

	return env
}

func TestConversations_Contacts(t *testing.T) {
	t.Parallel()

	env := newConversationsEnv(t, false)

	contacts, err := env.svc.Contacts(as(t, "1"), "")
	require.NoError(t, err)

	got := make([]string, 0, len(contacts))
	for _, c := range contacts {
		got = append(got, c.ID)
	}

	require.Equal(t, []string{"2", "3", "4", "5"}, got)

	contacts, err = env.svc.Contacts(as(t, "1"), "pet")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	require.Equal(t, "4", contacts[0].ID)

	contacts, err = env.svc.Contacts(as(t, "1"), "dupont")
	require.NoError(t, err)
	require.Empty(t, contacts)
	require.NotNil(t, contacts)
}

func TestConversations_Conversation(t *testing.T) {
	t.Parallel()

	env := newConversationsEnv(t, false)

	conv, err := env.svc.Conversation(as(t, "1"), "2")
	require.NoError(t, err)
	require.Equal(t, "2", conv.Contact.ID)
	require.Len(t, conv.Messages, 3)
	require.Equal(t, "1", conv.Messages[0].ID)
	require.Equal(t, "3", conv.Messages[2].ID)
	require.Equal(t, 1, conv.UnreadCount)

	// the supervisor wrote the unread message, so nothing is unread on their side
	conv, err = env.svc.Conversation(as(t, "2"), "1")
	require.NoError(t, err)
	require.Len(t, conv.Messages, 3)
	require.Zero(t, conv.UnreadCount)

	conv, err = env.svc.Conversation(as(t, "1"), "4")
	require.NoError(t, err)
	require.Empty(t, conv.Messages)
	require.NotNil(t, conv.Messages)

	_, err = env.svc.Conversation(as(t, "1"), "1")
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = env.svc.Conversation(as(t, "1"), "42")
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = env.svc.Conversation(context.Background(), "2")
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestConversations_Send(t *testing.T) {
	t.Parallel()

	env := newConversationsEnv(t, false)

	var published entity.Event

	env.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entity.Event) {
		published = e
	})

	var pushed entity.Notification

	env.notifier.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n entity.Notification) (entity.Notification, error) {
			pushed = n
			return n, nil
		})

	msg, err := env.svc.Send(as(t, "3"), entity.NewMessage{ReceiverID: "2", Content: "  Bonjour Marie  "})
	require.NoError(t, err)
	require.NotEmpty(t, msg.ID)
	require.Equal(t, "3", msg.SenderID)
	require.Equal(t, "2", msg.ReceiverID)
	require.Equal(t, "Bonjour Marie", msg.Content)
	require.False(t, msg.Read)

	require.Equal(t, entity.EventMessageSent, published.Type)
	require.Equal(t, msg.ID, published.Message.ID)
	require.True(t, published.VisibleTo("3"))
	require.True(t, published.VisibleTo("2"))
	require.False(t, published.VisibleTo("1"))

	require.Equal(t, "2", pushed.UserID)
	require.Equal(t, entity.CategoryMessage, pushed.Category)
	require.Equal(t, msg.ID, *pushed.RelatedID)
	require.Contains(t, pushed.Message, "Pierre Bernard")

	conv, err := env.svc.Conversation(as(t, "2"), "3")
	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
	require.Equal(t, 1, conv.UnreadCount)
}

func TestConversations_SendKeepsMessageWhenPushFails(t *testing.T) {
	t.Parallel()

	env := newConversationsEnv(t, false)

	env.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
	env.notifier.EXPECT().Push(gomock.Any(), gomock.Any()).Return(entity.Notification{}, errors.New("db down"))

	msg, err := env.svc.Send(as(t, "4"), entity.NewMessage{ReceiverID: "5", Content: "Bonjour"})
	require.NoError(t, err)

	conv, err := env.svc.Conversation(as(t, "4"), "5")
	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
	require.Equal(t, msg.ID, conv.Messages[0].ID)
}

func TestConversations_SendValidation(t *testing.T) {
	t.Parallel()

	env := newConversationsEnv(t, false)
	foreign := "messages/2/x.pdf"

	tests := []struct {
		name string
		in   entity.NewMessage
		err  error
	}{
		{"to self", entity.NewMessage{ReceiverID: "1", Content: "hello"}, entity.ErrValidation},
		{"blank content", entity.NewMessage{ReceiverID: "2", Content: "   "}, entity.ErrValidation},
		{"too long", entity.NewMessage{ReceiverID: "2", Content: strings.Repeat("a", service.MessageMaxLen+1)}, entity.ErrValidation},
		{"unknown receiver", entity.NewMessage{ReceiverID: "42", Content: "hello"}, entity.ErrNotFound},
		{"foreign attachment", entity.NewMessage{ReceiverID: "2", Content: "hello", Attachment: &foreign}, entity.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := env.svc.Send(as(t, "1"), tt.in)
			require.ErrorIs(t, err, tt.err)
		})
	}

	conv, err := env.svc.Conversation(as(t, "1"), "2")
	require.NoError(t, err)
	require.Len(t, conv.Messages, 3)
}

func TestConversations_MarkConversationRead(t *testing.T) {
	t.Parallel()

	env := newConversationsEnv(t, false)

	marked, err := env.svc.MarkConversationRead(as(t, "1"), "2")
	require.NoError(t, err)
	require.Equal(t, 1, marked)

	marked, err = env.svc.MarkConversationRead(as(t, "1"), "2")
	require.NoError(t, err)
	require.Zero(t, marked)

	conv, err := env.svc.Conversation(as(t, "1"), "2")
	require.NoError(t, err)
	require.Zero(t, conv.UnreadCount)

	_, err = env.svc.MarkConversationRead(as(t, "1"), "1")
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestConversations_AttachmentURL(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		env := newConversationsEnv(t, false)

		_, err := env.svc.AttachmentURL(as(t, "1"), "plan.pdf")
		require.ErrorIs(t, err, entity.ErrAttachmentsDisabled)
	})

	t.Run("presigned under the sender prefix", func(t *testing.T) {
		t.Parallel()

		env := newConversationsEnv(t, true)
		expires := time.Date(2025, time.October, 10, 12, 15, 0, 0, time.UTC)

		env.storage.EXPECT().PresignUpload(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string) (string, time.Time, error) {
				return "https://s3.local/" + key, expires, nil
			})

		att, err := env.svc.AttachmentURL(as(t, "1"), "plan.pdf")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(att.Key, "messages/1/"))
		require.True(t, strings.HasSuffix(att.Key, "-plan.pdf"))
		require.Equal(t, expires, att.ExpiresAt)

		env.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
		env.notifier.EXPECT().Push(gomock.Any(), gomock.Any()).Return(entity.Notification{}, nil)

		msg, err := env.svc.Send(as(t, "1"), entity.NewMessage{ReceiverID: "2", Content: "ci-joint", Attachment: &att.Key})
		require.NoError(t, err)
		require.Equal(t, att.Key, *msg.Attachment)
	})

	t.Run("path in file name", func(t *testing.T) {
		t.Parallel()

		env := newConversationsEnv(t, true)

		_, err := env.svc.AttachmentURL(as(t, "1"), "../etc/passwd")
		require.ErrorIs(t, err, entity.ErrValidation)
	})
}
