package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/fixtures"
	"github.com/samandr77/microservices/intranet/internal/mocks"
	"github.com/samandr77/microservices/intranet/internal/repository/memory"
	"github.com/samandr77/microservices/intranet/internal/service"
)

func newNotifications(t *testing.T) (*service.Notifications, *mocks.MockPublisher) {
	t.Helper()

	identities, err := memory.NewIdentityRepository(fixtures.Accounts(), bcrypt.MinCost)
	require.NoError(t, err)

	publisher := mocks.NewMockPublisher(gomock.NewController(t))

	return service.NewNotifications(memory.NewNotificationRepository(fixtures.Notifications()), identities, publisher), publisher
}

func TestNotifications_Feed(t *testing.T) {
	t.Parallel()

	svc, _ := newNotifications(t)
	ctx := context.Background()

	feed, err := svc.Feed(ctx, "1")
	require.NoError(t, err)
	require.Len(t, feed.Notifications, 3)
	require.Equal(t, 2, feed.UnreadCount)

	for _, n := range feed.Notifications {
		require.Equal(t, "1", n.UserID)
	}

	count, err := svc.UnreadCount(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	empty, err := svc.List(ctx, "3")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestNotifications_MarkAsRead(t *testing.T) {
	t.Parallel()

	svc, _ := newNotifications(t)
	ctx := context.Background()

	require.NoError(t, svc.MarkAsRead(ctx, "1", "1"))

	count, err := svc.UnreadCount(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// repeated, foreign and unknown ids change nothing
	require.NoError(t, svc.MarkAsRead(ctx, "1", "1"))
	require.NoError(t, svc.MarkAsRead(ctx, "1", "4"))
	require.NoError(t, svc.MarkAsRead(ctx, "1", "missing"))

	count, err = svc.UnreadCount(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	count, err = svc.UnreadCount(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNotifications_MarkAllAsRead(t *testing.T) {
	t.Parallel()

	svc, _ := newNotifications(t)
	ctx := context.Background()

	marked, err := svc.MarkAllAsRead(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, 2, marked)

	count, err := svc.UnreadCount(ctx, "1")
	require.NoError(t, err)
	require.Zero(t, count)

	marked, err = svc.MarkAllAsRead(ctx, "1")
	require.NoError(t, err)
	require.Zero(t, marked)

	count, err = svc.UnreadCount(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNotifications_Push(t *testing.T) {
	t.Parallel()

	svc, publisher := newNotifications(t)
	ctx := context.Background()

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entity.Event) {
		require.Equal(t, entity.EventNotificationCreated, e.Type)
		require.Equal(t, []string{"4"}, e.Audience)
	})

	n, err := svc.Push(ctx, entity.Notification{
		UserID:   "4",
		Title:    "Document disponible",
		Message:  "Votre bulletin de paie est disponible.",
		Category: entity.CategoryDocument,
		Read:     true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, n.ID)
	require.False(t, n.Read)
	require.False(t, n.CreatedAt.IsZero())

	feed, err := svc.Feed(ctx, "4")
	require.NoError(t, err)
	require.Equal(t, 1, feed.UnreadCount)

	_, err = svc.Push(ctx, entity.Notification{UserID: "4", Category: "sms"})
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestNotifications_OnEvent(t *testing.T) {
	t.Parallel()

	svc, publisher := newNotifications(t)
	ctx := context.Background()

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2)

	submitted := fixtures.Requests()[6]
	svc.OnEvent(ctx, entity.Event{Type: entity.EventRequestSubmitted, Request: &submitted})

	list, err := svc.List(ctx, "5")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, entity.CategoryAdvance, list[0].Category)
	require.Equal(t, "7", *list[0].RelatedID)
	require.Contains(t, list[0].Message, "Sophie Petit")
	require.Contains(t, list[0].Message, "1200.00")

	decided := fixtures.Requests()[3]
	svc.OnEvent(ctx, entity.Event{Type: entity.EventRequestDecided, Request: &decided})

	list, err = svc.List(ctx, "3")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Demande de congé refusée", list[0].Title)
	require.Equal(t, entity.CategoryLeave, list[0].Category)

	// events without a request are ignored
	svc.OnEvent(ctx, entity.Event{Type: entity.EventNotificationCreated})
}
