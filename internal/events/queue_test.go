package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/events"
	"github.com/samandr77/microservices/intranet/internal/fixtures"
	"github.com/samandr77/microservices/intranet/internal/repository/memory"
	"github.com/samandr77/microservices/intranet/internal/service"
)

func TestAsyncQueue_DoesNotWaitForSender(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	delivered := make(chan entity.Mail, 3)

	queue := events.NewAsyncQueue(senderFunc(func(_ context.Context, mail entity.Mail) error {
		delivered <- mail
		<-release

		return nil
	}), 1, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	queue.Start(ctx)

	first := entity.Mail{Type: entity.MailTypeEmail, Subject: "first"}
	require.NoError(t, queue.SendMail(ctx, first))

	// the sender now holds the first mail and blocks
	require.Equal(t, first, <-delivered)

	require.NoError(t, queue.SendMail(ctx, entity.Mail{Subject: "second"}))
	require.ErrorIs(t, queue.SendMail(ctx, entity.Mail{Subject: "third"}), entity.ErrMailQueueFull)

	close(release)
	require.Equal(t, "second", (<-delivered).Subject)

	cancel()
	queue.Stop()
}

func TestAsyncQueue_SenderErrorsAreLogged(t *testing.T) {
	t.Parallel()

	attempts := make(chan struct{}, 2)

	queue := events.NewAsyncQueue(senderFunc(func(ctx context.Context, _ entity.Mail) error {
		attempts <- struct{}{}
		<-ctx.Done()

		return ctx.Err()
	}), 2, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	queue.Start(ctx)

	require.NoError(t, queue.SendMail(ctx, entity.Mail{Subject: "a"}))
	require.NoError(t, queue.SendMail(ctx, entity.Mail{Subject: "b"}))

	// each send is bounded by the timeout, so the second one still runs
	<-attempts
	<-attempts

	cancel()
	queue.Stop()
}

func TestAsyncQueue_PublishReturnsWhileSMTPHangs(t *testing.T) {
	t.Parallel()

	identities, err := memory.NewIdentityRepository(fixtures.Accounts(), bcrypt.MinCost)
	require.NoError(t, err)

	release := make(chan struct{})
	delivered := make(chan entity.Mail, 1)

	queue := events.NewAsyncQueue(senderFunc(func(_ context.Context, mail entity.Mail) error {
		<-release
		delivered <- mail

		return nil
	}), 4, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	queue.Start(ctx)

	hub := events.NewHub()
	hub.Subscribe(service.NewMail(identities, queue).OnEvent)

	req := fixtures.Requests()[2]

	published := make(chan struct{})

	go func() {
		hub.Publish(ctx, entity.Event{Type: entity.EventRequestDecided, Request: &req, At: req.UpdatedAt})
		close(published)
	}()

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("publish waited for the mail server")
	}

	close(release)

	mail := <-delivered
	require.Equal(t, []string{"employe@entreprise.fr"}, mail.Recipients)

	cancel()
	queue.Stop()
}
