package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/pkg/logger"
)

// AsyncQueue buffers outgoing mail and hands it to a Sender from a background goroutine, so
// that hub subscribers return before the SMTP server answers.
type AsyncQueue struct {
	s       Sender
	mails   chan entity.Mail
	timeout time.Duration
	wg      *sync.WaitGroup
}

func NewAsyncQueue(s Sender, size int, timeout time.Duration) *AsyncQueue {
	return &AsyncQueue{
		s:       s,
		mails:   make(chan entity.Mail, size),
		timeout: timeout,
		wg:      &sync.WaitGroup{},
	}
}

// SendMail never blocks. A full buffer is reported as entity.ErrMailQueueFull.
func (q *AsyncQueue) SendMail(_ context.Context, mail entity.Mail) error {
	select {
	case q.mails <- mail:
		return nil
	default:
		return entity.ErrMailQueueFull
	}
}

// Start delivers queued mail until ctx is done. Mail still buffered at that point is dropped.
func (q *AsyncQueue) Start(ctx context.Context) *AsyncQueue {
	ctx = logger.SetLogType(ctx, "mail")

	q.wg.Add(1)

	go func() {
		defer q.wg.Done()

		for {
			select {
			case <-ctx.Done():
				slog.InfoContext(ctx, "mail queue stopped", "dropped", len(q.mails))
				return
			case mail := <-q.mails:
				q.deliver(ctx, mail)
			}
		}
	}()

	return q
}

func (q *AsyncQueue) deliver(ctx context.Context, mail entity.Mail) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	err := q.s.SendMail(ctx, mail)
	if err != nil {
		slog.ErrorContext(ctx, "send mail", "subject", mail.Subject, "error", err)
		return
	}

	slog.DebugContext(ctx, "mail sent", "subject", mail.Subject)
}

// Stop waits for the delivery goroutine. Cancel the Start context first.
func (q *AsyncQueue) Stop() {
	q.wg.Wait()
}
