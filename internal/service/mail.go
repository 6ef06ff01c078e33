package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

// MailSender delivers outgoing mail through the configured channel.
type MailSender struct {
	mailer Mailer
}

func NewMailSender(mailer Mailer) *MailSender {
	return &MailSender{mailer: mailer}
}

func (s *MailSender) SendMail(_ context.Context, mail entity.Mail) error {
	switch mail.Type {
	case entity.MailTypeEmail:
		err := s.mailer.SendMessage(mail.Subject, mail.Message, mail.Recipients, mail.ContentType)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", entity.ErrUnknownMailType, mail.Type)
	}

	return nil
}

// Mail e-mails the owner of a request once it is decided.
type Mail struct {
	identities IdentityRepository
	queue      MailQueue
}

func NewMail(identities IdentityRepository, queue MailQueue) *Mail {
	return &Mail{identities: identities, queue: queue}
}

func (s *Mail) OnEvent(ctx context.Context, e entity.Event) {
	if e.Type != entity.EventRequestDecided || e.Request == nil {
		return
	}

	err := s.sendDecision(ctx, *e.Request)
	if err != nil {
		slog.ErrorContext(ctx, "send decision mail", "request_id", e.Request.ID, "error", err)
	}
}

func (s *Mail) sendDecision(ctx context.Context, req entity.Request) error {
	owner, err := s.identities.IdentityByID(ctx, req.EmployeeID)
	if err != nil {
		return fmt.Errorf("owner identity: %w", err)
	}

	n := decidedNotification(req)

	err = s.queue.SendMail(ctx, entity.Mail{
		Type:        entity.MailTypeEmail,
		Subject:     n.Title,
		Message:     fmt.Sprintf("Bonjour %s,\n\n%s", owner.Name, n.Message),
		Recipients:  []string{owner.Email},
		ContentType: "text/plain",
	})
	if err != nil {
		return fmt.Errorf("queue mail: %w", err)
	}

	slog.InfoContext(ctx, "decision mail queued", "request_id", req.ID)

	return nil
}
