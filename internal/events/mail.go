package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/pkg/broker"
)

type Producer interface {
	SendMail(ctx context.Context, key string, event broker.MailEvent) error
}

// KafkaQueue hands outgoing mail to the notifications topic.
type KafkaQueue struct {
	p Producer
}

func NewKafkaQueue(p Producer) *KafkaQueue {
	return &KafkaQueue{p: p}
}

func (q *KafkaQueue) SendMail(ctx context.Context, mail entity.Mail) error {
	return q.p.SendMail(ctx, uuid.Must(uuid.NewV4()).String(), broker.MailEvent{
		Type:        mail.Type,
		Subject:     mail.Subject,
		Message:     mail.Message,
		Recipients:  mail.Recipients,
		ContentType: mail.ContentType,
	})
}

type Sender interface {
	SendMail(ctx context.Context, mail entity.Mail) error
}

// EventHandler consumes the notifications topic.
type EventHandler struct {
	s Sender
}

func NewEventHandler(s Sender) *EventHandler {
	return &EventHandler{s: s}
}

func (h *EventHandler) SendMail(ctx context.Context, msg kafka.Message) error {
	var event broker.MailEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	err = h.s.SendMail(ctx, entity.Mail{
		Type:        event.Type,
		Subject:     event.Subject,
		Message:     event.Message,
		Recipients:  event.Recipients,
		ContentType: event.ContentType,
	})
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
