package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

type MessageRepository struct {
	mu       sync.RWMutex
	messages []entity.Message
}

func NewMessageRepository(seed []entity.Message) *MessageRepository {
	r := &MessageRepository{messages: make([]entity.Message, 0, len(seed))}

	for _, m := range seed {
		r.messages = append(r.messages, cloneMessage(m))
	}

	return r
}

func (r *MessageRepository) CreateMessage(_ context.Context, m entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.messages, func(v entity.Message) bool { return v.ID == m.ID }) {
		return entity.ErrAlreadyExists
	}

	r.messages = append(r.messages, cloneMessage(m))

	return nil
}

// Conversation returns the thread of a and b, oldest first. Equal timestamps keep insertion order.
func (r *MessageRepository) Conversation(_ context.Context, a, b string) ([]entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]entity.Message, 0)

	for _, m := range r.messages {
		if m.Between(a, b) {
			res = append(res, cloneMessage(m))
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})

	return res, nil
}

func (r *MessageRepository) MarkConversationRead(_ context.Context, receiverID, senderID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	marked := 0

	for i := range r.messages {
		m := &r.messages[i]
		if m.ReceiverID == receiverID && m.SenderID == senderID && !m.Read {
			m.Read = true
			marked++
		}
	}

	return marked, nil
}

func cloneMessage(m entity.Message) entity.Message {
	m.Attachment = cloneString(m.Attachment)
	return m
}
