// Package events carries model changes to the views that observe them: the SSE stream, the
// notification registry and mail dispatch.
package events

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

type Subscriber func(ctx context.Context, e entity.Event)

type subscription struct {
	id uint64
	fn Subscriber
}

// Hub fans events out to subscribers synchronously, in subscription order.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers fn and returns the function that removes it.
func (h *Hub) Subscribe(fn Subscriber) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, fn: fn})

	var once sync.Once

	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			for i, s := range h.subs {
				if s.id == id {
					h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish delivers e to every subscriber. Subscribers may publish in turn.
func (h *Hub) Publish(ctx context.Context, e entity.Event) {
	h.mu.RLock()
	subs := make([]subscription, len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	for _, s := range subs {
		deliver(ctx, s.fn, e)
	}
}

func deliver(ctx context.Context, fn Subscriber, e entity.Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "event subscriber panic", "event", e.Type, "error", r, "stack", string(debug.Stack()))
		}
	}()

	fn(ctx, e)
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}
