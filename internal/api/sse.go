package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

const (
	sseBuffer    = 16
	sseKeepAlive = 15 * time.Second
)

// Events godoc
// @Summary      Live events of the viewer
// @Description  Server-sent events: request.submitted, request.decided and notification.created
// @Tags         events
// @Security     BearerAuth
// @Produce      text/event-stream
// @Param        access_token query string false "Token for clients that cannot set headers"
// @Success      200
// @Failure      401 {object} ResponseError
// @Router       /events [get]
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	v, err := entity.IdentityFromContext(ctx)
	if err != nil {
		SendServiceErr(ctx, w, entity.ErrUnauthorized, "")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		SendErr(ctx, w, http.StatusInternalServerError, errors.New("streaming unsupported"), errInternalText)
		return
	}

	ch := make(chan entity.Event, sseBuffer)

	unsubscribe := h.events.Subscribe(func(_ context.Context, e entity.Event) {
		if !e.VisibleTo(v.ID) {
			return
		}

		select {
		case ch <- e:
		default:
			slog.WarnContext(ctx, "sse client too slow, event dropped", "type", e.Type)
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	slog.InfoContext(ctx, "sse stream opened")

	ticker := time.NewTicker(sseKeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "sse stream closed")
			return
		case <-ticker.C:
			if _, err = fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case e := <-ch:
			if err = writeEvent(w, e); err != nil {
				slog.ErrorContext(ctx, "write sse event", "error", err)
				return
			}
		}

		flusher.Flush()
	}
}

func writeEvent(w http.ResponseWriter, e entity.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Type, data)

	return err
}
