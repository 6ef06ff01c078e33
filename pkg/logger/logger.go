package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const originService = "intranet"

type ctxKey uint8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyUserID
	ctxKeyIP
	ctxKeyLogType
	ctxKeyMethod
	ctxKeyURL
)

type Handler struct {
	slog.Handler
}

// contextFields are copied from the context into every record, in this order.
var contextFields = []struct {
	key  ctxKey
	name string
}{
	{ctxKeyRequestID, "request_id"},
	{ctxKeyIP, "ip"},
	{ctxKeyLogType, "type"},
	{ctxKeyMethod, "method"},
	{ctxKeyURL, "url"},
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	for _, f := range contextFields {
		if v, _ := ctx.Value(f.key).(string); v != "" {
			record.AddAttrs(slog.String(f.name, v))
		}
	}

	// null for anonymous requests, so the key is always there
	userID, _ := ctx.Value(ctxKeyUserID).(string)
	if userID == "" {
		record.AddAttrs(slog.Any("user_id", nil))
	} else {
		record.AddAttrs(slog.String("user_id", userID))
	}

	record.AddAttrs(slog.String("origin_service", originService))

	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(&Handler{
		Handler: slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
	})
}

// ParseLevel accepts debug, info, warn and error in any case. Anything else is info.
func ParseLevel(level string) slog.Level {
	var l slog.Level

	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}

	return l
}

func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, reqID)
}

func RequestIDFromCtx(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

func SetIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKeyIP, ip)
}

func SetLogType(ctx context.Context, logType string) context.Context {
	return context.WithValue(ctx, ctxKeyLogType, logType)
}

func SetMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, ctxKeyMethod, method)
}

func SetURL(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, ctxKeyURL, url)
}
