package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/samandr77/microservices/intranet/pkg/logger"
)

// LoggingRoundTripper propagates the request ID to upstream services and logs each exchange.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &LoggingRoundTripper{Transport: transport}
}

func (t *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	target := r.Method + " " + r.URL.Redacted()
	started := time.Now()

	slog.DebugContext(ctx, "outgoing request", "request", target)

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		slog.WarnContext(ctx, "upstream unreachable", "request", target, "error", err, "duration", time.Since(started))
		return nil, fmt.Errorf("round trip %s: %w", target, err)
	}

	level := slog.LevelInfo
	if resp.StatusCode >= http.StatusInternalServerError {
		level = slog.LevelWarn
	}

	slog.Log(ctx, level, "upstream response",
		"request", target,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	return resp, nil
}
