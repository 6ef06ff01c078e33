package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/intranet/pkg/logger"
)

func TestHandler_AddsContextValues(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := logger.NewWithWriter(buf, slog.LevelDebug)

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, "42")
	ctx = logger.SetMethod(ctx, "GET")
	ctx = logger.SetLogType(ctx, "job")

	l.With("component", "test").InfoContext(ctx, "hello")

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "hello", record["msg"])
	require.Equal(t, "req-1", record["request_id"])
	require.Equal(t, "42", record["user_id"])
	require.Equal(t, "GET", record["method"])
	require.Equal(t, "job", record["type"])
	require.Equal(t, "test", record["component"])
	require.Equal(t, "intranet", record["origin_service"])
}

func TestHandler_AnonymousUser(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := logger.NewWithWriter(buf, slog.LevelInfo)

	l.InfoContext(context.Background(), "anonymous")

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Contains(t, record, "user_id")
	require.Nil(t, record["user_id"])
	require.NotContains(t, record, "request_id")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}
