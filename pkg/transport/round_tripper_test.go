package transport_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/intranet/pkg/logger"
	"github.com/samandr77/microservices/intranet/pkg/transport"
)

//nolint:paralleltest
func TestLoggingRoundTripper_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)

	prev := slog.Default()
	slog.SetDefault(logger.NewWithWriter(buf, slog.LevelDebug))
	t.Cleanup(func() { slog.SetDefault(prev) })

	var gotReqID string

	mux := http.NewServeMux()
	mux.HandleFunc("/identities", func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-Id")
		_, _ = fmt.Fprint(w, `{"id": "1"}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   10 * time.Second,
		Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
	}

	ctx := logger.SetRequestID(context.Background(), "req-42")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/identities", strings.NewReader(`{}`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "req-42", gotReqID)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `"msg":"outgoing request"`)
	require.Contains(t, lines[0], fmt.Sprintf(`"request":"POST %s/identities"`, server.URL))
	require.Contains(t, lines[0], `"request_id":"req-42"`)
	require.Contains(t, lines[1], `"msg":"upstream response"`)
	require.Contains(t, lines[1], `"level":"INFO"`)
	require.Contains(t, lines[1], `"status":200`)
}

//nolint:paralleltest
func TestLoggingRoundTripper_ServerErrorIsWarning(t *testing.T) {
	buf := new(bytes.Buffer)

	prev := slog.Default()
	slog.SetDefault(logger.NewWithWriter(buf, slog.LevelInfo))
	t.Cleanup(func() { slog.SetDefault(prev) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := &http.Client{Transport: transport.NewLoggingRoundTripper(nil)}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], `"level":"WARN"`)
	require.Contains(t, lines[0], `"status":502`)
}

//nolint:paralleltest
func TestLoggingRoundTripper_TransportError(t *testing.T) {
	client := &http.Client{Transport: transport.NewLoggingRoundTripper(nil)}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://127.0.0.1:1/unreachable", nil)
	require.NoError(t, err)

	_, err = client.Do(req) //nolint:bodyclose
	require.ErrorContains(t, err, "round trip GET http://127.0.0.1:1/unreachable")
}
