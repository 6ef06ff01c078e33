package s3_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/intranet/internal/clients/s3"
	"github.com/samandr77/microservices/intranet/pkg/config"
)

func TestStorage_PresignUpload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	storage, err := s3.New(ctx, config.S3Config{
		Bucket:        "attachments",
		Region:        "us-east-1",
		Endpoint:      "http://localhost:4566",
		PresignExpiry: 5 * time.Minute,
	})
	require.NoError(t, err)

	raw, expiresAt, err := storage.PresignUpload(ctx, "requests/1/justificatif.pdf")
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "localhost:4566", u.Host)
	require.Equal(t, "/attachments/requests/1/justificatif.pdf", u.Path)
	require.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
	require.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
