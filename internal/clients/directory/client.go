// Package directory talks to an external identity directory that owns credentials and the
// reporting lines of the company.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/pkg/config"
	"github.com/samandr77/microservices/intranet/pkg/transport"
)

const (
	defaultRetryWaitMin = 100 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	maxErrorBody        = 1 << 10
)

type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(cfg config.DirectoryConfig) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	// 4xx answers are final, transport errors and 5xx are retried
	retryClient.CheckRetry = retryablehttp.DefaultRetryPolicy

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: cfg.URL,
	}
}

type authenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authenticate checks credentials against the directory. A 401 answer is entity.ErrInvalidCredentials.
func (c *Client) Authenticate(ctx context.Context, email, password string) (entity.Identity, error) {
	body, err := json.Marshal(authenticateRequest{Email: email, Password: password})
	if err != nil {
		return entity.Identity{}, fmt.Errorf("marshal request in JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/authenticate", bytes.NewReader(body))
	if err != nil {
		return entity.Identity{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	var identity entity.Identity

	err = c.do(req, &identity)
	if err != nil {
		return entity.Identity{}, err
	}

	if !identity.Role.Valid() {
		return entity.Identity{}, fmt.Errorf("directory returned unknown role %q", identity.Role)
	}

	return identity, nil
}

func (c *Client) IdentityByID(ctx context.Context, id string) (entity.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/identities/"+url.PathEscape(id), nil)
	if err != nil {
		return entity.Identity{}, fmt.Errorf("create request: %w", err)
	}

	var identity entity.Identity

	err = c.do(req, &identity)
	if err != nil {
		return entity.Identity{}, err
	}

	return identity, nil
}

func (c *Client) Identities(ctx context.Context) ([]entity.Identity, error) {
	return c.identities(ctx, nil)
}

func (c *Client) Subordinates(ctx context.Context, supervisorID string) ([]entity.Identity, error) {
	return c.identities(ctx, url.Values{"supervisorId": {supervisorID}})
}

func (c *Client) identities(ctx context.Context, query url.Values) ([]entity.Identity, error) {
	u := c.baseURL + "/identities"
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var identities []entity.Identity

	err = c.do(req, &identities)
	if err != nil {
		return nil, err
	}

	return identities, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return entity.ErrInvalidCredentials
	case http.StatusNotFound:
		return entity.ErrNotFound
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("directory responded %d: %s", resp.StatusCode, bytes.TrimSpace(b))
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
