package directory_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/intranet/internal/clients/directory"
	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/pkg/config"
)

func newTestClient(url string, retryAttempts int) *directory.Client {
	return directory.NewClient(config.DirectoryConfig{
		URL:           url,
		Timeout:       time.Second,
		RetryAttempts: retryAttempts,
	})
}

func TestClient_Authenticate(t *testing.T) {
	t.Parallel()

	supervisorID := "2"

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantID  string
		wantErr error
	}{
		{
			name: "valid credentials",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var body map[string]string
				_ = json.NewDecoder(r.Body).Decode(&body)

				if body["email"] != "employe@entreprise.fr" || body["password"] != "password" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}

				_ = json.NewEncoder(w).Encode(entity.Identity{
					ID: "1", Email: "employe@entreprise.fr", Role: entity.RoleEmployee, SupervisorID: &supervisorID,
				})
			},
			wantID: "1",
		},
		{
			name: "rejected credentials",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr: entity.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			mux.HandleFunc("POST /authenticate", tt.handler)

			server := httptest.NewServer(mux)
			t.Cleanup(server.Close)

			identity, err := newTestClient(server.URL, 0).Authenticate(context.Background(), "employe@entreprise.fr", "password")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantID, identity.ID)
			require.Equal(t, "2", *identity.SupervisorID)
		})
	}
}

func TestClient_AuthenticateUnknownRole(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"1","role":"ADMIN"}`))
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(server.URL, 0).Authenticate(context.Background(), "a@entreprise.fr", "x")
	require.ErrorContains(t, err, "unknown role")
}

func TestClient_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		_, _ = w.Write([]byte(`{"id":"5","role":"SUPERVISOR"}`))
	}))
	t.Cleanup(server.Close)

	identity, err := newTestClient(server.URL, 2).IdentityByID(context.Background(), "5")
	require.NoError(t, err)
	require.Equal(t, entity.RoleSupervisor, identity.Role)
	require.Equal(t, int32(3), calls.Load())
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(server.URL, 1).Identities(context.Background())
	require.Error(t, err)
	require.Equal(t, int32(2), calls.Load())
}

func TestClient_Subordinates(t *testing.T) {
	t.Parallel()

	var gotQuery string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /identities", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("supervisorId")
		_, _ = w.Write([]byte(`[{"id":"1","role":"EMPLOYEE"},{"id":"3","role":"EMPLOYEE"}]`))
	})
	mux.HandleFunc("GET /identities/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := newTestClient(server.URL, 0)

	team, err := c.Subordinates(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, team, 2)
	require.Equal(t, "2", gotQuery)

	_, err = c.IdentityByID(context.Background(), "42")
	require.ErrorIs(t, err, entity.ErrNotFound)
}
