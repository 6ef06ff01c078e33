package session

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

type fixedAuth struct{}

func (fixedAuth) Authenticate(_ context.Context, email, password string) (entity.Identity, error) {
	if email != "superviseur@entreprise.fr" || password != "password" {
		return entity.Identity{}, entity.ErrInvalidCredentials
	}

	return entity.Identity{ID: "2", Email: email, Role: entity.RoleSupervisor}, nil
}

func newTestManager(now time.Time) *Manager {
	m := NewManager(fixedAuth{}, "test-secret", time.Hour, time.Second)
	m.now = func() time.Time { return now }

	return m
}

func TestManager_LoginResolve(t *testing.T) {
	t.Parallel()

	m := NewManager(fixedAuth{}, "test-secret", time.Hour, time.Second)
	ctx := context.Background()

	token, err := m.Login(ctx, "superviseur@entreprise.fr", "password")
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	require.NotEmpty(t, token.SessionID)
	require.Equal(t, "2", token.Identity.ID)

	sid, s, err := m.Resolve(ctx, token.AccessToken)
	require.NoError(t, err)
	require.Equal(t, token.SessionID, sid)

	identity, ok := s.Identity()
	require.True(t, ok)
	require.Equal(t, entity.RoleSupervisor, identity.Role)
	require.Equal(t, entity.VerdictAllow, s.CanAccess(entity.RouteManageLeave, entity.RoleSupervisor).Verdict)
}

func TestManager_LoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	m := NewManager(fixedAuth{}, "test-secret", time.Hour, time.Second)

	_, err := m.Login(context.Background(), "superviseur@entreprise.fr", "wrong")
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
	require.Zero(t, m.Len())
}

func TestManager_LogoutRevokesToken(t *testing.T) {
	t.Parallel()

	m := NewManager(fixedAuth{}, "test-secret", time.Hour, time.Second)
	ctx := context.Background()

	token, err := m.Login(ctx, "superviseur@entreprise.fr", "password")
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx, token.SessionID))
	require.ErrorIs(t, m.Logout(ctx, token.SessionID), entity.ErrNotFound)

	_, _, err = m.Resolve(ctx, token.AccessToken)
	require.ErrorIs(t, err, entity.ErrSessionExpired)
}

func TestManager_ResolveRejectsForeignTokens(t *testing.T) {
	t.Parallel()

	m := NewManager(fixedAuth{}, "test-secret", time.Hour, time.Second)
	ctx := context.Background()

	token, err := m.Login(ctx, "superviseur@entreprise.fr", "password")
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: entity.RoleSupervisor,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        token.SessionID,
			Subject:   "2",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong signature", forged},
		{"unsigned", unsignedToken(t, token.SessionID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := m.Resolve(ctx, tt.token)
			require.ErrorIs(t, err, entity.ErrTokenInvalid)
		})
	}
}

func unsignedToken(t *testing.T, sid string) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ID: sid, Subject: "2"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	return s
}

func TestManager_Expiry(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC)
	m := newTestManager(start)
	ctx := context.Background()

	token, err := m.Login(ctx, "superviseur@entreprise.fr", "password")
	require.NoError(t, err)
	require.Equal(t, start.Add(time.Hour), token.ExpiresAt)

	m.now = func() time.Time { return start.Add(30 * time.Minute) }
	require.NoError(t, m.DeleteExpired(ctx))
	require.Equal(t, 1, m.Len())

	m.now = func() time.Time { return start.Add(2 * time.Hour) }

	_, _, err = m.Resolve(ctx, token.AccessToken)
	require.ErrorIs(t, err, entity.ErrSessionExpired)

	require.NoError(t, m.DeleteExpired(ctx))
	require.Zero(t, m.Len())
}

func TestManager_Presence(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC)
	m := NewManager(fixedAuth{}, "test-secret", time.Hour, time.Second, WithAwayAfter(10*time.Minute))
	m.now = func() time.Time { return start }
	ctx := context.Background()

	require.Equal(t, entity.PresenceOffline, m.Presence(ctx, "2"))

	token, err := m.Login(ctx, "superviseur@entreprise.fr", "password")
	require.NoError(t, err)
	require.Equal(t, entity.PresenceOnline, m.Presence(ctx, "2"))
	require.Equal(t, entity.PresenceOffline, m.Presence(ctx, "1"))

	m.now = func() time.Time { return start.Add(15 * time.Minute) }
	require.Equal(t, entity.PresenceAway, m.Presence(ctx, "2"))

	// any authenticated call refreshes the activity
	_, _, err = m.Resolve(ctx, token.AccessToken)
	require.NoError(t, err)
	require.Equal(t, entity.PresenceOnline, m.Presence(ctx, "2"))

	require.NoError(t, m.Logout(ctx, token.SessionID))
	require.Equal(t, entity.PresenceOffline, m.Presence(ctx, "2"))
}
