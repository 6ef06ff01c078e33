package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

type Claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

type Token struct {
	AccessToken string          `json:"accessToken"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	SessionID   string          `json:"-"`
	Identity    entity.Identity `json:"identity"`
}

type entry struct {
	session   *Session
	userID    string
	expiresAt time.Time
	lastSeen  time.Time
}

const defaultAwayAfter = 5 * time.Minute

// Manager keeps the authenticated sessions of every viewer, keyed by session ID, and issues the
// bearer tokens that point at them.
type Manager struct {
	auth         Authenticator
	secret       []byte
	ttl          time.Duration
	loginTimeout time.Duration
	awayAfter    time.Duration
	now          func() time.Time

	mu       sync.RWMutex
	sessions map[string]entry
}

type ManagerOption func(*Manager)

// WithAwayAfter sets how long a session may stay idle before its owner shows as away.
func WithAwayAfter(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.awayAfter = d
	}
}

func NewManager(auth Authenticator, secret string, ttl, loginTimeout time.Duration, opts ...ManagerOption) *Manager {
	m := &Manager{
		auth:         auth,
		secret:       []byte(secret),
		ttl:          ttl,
		loginTimeout: loginTimeout,
		awayAfter:    defaultAwayAfter,
		now:          time.Now,
		sessions:     make(map[string]entry),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) Login(ctx context.Context, email, password string) (Token, error) {
	s := New(m.auth, m.loginTimeout)

	ok, err := s.Login(ctx, email, password)
	if !ok {
		return Token{}, err
	}

	identity, _ := s.Identity()

	sid := uuid.Must(uuid.NewV4()).String()
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}).SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign access token: %w", err)
	}

	m.mu.Lock()
	m.sessions[sid] = entry{session: s, userID: identity.ID, expiresAt: expiresAt, lastSeen: issuedAt}
	m.mu.Unlock()

	return Token{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		SessionID:   sid,
		Identity:    identity,
	}, nil
}

// Resolve returns the session behind an access token. Tokens of logged-out or purged sessions are
// rejected even when their signature is still valid.
func (m *Manager) Resolve(_ context.Context, accessToken string) (string, *Session, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(_ *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", nil, entity.ErrSessionExpired
		}

		return "", nil, fmt.Errorf("%w: %w", entity.ErrTokenInvalid, err)
	}

	if !token.Valid || claims.ID == "" {
		return "", nil, entity.ErrTokenInvalid
	}

	now := m.now()

	m.mu.Lock()
	e, ok := m.sessions[claims.ID]

	if ok && e.expiresAt.After(now) {
		e.lastSeen = now
		m.sessions[claims.ID] = e
	}
	m.mu.Unlock()

	if !ok || !e.expiresAt.After(now) {
		return "", nil, entity.ErrSessionExpired
	}

	identity, ok := e.session.Identity()
	if !ok || identity.ID != claims.Subject {
		return "", nil, entity.ErrSessionExpired
	}

	return claims.ID, e.session, nil
}

func (m *Manager) Logout(ctx context.Context, sid string) error {
	m.mu.Lock()
	e, ok := m.sessions[sid]
	delete(m.sessions, sid)
	m.mu.Unlock()

	if !ok {
		return entity.ErrNotFound
	}

	e.session.Logout()
	slog.InfoContext(ctx, "logout", "session_id", sid)

	return nil
}

// DeleteExpired drops sessions whose token lifetime is over.
func (m *Manager) DeleteExpired(ctx context.Context) error {
	now := m.now()
	removed := 0

	m.mu.Lock()

	for sid, e := range m.sessions {
		if !e.expiresAt.After(now) {
			e.session.Logout()
			delete(m.sessions, sid)
			removed++
		}
	}

	m.mu.Unlock()

	if removed > 0 {
		slog.DebugContext(ctx, "expired sessions removed", "count", removed)
	}

	return nil
}

// Presence is ONLINE when one of the user's sessions was used within the away delay, AWAY when
// the user only has idle sessions and OFFLINE without any live session.
func (m *Manager) Presence(_ context.Context, userID string) entity.PresenceStatus {
	now := m.now()
	status := entity.PresenceOffline

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.sessions {
		if e.userID != userID || !e.expiresAt.After(now) {
			continue
		}

		if now.Sub(e.lastSeen) < m.awayAfter {
			return entity.PresenceOnline
		}

		status = entity.PresenceAway
	}

	return status
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
