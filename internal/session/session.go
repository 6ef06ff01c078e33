// Package session holds the authentication state of a viewer and decides route access from it.
//
// A Session moves Unauthenticated -> Authenticated(role) on a successful Login and back on Logout.
// While a Login call is outstanding the session is loading: route checks are deferred and a second
// Login is refused.
package session

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"time"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=session.go -destination=../mocks/authenticator.go -package=mocks -typed

// Authenticator is the credential store.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (entity.Identity, error)
}

type State struct {
	Identity        *entity.Identity `json:"identity,omitempty"`
	IsAuthenticated bool             `json:"isAuthenticated"`
	IsLoading       bool             `json:"isLoading"`
}

type Session struct {
	auth    Authenticator
	timeout time.Duration

	mu       sync.Mutex
	identity *entity.Identity
	loading  bool
	epoch    uint64
}

// New returns an unauthenticated session. A zero timeout leaves Login bounded only by ctx.
func New(auth Authenticator, timeout time.Duration) *Session {
	return &Session{
		auth:    auth,
		timeout: timeout,
	}
}

// Login checks the credentials and authenticates the session on success. Bad credentials yield
// entity.ErrInvalidCredentials; any other failure, including a timeout, yields entity.ErrLoginUnavailable.
func (s *Session) Login(ctx context.Context, email, password string) (bool, error) {
	s.mu.Lock()

	if s.loading {
		s.mu.Unlock()
		return false, entity.ErrLoginInProgress
	}

	if s.identity != nil {
		s.mu.Unlock()
		return false, entity.ErrAlreadyLoggedIn
	}

	s.loading = true
	epoch := s.epoch
	s.mu.Unlock()

	identity, err := s.authenticate(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	// a Logout raced the credential check
	if s.epoch != epoch {
		return false, entity.ErrLoginUnavailable
	}

	if err != nil {
		return false, err
	}

	s.identity = &identity

	return true, nil
}

type authResult struct {
	identity entity.Identity
	err      error
}

func (s *Session) authenticate(ctx context.Context, email, password string) (entity.Identity, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan authResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(ctx, "credential store panic", "error", r, "stack", string(debug.Stack()))
				done <- authResult{err: errors.New("credential store panic")}
			}
		}()

		identity, err := s.auth.Authenticate(ctx, email, password)
		done <- authResult{identity: identity, err: err}
	}()

	var res authResult

	select {
	case res = <-done:
	case <-ctx.Done():
		slog.ErrorContext(ctx, "login aborted", "email", email, "error", ctx.Err())
		return entity.Identity{}, entity.ErrLoginUnavailable
	}

	switch {
	case res.err == nil:
		slog.InfoContext(ctx, "login succeeded", "email", email, "role", res.identity.Role)
		return res.identity, nil
	case errors.Is(res.err, entity.ErrInvalidCredentials):
		slog.WarnContext(ctx, "login rejected", "email", email)
		return entity.Identity{}, entity.ErrInvalidCredentials
	default:
		slog.ErrorContext(ctx, "login failed", "email", email, "error", res.err)
		return entity.Identity{}, entity.ErrLoginUnavailable
	}
}

// Logout clears the identity. It is a no-op on an unauthenticated session.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.epoch++
}

// CanAccess decides whether the viewer may open route. With no allowed roles any authenticated
// identity is admitted.
func (s *Session) CanAccess(route string, allowed ...entity.Role) entity.Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.loading:
		return entity.Decision{Route: route, Verdict: entity.VerdictPending}
	case s.identity == nil:
		return entity.Decision{Route: route, Verdict: entity.VerdictLogin, Redirect: entity.RouteLogin}
	case len(allowed) > 0 && !slices.Contains(allowed, s.identity.Role):
		return entity.Decision{Route: route, Verdict: entity.VerdictRedirect, Redirect: entity.RouteDashboard}
	default:
		return entity.Decision{Route: route, Verdict: entity.VerdictAllow}
	}
}

func (s *Session) Identity() (entity.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return entity.Identity{}, false
	}

	return *s.identity, true
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{IsLoading: s.loading}

	if s.identity != nil {
		identity := *s.identity
		st.Identity = &identity
		st.IsAuthenticated = true
	}

	return st
}
