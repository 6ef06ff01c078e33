package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/session"
)

var employee = entity.Identity{
	ID:    "1",
	Name:  "Jean Dupont",
	Email: "employe@entreprise.fr",
	Role:  entity.RoleEmployee,
}

var supervisor = entity.Identity{
	ID:    "2",
	Name:  "Marie Martin",
	Email: "superviseur@entreprise.fr",
	Role:  entity.RoleSupervisor,
}

type stubAuth struct {
	accounts map[string]entity.Identity
	err      error
	panicMsg string
	release  chan struct{}
}

func (s *stubAuth) Authenticate(ctx context.Context, email, password string) (entity.Identity, error) {
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return entity.Identity{}, ctx.Err()
		}
	}

	if s.panicMsg != "" {
		panic(s.panicMsg)
	}

	if s.err != nil {
		return entity.Identity{}, s.err
	}

	identity, ok := s.accounts[email]
	if !ok || password != "password" {
		return entity.Identity{}, entity.ErrInvalidCredentials
	}

	return identity, nil
}

func newStub() *stubAuth {
	return &stubAuth{accounts: map[string]entity.Identity{
		employee.Email:   employee,
		supervisor.Email: supervisor,
	}}
}

func TestSession_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		auth     *stubAuth
		email    string
		password string
		ok       bool
		err      error
	}{
		{"valid credentials", newStub(), employee.Email, "password", true, nil},
		{"wrong password", newStub(), employee.Email, "nope", false, entity.ErrInvalidCredentials},
		{"unknown email", newStub(), "nobody@entreprise.fr", "password", false, entity.ErrInvalidCredentials},
		{"store failure", &stubAuth{err: errors.New("connection refused")}, employee.Email, "password", false, entity.ErrLoginUnavailable},
		{"store panic", &stubAuth{panicMsg: "boom"}, employee.Email, "password", false, entity.ErrLoginUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := session.New(tt.auth, time.Second)

			ok, err := s.Login(context.Background(), tt.email, tt.password)
			require.Equal(t, tt.ok, ok)

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}

			st := s.Snapshot()
			require.False(t, st.IsLoading)
			require.Equal(t, tt.ok, st.IsAuthenticated)
			require.Equal(t, st.IsAuthenticated, st.Identity != nil)
		})
	}
}

func TestSession_LoginSetsIdentity(t *testing.T) {
	t.Parallel()

	s := session.New(newStub(), time.Second)

	ok, err := s.Login(context.Background(), supervisor.Email, "password")
	require.NoError(t, err)
	require.True(t, ok)

	identity, ok := s.Identity()
	require.True(t, ok)
	require.Equal(t, supervisor, identity)

	ok, err = s.Login(context.Background(), employee.Email, "password")
	require.False(t, ok)
	require.ErrorIs(t, err, entity.ErrAlreadyLoggedIn)
}

func TestSession_LoginTimeout(t *testing.T) {
	t.Parallel()

	auth := newStub()
	auth.release = make(chan struct{})

	s := session.New(auth, 20*time.Millisecond)

	ok, err := s.Login(context.Background(), employee.Email, "password")
	require.False(t, ok)
	require.ErrorIs(t, err, entity.ErrLoginUnavailable)
	require.False(t, s.Snapshot().IsAuthenticated)
}

func TestSession_LoginInProgress(t *testing.T) {
	t.Parallel()

	auth := newStub()
	auth.release = make(chan struct{})

	s := session.New(auth, time.Second)

	var (
		wg    sync.WaitGroup
		first bool
		err   error
	)

	wg.Add(1)

	go func() {
		defer wg.Done()
		first, err = s.Login(context.Background(), employee.Email, "password")
	}()

	require.Eventually(t, func() bool { return s.Snapshot().IsLoading }, time.Second, time.Millisecond)

	require.Equal(t, entity.VerdictPending, s.CanAccess(entity.RouteDashboard).Verdict)

	ok, secondErr := s.Login(context.Background(), employee.Email, "password")
	require.False(t, ok)
	require.ErrorIs(t, secondErr, entity.ErrLoginInProgress)

	close(auth.release)
	wg.Wait()

	require.NoError(t, err)
	require.True(t, first)
	require.False(t, s.Snapshot().IsLoading)
}

func TestSession_LogoutDuringLogin(t *testing.T) {
	t.Parallel()

	auth := newStub()
	auth.release = make(chan struct{})

	s := session.New(auth, time.Second)

	done := make(chan error, 1)

	go func() {
		_, err := s.Login(context.Background(), employee.Email, "password")
		done <- err
	}()

	require.Eventually(t, func() bool { return s.Snapshot().IsLoading }, time.Second, time.Millisecond)

	s.Logout()
	close(auth.release)

	require.ErrorIs(t, <-done, entity.ErrLoginUnavailable)
	require.False(t, s.Snapshot().IsAuthenticated)
}

func TestSession_Logout(t *testing.T) {
	t.Parallel()

	s := session.New(newStub(), time.Second)

	s.Logout()
	require.False(t, s.Snapshot().IsAuthenticated)

	ok, err := s.Login(context.Background(), employee.Email, "password")
	require.NoError(t, err)
	require.True(t, ok)

	s.Logout()

	st := s.Snapshot()
	require.False(t, st.IsAuthenticated)
	require.Nil(t, st.Identity)
}

func TestSession_CanAccess(t *testing.T) {
	t.Parallel()

	supervisorOnly := []entity.Role{entity.RoleSupervisor}

	tests := []struct {
		name     string
		login    *entity.Identity
		route    string
		allowed  []entity.Role
		verdict  entity.Verdict
		redirect string
	}{
		{"anonymous on open route", nil, entity.RouteDashboard, nil, entity.VerdictLogin, entity.RouteLogin},
		{"anonymous on restricted route", nil, entity.RouteManageLeave, supervisorOnly, entity.VerdictLogin, entity.RouteLogin},
		{"employee on open route", &employee, entity.RouteLeave, nil, entity.VerdictAllow, ""},
		{"employee on supervisor route", &employee, entity.RouteManageLeave, supervisorOnly, entity.VerdictRedirect, entity.RouteDashboard},
		{"supervisor on supervisor route", &supervisor, entity.RouteManageAdvance, supervisorOnly, entity.VerdictAllow, ""},
		{"supervisor on open route", &supervisor, entity.RouteTeam, nil, entity.VerdictAllow, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := session.New(newStub(), time.Second)

			if tt.login != nil {
				ok, err := s.Login(context.Background(), tt.login.Email, "password")
				require.NoError(t, err)
				require.True(t, ok)
			}

			d := s.CanAccess(tt.route, tt.allowed...)
			require.Equal(t, tt.route, d.Route)
			require.Equal(t, tt.verdict, d.Verdict)
			require.Equal(t, tt.redirect, d.Redirect)
			require.Equal(t, tt.verdict == entity.VerdictAllow, d.Allowed())
		})
	}
}
