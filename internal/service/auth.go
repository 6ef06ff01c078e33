package service

import (
	"context"
	"fmt"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/session"
)

type Auth struct {
	sessions SessionManager
}

func NewAuth(sessions SessionManager) *Auth {
	return &Auth{sessions: sessions}
}

// Login opens a session. Malformed input is a validation error and never reaches the credential store.
func (s *Auth) Login(ctx context.Context, email, password string) (session.Token, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return session.Token{}, fmt.Errorf("%w: %w", entity.ErrValidation, err)
	}

	if password == "" {
		return session.Token{}, fmt.Errorf("%w: %w", entity.ErrValidation, entity.ErrPasswordEmpty)
	}

	return s.sessions.Login(ctx, email, password)
}

func (s *Auth) Logout(ctx context.Context) error {
	sid, err := entity.SessionIDFromContext(ctx)
	if err != nil {
		return entity.ErrUnauthorized
	}

	return s.sessions.Logout(ctx, sid)
}
