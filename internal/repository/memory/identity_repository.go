// Package memory keeps the intranet state in process memory, seeded from fixtures. A restart resets it.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/fixtures"
)

type IdentityRepository struct {
	credentials []entity.Credential
	// compared against on unknown emails so both paths cost one bcrypt run
	dummyHash []byte
}

func NewIdentityRepository(accounts []fixtures.Account, cost int) (*IdentityRepository, error) {
	r := &IdentityRepository{credentials: make([]entity.Credential, 0, len(accounts))}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password of %s: %w", a.Identity.ID, err)
		}

		r.credentials = append(r.credentials, entity.Credential{Identity: a.Identity, PasswordHash: hash})
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("dummy"), cost)
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}

	r.dummyHash = dummy

	return r, nil
}

func (r *IdentityRepository) Authenticate(ctx context.Context, email, password string) (entity.Identity, error) {
	if err := ctx.Err(); err != nil {
		return entity.Identity{}, err
	}

	email = strings.ToLower(strings.TrimSpace(email))

	cred, ok := r.credentialByEmail(email)
	if !ok {
		_ = bcrypt.CompareHashAndPassword(r.dummyHash, []byte(password))
		return entity.Identity{}, entity.ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return entity.Identity{}, entity.ErrInvalidCredentials
		}

		return entity.Identity{}, fmt.Errorf("compare password: %w", err)
	}

	return cred.Identity, nil
}

func (r *IdentityRepository) credentialByEmail(email string) (entity.Credential, bool) {
	for _, c := range r.credentials {
		if strings.EqualFold(c.Identity.Email, email) {
			return c, true
		}
	}

	return entity.Credential{}, false
}

func (r *IdentityRepository) IdentityByID(_ context.Context, id string) (entity.Identity, error) {
	for _, c := range r.credentials {
		if c.Identity.ID == id {
			return c.Identity, nil
		}
	}

	return entity.Identity{}, entity.ErrNotFound
}

func (r *IdentityRepository) Identities(_ context.Context) ([]entity.Identity, error) {
	identities := make([]entity.Identity, 0, len(r.credentials))

	for _, c := range r.credentials {
		identities = append(identities, c.Identity)
	}

	return identities, nil
}

// Subordinates returns the identities reporting directly to supervisorID.
func (r *IdentityRepository) Subordinates(_ context.Context, supervisorID string) ([]entity.Identity, error) {
	var identities []entity.Identity

	for _, c := range r.credentials {
		if c.Identity.SupervisorID != nil && *c.Identity.SupervisorID == supervisorID {
			identities = append(identities, c.Identity)
		}
	}

	return identities, nil
}
