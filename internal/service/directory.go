package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

type Directory struct {
	identities IdentityRepository
	presence   PresenceSource
}

func NewDirectory(identities IdentityRepository, presence PresenceSource) *Directory {
	return &Directory{identities: identities, presence: presence}
}

func (s *Directory) Me(ctx context.Context) (entity.Identity, error) {
	return viewer(ctx)
}

// Team lists a supervisor's direct reports, or an employee's supervisor and peers.
func (s *Directory) Team(ctx context.Context) (entity.Team, error) {
	v, err := viewer(ctx)
	if err != nil {
		return entity.Team{}, err
	}

	if v.IsSupervisor() {
		members, err := s.identities.Subordinates(ctx, v.ID)
		if err != nil {
			return entity.Team{}, fmt.Errorf("subordinates: %w", err)
		}

		return entity.Team{Members: nonNil(members)}, nil
	}

	if v.SupervisorID == nil {
		return entity.Team{Members: []entity.Identity{}}, nil
	}

	team := entity.Team{}

	supervisor, err := s.identities.IdentityByID(ctx, *v.SupervisorID)
	switch {
	case err == nil:
		team.Supervisor = &supervisor
	case !errors.Is(err, entity.ErrNotFound):
		return entity.Team{}, fmt.Errorf("supervisor identity: %w", err)
	}

	members, err := s.identities.Subordinates(ctx, *v.SupervisorID)
	if err != nil {
		return entity.Team{}, fmt.Errorf("subordinates: %w", err)
	}

	team.Members = nonNil(members)

	return team, nil
}

// Search lists everyone whose name, department or position contains term, with their presence.
// An empty term lists the whole directory.
func (s *Directory) Search(ctx context.Context, term string) ([]entity.Member, error) {
	if _, err := viewer(ctx); err != nil {
		return nil, err
	}

	identities, err := s.identities.Identities(ctx)
	if err != nil {
		return nil, fmt.Errorf("identities: %w", err)
	}

	term = normalizeTerm(term)
	members := make([]entity.Member, 0, len(identities))

	for _, i := range identities {
		if !containsTerm(term, i.Name, i.Department, i.Position) {
			continue
		}

		members = append(members, entity.Member{Identity: i, Presence: s.presence.Presence(ctx, i.ID)})
	}

	return members, nil
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// containsTerm reports whether one of fields contains the normalized term. An empty term matches.
func containsTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}

	return false
}

func nonNil(identities []entity.Identity) []entity.Identity {
	if identities == nil {
		return []entity.Identity{}
	}

	return identities
}
