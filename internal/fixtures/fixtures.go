// Package fixtures holds the seed data the intranet starts from. Every call returns fresh copies,
// so the seed is never mutated in place.
package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

// Account is a fixture identity with its plaintext secret. Secrets are hashed before use.
type Account struct {
	Identity entity.Identity
	Password string
}

const DefaultPassword = "password"

func Accounts() []Account {
	return []Account{
		{
			Identity: entity.Identity{
				ID:           "1",
				Name:         "Jean Dupont",
				Email:        "employe@entreprise.fr",
				Role:         entity.RoleEmployee,
				Department:   "Informatique",
				Position:     "Développeur",
				Avatar:       ptr("/avatars/1.png"),
				SupervisorID: ptr("2"),
			},
			Password: DefaultPassword,
		},
		{
			Identity: entity.Identity{
				ID:         "2",
				Name:       "Marie Martin",
				Email:      "superviseur@entreprise.fr",
				Role:       entity.RoleSupervisor,
				Department: "Informatique",
				Position:   "Responsable d'équipe",
				Avatar:     ptr("/avatars/2.png"),
			},
			Password: DefaultPassword,
		},
		{
			Identity: entity.Identity{
				ID:           "3",
				Name:         "Pierre Bernard",
				Email:        "pierre.bernard@entreprise.fr",
				Role:         entity.RoleEmployee,
				Department:   "Informatique",
				Position:     "Analyste",
				SupervisorID: ptr("2"),
			},
			Password: DefaultPassword,
		},
		{
			Identity: entity.Identity{
				ID:           "4",
				Name:         "Sophie Petit",
				Email:        "sophie.petit@entreprise.fr",
				Role:         entity.RoleEmployee,
				Department:   "Ressources humaines",
				Position:     "Chargée RH",
				SupervisorID: ptr("5"),
			},
			Password: DefaultPassword,
		},
		{
			Identity: entity.Identity{
				ID:         "5",
				Name:       "Luc Moreau",
				Email:      "rh@entreprise.fr",
				Role:       entity.RoleSupervisor,
				Department: "Ressources humaines",
				Position:   "Responsable RH",
			},
			Password: DefaultPassword,
		},
	}
}

func Identities() []entity.Identity {
	accounts := Accounts()
	identities := make([]entity.Identity, 0, len(accounts))

	for _, a := range accounts {
		identities = append(identities, a.Identity)
	}

	return identities
}

// Notifications is the global feed. Three of the four entries belong to identity "1".
func Notifications() []entity.Notification {
	return []entity.Notification{
		{
			ID:        "1",
			UserID:    "1",
			Title:     "Nouveau message",
			Message:   "Marie Martin vous a envoyé un message.",
			Category:  entity.CategoryMessage,
			Read:      false,
			RelatedID: ptr("3"),
			CreatedAt: date(2025, time.September, 30, 9),
		},
		{
			ID:        "2",
			UserID:    "1",
			Title:     "Demande de congé approuvée",
			Message:   "Votre demande de congé du 4 au 8 août a été approuvée.",
			Category:  entity.CategoryLeave,
			Read:      false,
			RelatedID: ptr("3"),
			CreatedAt: date(2025, time.July, 20, 14),
		},
		{
			ID:        "3",
			UserID:    "1",
			Title:     "Actualité de l'entreprise",
			Message:   "Le séminaire annuel aura lieu le 12 décembre.",
			Category:  entity.CategoryNews,
			Read:      true,
			CreatedAt: date(2025, time.September, 1, 8),
		},
		{
			ID:        "4",
			UserID:    "2",
			Title:     "Nouvelle demande de congé",
			Message:   "Jean Dupont a soumis une demande de congé.",
			Category:  entity.CategoryLeave,
			Read:      false,
			RelatedID: ptr("1"),
			CreatedAt: date(2025, time.October, 1, 10),
		},
	}
}

// Messages is a short thread between identity "1" and their supervisor. The last one is unread.
func Messages() []entity.Message {
	return []entity.Message{
		{
			ID:         "1",
			SenderID:   "1",
			ReceiverID: "2",
			Content:    "Bonjour Marie, pouvez-vous valider le document de recette que je vous ai envoyé hier ?",
			Read:       true,
			CreatedAt:  date(2025, time.September, 29, 9),
		},
		{
			ID:         "2",
			SenderID:   "2",
			ReceiverID: "1",
			Content:    "Bonjour Jean, je regarde ça dans l'après-midi. Merci !",
			Read:       true,
			CreatedAt:  date(2025, time.September, 29, 10),
		},
		{
			ID:         "3",
			SenderID:   "2",
			ReceiverID: "1",
			Content:    "J'ai relu le document. Pouvez-vous compléter la section « Objectifs » avant diffusion ?",
			Read:       false,
			CreatedAt:  date(2025, time.September, 30, 9),
		},
	}
}

// Requests seeds identity "2"'s team with two pending, one approved and one rejected leave request,
// plus cash advances across both teams.
func Requests() []entity.Request {
	return []entity.Request{
		{
			ID:         "1",
			Kind:       entity.KindLeave,
			EmployeeID: "1",
			LeaveType:  entity.LeaveTypeVacation,
			Period:     &entity.Period{Start: day(2025, time.November, 3), End: day(2025, time.November, 7)},
			Reason:     "Vacances d'automne",
			Status:     entity.StatusPending,
			CreatedAt:  date(2025, time.October, 1, 10),
			UpdatedAt:  date(2025, time.October, 1, 10),
		},
		{
			ID:         "2",
			Kind:       entity.KindLeave,
			EmployeeID: "3",
			LeaveType:  entity.LeaveTypeSick,
			Period:     &entity.Period{Start: day(2025, time.October, 13), End: day(2025, time.October, 14)},
			Reason:     "Rendez-vous médical",
			Status:     entity.StatusPending,
			CreatedAt:  date(2025, time.October, 2, 11),
			UpdatedAt:  date(2025, time.October, 2, 11),
		},
		{
			ID:         "3",
			Kind:       entity.KindLeave,
			EmployeeID: "1",
			LeaveType:  entity.LeaveTypeVacation,
			Period:     &entity.Period{Start: day(2025, time.August, 4), End: day(2025, time.August, 8)},
			Reason:     "Congés d'été",
			Status:     entity.StatusApproved,
			Comments:   ptr("Bonnes vacances"),
			DecidedBy:  ptr("2"),
			CreatedAt:  date(2025, time.July, 15, 9),
			UpdatedAt:  date(2025, time.July, 20, 14),
		},
		{
			ID:         "4",
			Kind:       entity.KindLeave,
			EmployeeID: "3",
			LeaveType:  entity.LeaveTypePersonal,
			Period:     &entity.Period{Start: day(2025, time.September, 22), End: day(2025, time.September, 26)},
			Reason:     "Projet personnel",
			Status:     entity.StatusRejected,
			Comments:   ptr("Période de livraison"),
			DecidedBy:  ptr("2"),
			CreatedAt:  date(2025, time.September, 1, 16),
			UpdatedAt:  date(2025, time.September, 3, 9),
		},
		{
			ID:         "5",
			Kind:       entity.KindAdvance,
			EmployeeID: "1",
			Amount:     amount("500.00"),
			Reason:     "Déplacement client à Lyon",
			Status:     entity.StatusPending,
			CreatedAt:  date(2025, time.October, 5, 15),
			UpdatedAt:  date(2025, time.October, 5, 15),
		},
		{
			ID:         "6",
			Kind:       entity.KindAdvance,
			EmployeeID: "3",
			Amount:     amount("250.00"),
			Reason:     "Formation",
			Status:     entity.StatusApproved,
			Comments:   ptr("OK"),
			DecidedBy:  ptr("2"),
			CreatedAt:  date(2025, time.August, 25, 10),
			UpdatedAt:  date(2025, time.August, 26, 10),
		},
		{
			ID:         "7",
			Kind:       entity.KindAdvance,
			EmployeeID: "4",
			Amount:     amount("1200.00"),
			Reason:     "Salon du recrutement",
			Status:     entity.StatusPending,
			CreatedAt:  date(2025, time.October, 6, 9),
			UpdatedAt:  date(2025, time.October, 6, 9),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func date(year int, month time.Month, d, hour int) time.Time {
	return time.Date(year, month, d, hour, 0, 0, 0, time.UTC)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
