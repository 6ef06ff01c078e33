package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/intranet/docs" //nolint:revive,nolintlint
	"github.com/samandr77/microservices/intranet/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
			r.Post("/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Identify)

			r.Get("/access", h.Access)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Post("/logout", h.Logout)
			r.Get("/me", h.Me)
			r.Get("/events", h.Events)

			r.With(mw.Guard(entity.RouteTeam)).Get("/team", h.Team)
			r.With(mw.Guard(entity.RouteTeam)).Get("/directory", h.Directory)

			r.Route("/messages", func(r chi.Router) {
				r.Use(mw.Guard(entity.RouteMessages))

				r.Get("/contacts", h.Contacts)
				r.Post("/", h.SendMessage)
				r.Post("/attachment", h.MessageAttachment)
				r.Get("/{userId}", h.Conversation)
				r.Post("/{userId}/read", h.MarkConversationRead)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Use(mw.Guard(entity.RouteNotifications))

				r.Get("/", h.Notifications)
				r.Post("/read-all", h.MarkAllNotificationsRead)
				r.Post("/{id}/read", h.MarkNotificationRead)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Get("/", h.Requests)
				r.Get("/{id}", h.Request)
				r.With(mw.Guard(entity.RouteLeave)).Post("/leave", h.SubmitLeave)
				r.With(mw.Guard(entity.RouteAdvance)).Post("/advance", h.SubmitAdvance)
				r.Post("/{id}/attachment", h.Attachment)
				r.With(mw.Guard(entity.RouteTeamRequests)).Post("/{id}/decision", h.StageDecision)
			})

			r.Route("/decisions", func(r chi.Router) {
				r.Use(mw.Guard(entity.RouteTeamRequests))

				r.Post("/{id}/confirm", h.ConfirmDecision)
				r.Delete("/{id}", h.CancelDecision)
			})
		})
	})

	return router
}
