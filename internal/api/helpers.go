package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

const errInternalText = "Erreur interne"

type ResponseError struct {
	Message  string `json:"message"`
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	sendErr(ctx, w, code, ResponseError{Message: msg, Error: err.Error()})
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, body ResponseError) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", body.Error, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", body.Error, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}

// SendServiceErr maps a service error to its status code. msg is used for unexpected failures only.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		SendErr(ctx, w, http.StatusBadRequest, err, "Requête invalide")
	case errors.Is(err, entity.ErrInvalidCredentials):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Identifiants invalides")
	case errors.Is(err, entity.ErrUnauthorized),
		errors.Is(err, entity.ErrSessionExpired),
		errors.Is(err, entity.ErrTokenInvalid):
		sendErr(ctx, w, http.StatusUnauthorized, ResponseError{
			Message:  "Authentification requise",
			Error:    err.Error(),
			Redirect: entity.RouteLogin,
		})
	case errors.Is(err, entity.ErrForbidden):
		sendErr(ctx, w, http.StatusForbidden, ResponseError{
			Message:  "Accès refusé",
			Error:    err.Error(),
			Redirect: entity.RouteDashboard,
		})
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "Introuvable")
	case errors.Is(err, entity.ErrNotPending):
		SendErr(ctx, w, http.StatusConflict, err, "La demande a déjà été traitée")
	case errors.Is(err, entity.ErrLoginInProgress), errors.Is(err, entity.ErrAlreadyLoggedIn):
		SendErr(ctx, w, http.StatusConflict, err, "Connexion déjà en cours")
	case errors.Is(err, entity.ErrLoginUnavailable):
		SendErr(ctx, w, http.StatusServiceUnavailable, err, "Connexion momentanément indisponible")
	case errors.Is(err, entity.ErrAttachmentsDisabled):
		SendErr(ctx, w, http.StatusNotImplemented, err, "Pièces jointes non disponibles")
	default:
		if msg == "" {
			msg = errInternalText
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}
