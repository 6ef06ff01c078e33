package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/events"
	"github.com/samandr77/microservices/intranet/internal/service"
	"github.com/samandr77/microservices/intranet/internal/session"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (session.Token, error)
	Logout(ctx context.Context) error
}

type DirectoryService interface {
	Me(ctx context.Context) (entity.Identity, error)
	Team(ctx context.Context) (entity.Team, error)
	Search(ctx context.Context, term string) ([]entity.Member, error)
}

type NotificationService interface {
	Feed(ctx context.Context, userID string) (entity.Feed, error)
	MarkAsRead(ctx context.Context, userID, id string) error
	MarkAllAsRead(ctx context.Context, userID string) (int, error)
}

type RequestService interface {
	Submit(ctx context.Context, in entity.NewRequest) (entity.Request, error)
	List(ctx context.Context, f entity.RequestFilter) ([]entity.Request, error)
	Get(ctx context.Context, id string) (entity.Request, error)
	Stage(ctx context.Context, id string, action entity.Action, comments *string) (entity.StagedDecision, error)
	Confirm(ctx context.Context, stageID string) (entity.Request, error)
	Cancel(ctx context.Context, stageID string) error
	AttachmentURL(ctx context.Context, id, fileName string) (service.Attachment, error)
}

type MessageService interface {
	Contacts(ctx context.Context, term string) ([]entity.Identity, error)
	Conversation(ctx context.Context, otherID string) (entity.Conversation, error)
	Send(ctx context.Context, in entity.NewMessage) (entity.Message, error)
	MarkConversationRead(ctx context.Context, otherID string) (int, error)
	AttachmentURL(ctx context.Context, fileName string) (service.Attachment, error)
}

type EventSource interface {
	Subscribe(fn events.Subscriber) func()
}

// @title Intranet API
// @version 1.0
// @description Sessions, notifications, messages, leave and cash-advance requests of the intranet.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	auth          AuthService
	directory     DirectoryService
	notifications NotificationService
	requests      RequestService
	messages      MessageService
	events        EventSource
}

func NewHandler(
	auth AuthService,
	directory DirectoryService,
	notifications NotificationService,
	requests RequestService,
	messages MessageService,
	events EventSource,
) *Handler {
	return &Handler{
		auth:          auth,
		directory:     directory,
		notifications: notifications,
		requests:      requests,
		messages:      messages,
		events:        events,
	}
}

// Health godoc
// @Summary      Service health
// @Tags         health
// @Success      200 {string} string "Le service fonctionne !"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Le service fonctionne !\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Le service ne fonctionne pas")
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary      Log in
// @Description  Checks the credentials and issues an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} session.Token
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError "Invalid credentials"
// @Failure      503 {object} ResponseError "Credential store unavailable"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	token, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erreur de connexion")
		return
	}

	SendJSON(ctx, w, http.StatusOK, token)
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401 {object} ResponseError
// @Router       /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.auth.Logout(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erreur de déconnexion")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me godoc
// @Summary      Current identity
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} entity.Identity
// @Failure      401 {object} ResponseError
// @Router       /me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := h.directory.Me(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, identity)
}

// Access godoc
// @Summary      Route guard decision
// @Description  Tells the UI router whether the viewer may open a page. Anonymous viewers are sent to /login.
// @Tags         auth
// @Produce      json
// @Param        route query string true "Page path, e.g. /manage-leave"
// @Success      200 {object} entity.Decision
// @Failure      404 {object} ResponseError "Unknown route"
// @Router       /access [get]
func (h *Handler) Access(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	route := r.URL.Query().Get("route")

	roles, ok := entity.RouteRoles(route)
	if !ok {
		SendErr(ctx, w, http.StatusNotFound, fmt.Errorf("route %q: %w", route, entity.ErrNotFound), "Page inconnue")
		return
	}

	SendJSON(ctx, w, http.StatusOK, sessionFromCtx(ctx).CanAccess(route, roles...))
}

// Team godoc
// @Summary      Team directory
// @Tags         directory
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} entity.Team
// @Failure      401 {object} ResponseError
// @Router       /team [get]
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	team, err := h.directory.Team(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, team)
}

// Directory godoc
// @Summary      Search the directory
// @Description  Matches name, department or position. Each member carries its presence.
// @Tags         directory
// @Security     BearerAuth
// @Produce      json
// @Param        q query string false "Search term"
// @Success      200 {array} entity.Member
// @Failure      401 {object} ResponseError
// @Router       /directory [get]
func (h *Handler) Directory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	members, err := h.directory.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, members)
}

// Notifications godoc
// @Summary      Notifications of the viewer
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} entity.Feed
// @Failure      401 {object} ResponseError
// @Router       /notifications [get]
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	v, err := entity.IdentityFromContext(ctx)
	if err != nil {
		SendServiceErr(ctx, w, entity.ErrUnauthorized, "")
		return
	}

	feed, err := h.notifications.Feed(ctx, v.ID)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, feed)
}

// MarkNotificationRead godoc
// @Summary      Mark a notification as read
// @Description  Unknown or foreign notifications are ignored
// @Tags         notifications
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      204
// @Failure      401 {object} ResponseError
// @Router       /notifications/{id}/read [post]
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	v, err := entity.IdentityFromContext(ctx)
	if err != nil {
		SendServiceErr(ctx, w, entity.ErrUnauthorized, "")
		return
	}

	err = h.notifications.MarkAsRead(ctx, v.ID, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type MarkAllReadResponse struct {
	Marked int `json:"marked"`
}

// MarkAllNotificationsRead godoc
// @Summary      Mark every notification of the viewer as read
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} MarkAllReadResponse
// @Failure      401 {object} ResponseError
// @Router       /notifications/read-all [post]
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	v, err := entity.IdentityFromContext(ctx)
	if err != nil {
		SendServiceErr(ctx, w, entity.ErrUnauthorized, "")
		return
	}

	marked, err := h.notifications.MarkAllAsRead(ctx, v.ID)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MarkAllReadResponse{Marked: marked})
}

type RequestsResponse struct {
	Requests []entity.Request `json:"requests"`
	Empty    bool             `json:"empty"`
}

// Requests godoc
// @Summary      List requests
// @Description  scope=mine lists the viewer's requests, scope=team those of a supervisor's team
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        kind   query string false "leave | advance"
// @Param        status query string false "ALL | PENDING | APPROVED | REJECTED"
// @Param        scope  query string false "mine | team"
// @Param        q      query string false "Employee name or leave type label"
// @Success      200 {object} RequestsResponse
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Router       /requests [get]
func (h *Handler) Requests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()

	requests, err := h.requests.List(ctx, entity.RequestFilter{
		Kind:   entity.RequestKind(q.Get("kind")),
		Status: entity.StatusFilter(strings.ToUpper(q.Get("status"))),
		Scope:  entity.Scope(q.Get("scope")),
		Search: q.Get("q"),
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, RequestsResponse{Requests: requests, Empty: len(requests) == 0})
}

// Request godoc
// @Summary      Request details
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} entity.Request
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /requests/{id} [get]
func (h *Handler) Request(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := h.requests.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, req)
}

type LeaveRequest struct {
	LeaveType entity.LeaveType `json:"leaveType"`
	StartDate string           `json:"startDate" example:"2026-05-04"`
	EndDate   string           `json:"endDate" example:"2026-05-08"`
	Reason    string           `json:"reason"`
}

// SubmitLeave godoc
// @Summary      Submit a leave request
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body LeaveRequest true "Leave request"
// @Success      201 {object} entity.Request
// @Failure      400 {object} ResponseError
// @Router       /requests/leave [post]
func (h *Handler) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LeaveRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Date de début invalide")
		return
	}

	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Date de fin invalide")
		return
	}

	h.submit(ctx, w, entity.NewRequest{
		Kind:      entity.KindLeave,
		LeaveType: req.LeaveType,
		Period:    &entity.Period{Start: start, End: end},
		Reason:    req.Reason,
	})
}

type AdvanceRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"150.00"`
	Reason string          `json:"reason"`
}

// SubmitAdvance godoc
// @Summary      Submit a cash-advance request
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body AdvanceRequest true "Cash-advance request"
// @Success      201 {object} entity.Request
// @Failure      400 {object} ResponseError
// @Router       /requests/advance [post]
func (h *Handler) SubmitAdvance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AdvanceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	amount := req.Amount

	h.submit(ctx, w, entity.NewRequest{
		Kind:   entity.KindAdvance,
		Amount: &amount,
		Reason: req.Reason,
	})
}

func (h *Handler) submit(ctx context.Context, w http.ResponseWriter, in entity.NewRequest) {
	req, err := h.requests.Submit(ctx, in)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erreur lors de la création de la demande")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, req)
}

type AttachmentRequest struct {
	FileName string `json:"fileName"`
}

// Attachment godoc
// @Summary      Presigned upload URL for a supporting document
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        request body AttachmentRequest true "File"
// @Success      200 {object} service.Attachment
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      409 {object} ResponseError "Request already decided"
// @Failure      501 {object} ResponseError "No object storage configured"
// @Router       /requests/{id}/attachment [post]
func (h *Handler) Attachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AttachmentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	a, err := h.requests.AttachmentURL(ctx, chi.URLParam(r, "id"), req.FileName)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, a)
}

type DecisionRequest struct {
	Action   entity.Action `json:"action" enums:"approve,reject"`
	Comments *string       `json:"comments,omitempty"`
}

// StageDecision godoc
// @Summary      Stage an approval or rejection
// @Description  Nothing changes until the staged decision is confirmed
// @Tags         decisions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        request body DecisionRequest true "Decision"
// @Success      201 {object} entity.StagedDecision
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      409 {object} ResponseError "Request already decided"
// @Router       /requests/{id}/decision [post]
func (h *Handler) StageDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DecisionRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	d, err := h.requests.Stage(ctx, chi.URLParam(r, "id"), req.Action, req.Comments)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, d)
}

// ConfirmDecision godoc
// @Summary      Apply a staged decision
// @Tags         decisions
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Staged decision ID"
// @Success      200 {object} entity.Request
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError "Unknown or expired staged decision"
// @Failure      409 {object} ResponseError "Request already decided"
// @Router       /decisions/{id}/confirm [post]
func (h *Handler) ConfirmDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := h.requests.Confirm(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, req)
}

// CancelDecision godoc
// @Summary      Discard a staged decision
// @Tags         decisions
// @Security     BearerAuth
// @Param        id path string true "Staged decision ID"
// @Success      204
// @Failure      404 {object} ResponseError
// @Router       /decisions/{id} [delete]
func (h *Handler) CancelDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.requests.Cancel(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
