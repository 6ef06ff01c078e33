package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

// Contacts godoc
// @Summary      People the viewer can write to
// @Tags         messages
// @Security     BearerAuth
// @Produce      json
// @Param        q query string false "Name filter"
// @Success      200 {array} entity.Identity
// @Failure      401 {object} ResponseError
// @Router       /messages/contacts [get]
func (h *Handler) Contacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contacts, err := h.messages.Contacts(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, contacts)
}

// Conversation godoc
// @Summary      Conversation with a contact
// @Description  Messages in both directions, oldest first
// @Tags         messages
// @Security     BearerAuth
// @Produce      json
// @Param        userId path string true "Contact ID"
// @Success      200 {object} entity.Conversation
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /messages/{userId} [get]
func (h *Handler) Conversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conv, err := h.messages.Conversation(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, conv)
}

type MessageRequest struct {
	ReceiverID string  `json:"receiverId"`
	Content    string  `json:"content"`
	Attachment *string `json:"attachment,omitempty"`
}

// SendMessage godoc
// @Summary      Send a message
// @Description  The receiver gets a notification of category message
// @Tags         messages
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body MessageRequest true "Message"
// @Success      201 {object} entity.Message
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError "Unknown receiver"
// @Router       /messages [post]
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MessageRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	msg, err := h.messages.Send(ctx, entity.NewMessage{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Attachment: req.Attachment,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "Erreur lors de l'envoi du message")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, msg)
}

// MarkConversationRead godoc
// @Summary      Mark the messages received from a contact as read
// @Tags         messages
// @Security     BearerAuth
// @Produce      json
// @Param        userId path string true "Contact ID"
// @Success      200 {object} MarkAllReadResponse
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /messages/{userId}/read [post]
func (h *Handler) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	marked, err := h.messages.MarkConversationRead(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MarkAllReadResponse{Marked: marked})
}

// MessageAttachment godoc
// @Summary      Presigned upload URL for a message attachment
// @Description  The returned key goes into the attachment field of the message
// @Tags         messages
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body AttachmentRequest true "File"
// @Success      200 {object} service.Attachment
// @Failure      400 {object} ResponseError
// @Failure      501 {object} ResponseError "No object storage configured"
// @Router       /messages/attachment [post]
func (h *Handler) MessageAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AttachmentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	a, err := h.messages.AttachmentURL(ctx, req.FileName)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, a)
}
