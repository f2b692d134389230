package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/mystery-message/internal/service"
	"github.com/MKhiriev/mystery-message/internal/utils"
	"github.com/MKhiriev/mystery-message/models"
)

func (h *Handler) getAcceptMessages(w http.ResponseWriter, r *http.Request) {
	accepting, err := h.services.InboxService.AcceptingStatus(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAccepting(w, accepting, "")
}

func (h *Handler) setAcceptMessages(w http.ResponseWriter, r *http.Request) {
	var req acceptMessagesRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	want, err := req.resolve()
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrValidation, err))
		return
	}

	accepting, err := h.services.InboxService.SetAcceptingMessages(r.Context(), userID(r), want)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAccepting(w, accepting, "Message acceptance status updated successfully")
}

func writeAccepting(w http.ResponseWriter, accepting bool, message string) {
	utils.WriteJSON(w, models.AcceptingResponse{
		APIResponse:         models.APIResponse{Success: true, Message: message},
		IsAcceptingMessages: accepting,
	}, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.InboxService.SubmitMessage(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeAck(w, "Message sent successfully", http.StatusCreated)
}

func (h *Handler) getMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.InboxService.ListMessages(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	utils.WriteJSON(w, models.MessagesResponse{
		APIResponse: models.APIResponse{Success: true},
		Messages:    messages,
	}, http.StatusOK)
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	if err := h.services.InboxService.DeleteMessage(r.Context(), userID(r), messageID); err != nil {
		writeError(w, r, err)
		return
	}

	writeAck(w, "Message deleted", http.StatusOK)
}
