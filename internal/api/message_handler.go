package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/social-api/internal/api/shared"
	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/platform/logger"
	"github.com/phrazzld/social-api/internal/service"
)

// MessageHandler handles the message endpoints.
type MessageHandler struct {
	messages service.MessageService
	logger   *slog.Logger
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messages service.MessageService, logger *slog.Logger) *MessageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageHandler{
		messages: messages,
		logger:   logger.With("component", "message_handler"),
	}
}

// CreateMessage handles POST /messages.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req domain.Message
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	message, err := h.messages.CreateMessage(r.Context(), &req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, message)
}

// GetAllMessages handles GET /messages.
func (h *MessageHandler) GetAllMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.GetAllMessages(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messages)
}

// GetMessage handles GET /messages/{messageId}. A missing message yields
// 200 with an empty body.
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "messageId")
	if !ok {
		return
	}

	result, err := h.messages.GetMessageByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	message, found := result.Get()
	if !found {
		shared.RespondEmpty(w)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, message)
}

// DeleteMessage handles DELETE /messages/{messageId}. Deleting a message
// that does not exist is not an error; the response body is simply empty.
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "messageId")
	if !ok {
		return
	}

	deleted, err := h.messages.DeleteMessage(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if deleted == 0 {
		shared.RespondEmpty(w)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("message deleted", "message_id", id)
	shared.RespondWithJSON(w, r, http.StatusOK, deleted)
}

// UpdateMessage handles PATCH /messages/{messageId}.
func (h *MessageHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "messageId")
	if !ok {
		return
	}

	var req UpdateMessageRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	result, err := h.messages.UpdateMessage(r.Context(), id, req.MessageText)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if result.IsNone() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Message not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, 1)
}

// GetMessagesByAccount handles GET /accounts/{accountId}/messages.
func (h *MessageHandler) GetMessagesByAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "accountId")
	if !ok {
		return
	}

	messages, err := h.messages.GetMessagesByUserID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messages)
}
