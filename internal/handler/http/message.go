package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/message"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/middleware"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	messageservice "github.com/yonseiedtech/reserve-backend-go/internal/service/message"
)

type MessageHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	Inbox(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type MessageHandlerImpl struct {
	messageService messageservice.Service
}

func NewMessageHandler(messageService messageservice.Service) MessageHandler {
	return &MessageHandlerImpl{messageService: messageService}
}

// Send implements MessageHandler.
func (h *MessageHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	var req message.SendMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sent, err := h.messageService.Send(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Message sent successfully", sent)
}

// Inbox implements MessageHandler.
func (h *MessageHandlerImpl) Inbox(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	inbox, err := h.messageService.Inbox(r.Context(), middleware.UserID(r), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, inbox)
}

// MarkRead implements MessageHandler.
func (h *MessageHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	err := h.messageService.MarkRead(r.Context(), chi.URLParam(r, "messageID"), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Message marked as read", nil)
}
