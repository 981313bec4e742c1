package http

import (
	"encoding/json"
	"net/http"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/push"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/middleware"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	pushservice "github.com/yonseiedtech/reserve-backend-go/internal/service/push"
)

type PushHandler interface {
	VAPIDPublicKey(w http.ResponseWriter, r *http.Request)
	Subscribe(w http.ResponseWriter, r *http.Request)
	Unsubscribe(w http.ResponseWriter, r *http.Request)
}

type PushHandlerImpl struct {
	pushService pushservice.Service
}

func NewPushHandler(pushService pushservice.Service) PushHandler {
	return &PushHandlerImpl{pushService: pushService}
}

// VAPIDPublicKey implements PushHandler.
func (h *PushHandlerImpl) VAPIDPublicKey(w http.ResponseWriter, r *http.Request) {
	if !h.pushService.Enabled() {
		response.HandleError(w, push.ErrPushDisabled)
		return
	}
	response.Success(w, map[string]string{"public_key": h.pushService.PublicKey()})
}

// Subscribe implements PushHandler.
func (h *PushHandlerImpl) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req push.SubscribeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.pushService.Subscribe(r.Context(), middleware.UserID(r), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Subscribed successfully", nil)
}

// Unsubscribe implements PushHandler.
func (h *PushHandlerImpl) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Endpoint string `json:"endpoint"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.pushService.Unsubscribe(r.Context(), req.Endpoint); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Unsubscribed successfully", nil)
}
