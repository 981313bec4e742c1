package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/transport"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	transportservice "github.com/yonseiedtech/reserve-backend-go/internal/service/transport"
)

type TransportHandler interface {
	QuickEstimate(w http.ResponseWriter, r *http.Request)
	EstimateBatch(w http.ResponseWriter, r *http.Request)
	ListByBatch(w http.ResponseWriter, r *http.Request)
}

type TransportHandlerImpl struct {
	transportService transportservice.Service
}

func NewTransportHandler(transportService transportservice.Service) TransportHandler {
	return &TransportHandlerImpl{transportService: transportService}
}

// QuickEstimate implements TransportHandler.
func (h *TransportHandlerImpl) QuickEstimate(w http.ResponseWriter, r *http.Request) {
	var req transport.EstimateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	estimate, err := h.transportService.QuickEstimate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, estimate)
}

// EstimateBatch implements TransportHandler.
func (h *TransportHandlerImpl) EstimateBatch(w http.ResponseWriter, r *http.Request) {
	result, err := h.transportService.EstimateBatch(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListByBatch implements TransportHandler.
func (h *TransportHandlerImpl) ListByBatch(w http.ResponseWriter, r *http.Request) {
	result, err := h.transportService.ListByBatch(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
