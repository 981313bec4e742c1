package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/payment"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	paymentservice "github.com/yonseiedtech/reserve-backend-go/internal/service/payment"
)

type PaymentHandler interface {
	GetPayment(w http.ResponseWriter, r *http.Request)
	TransitionPayment(w http.ResponseWriter, r *http.Request)
	UpdatePaymentDetails(w http.ResponseWriter, r *http.Request)

	GetRefund(w http.ResponseWriter, r *http.Request)
	TransitionRefund(w http.ResponseWriter, r *http.Request)
	UpdateRefundDetails(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService paymentservice.Service
}

func NewPaymentHandler(paymentService paymentservice.Service) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

// GetPayment implements PaymentHandler.
func (h *PaymentHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	p, err := h.paymentService.GetPayment(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

// TransitionPayment implements PaymentHandler.
func (h *PaymentHandlerImpl) TransitionPayment(w http.ResponseWriter, r *http.Request) {
	var req payment.TransitionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.paymentService.TransitionPayment(r.Context(), chi.URLParam(r, "batchID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

// UpdatePaymentDetails implements PaymentHandler.
func (h *PaymentHandlerImpl) UpdatePaymentDetails(w http.ResponseWriter, r *http.Request) {
	var req payment.UpdatePaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.paymentService.UpdatePaymentDetails(r.Context(), chi.URLParam(r, "batchID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

// GetRefund implements PaymentHandler.
func (h *PaymentHandlerImpl) GetRefund(w http.ResponseWriter, r *http.Request) {
	rf, err := h.paymentService.GetRefund(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rf)
}

// TransitionRefund implements PaymentHandler.
func (h *PaymentHandlerImpl) TransitionRefund(w http.ResponseWriter, r *http.Request) {
	var req payment.TransitionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rf, err := h.paymentService.TransitionRefund(r.Context(), chi.URLParam(r, "batchID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rf)
}

// UpdateRefundDetails implements PaymentHandler.
func (h *PaymentHandlerImpl) UpdateRefundDetails(w http.ResponseWriter, r *http.Request) {
	var req payment.UpdateRefundRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rf, err := h.paymentService.UpdateRefundDetails(r.Context(), chi.URLParam(r, "batchID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rf)
}
