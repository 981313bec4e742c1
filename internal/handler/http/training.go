package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/training"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	trainingservice "github.com/yonseiedtech/reserve-backend-go/internal/service/training"
)

type TrainingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByBatch(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	SetOverrideRate(w http.ResponseWriter, r *http.Request)
	BatchTotal(w http.ResponseWriter, r *http.Request)
}

type TrainingHandlerImpl struct {
	trainingService trainingservice.Service
}

func NewTrainingHandler(trainingService trainingservice.Service) TrainingHandler {
	return &TrainingHandlerImpl{trainingService: trainingService}
}

// Create implements TrainingHandler.
func (h *TrainingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req training.CreateTrainingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.trainingService.CreateTraining(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Training created successfully", created)
}

// Get implements TrainingHandler.
func (h *TrainingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.trainingService.GetTraining(r.Context(), chi.URLParam(r, "trainingID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

// ListByBatch implements TrainingHandler.
func (h *TrainingHandlerImpl) ListByBatch(w http.ResponseWriter, r *http.Request) {
	trainings, err := h.trainingService.ListByBatch(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, trainings)
}

// Update implements TrainingHandler.
func (h *TrainingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req training.UpdateTrainingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "trainingID")

	updated, err := h.trainingService.UpdateTraining(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements TrainingHandler.
func (h *TrainingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.trainingService.DeleteTraining(r.Context(), chi.URLParam(r, "trainingID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Training deleted successfully", nil)
}

// SetOverrideRate implements TrainingHandler.
func (h *TrainingHandlerImpl) SetOverrideRate(w http.ResponseWriter, r *http.Request) {
	var req training.SetOverrideRateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TrainingID = chi.URLParam(r, "trainingID")

	comp, err := h.trainingService.SetOverrideRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, comp)
}

// BatchTotal implements TrainingHandler.
func (h *TrainingHandlerImpl) BatchTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.trainingService.BatchTotal(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, total)
}
