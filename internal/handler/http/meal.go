package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/meal"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	mealservice "github.com/yonseiedtech/reserve-backend-go/internal/service/meal"
)

type MealHandler interface {
	SavePlan(w http.ResponseWriter, r *http.Request)
	ListByBatch(w http.ResponseWriter, r *http.Request)
	DeletePlan(w http.ResponseWriter, r *http.Request)
}

type MealHandlerImpl struct {
	mealService mealservice.Service
}

func NewMealHandler(mealService mealservice.Service) MealHandler {
	return &MealHandlerImpl{mealService: mealService}
}

// SavePlan implements MealHandler.
func (h *MealHandlerImpl) SavePlan(w http.ResponseWriter, r *http.Request) {
	var req meal.SavePlanRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.BatchID = chi.URLParam(r, "batchID")

	plan, err := h.mealService.SavePlan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, plan)
}

// ListByBatch implements MealHandler.
func (h *MealHandlerImpl) ListByBatch(w http.ResponseWriter, r *http.Request) {
	var from, to *string
	if v := r.URL.Query().Get("from"); v != "" {
		from = &v
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to = &v
	}

	plans, err := h.mealService.ListByBatch(r.Context(), chi.URLParam(r, "batchID"), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, plans)
}

// DeletePlan implements MealHandler.
func (h *MealHandlerImpl) DeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.mealService.DeletePlan(r.Context(), chi.URLParam(r, "planID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Meal plan deleted successfully", nil)
}
