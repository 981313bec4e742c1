package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/survey"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/middleware"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	surveyservice "github.com/yonseiedtech/reserve-backend-go/internal/service/survey"
)

type SurveyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	Answer(w http.ResponseWriter, r *http.Request)
	Tally(w http.ResponseWriter, r *http.Request)
	MyAnswer(w http.ResponseWriter, r *http.Request)
}

type SurveyHandlerImpl struct {
	surveyService surveyservice.Service
}

func NewSurveyHandler(surveyService surveyservice.Service) SurveyHandler {
	return &SurveyHandlerImpl{surveyService: surveyService}
}

// Create implements SurveyHandler.
func (h *SurveyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req survey.CreateSurveyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.surveyService.CreateSurvey(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Survey created successfully", created)
}

// Get implements SurveyHandler.
func (h *SurveyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sv, err := h.surveyService.GetSurvey(r.Context(), chi.URLParam(r, "surveyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, sv)
}

// List implements SurveyHandler.
func (h *SurveyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	openOnly := r.URL.Query().Get("open") == "true"

	surveys, err := h.surveyService.ListSurveys(r.Context(), openOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, surveys)
}

// Close implements SurveyHandler.
func (h *SurveyHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.surveyService.CloseSurvey(r.Context(), chi.URLParam(r, "surveyID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Survey closed", nil)
}

// Delete implements SurveyHandler.
func (h *SurveyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.surveyService.DeleteSurvey(r.Context(), chi.URLParam(r, "surveyID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Survey deleted successfully", nil)
}

// Answer implements SurveyHandler.
func (h *SurveyHandlerImpl) Answer(w http.ResponseWriter, r *http.Request) {
	var req survey.AnswerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SurveyID = chi.URLParam(r, "surveyID")

	if err := h.surveyService.Answer(r.Context(), middleware.UserID(r), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Answer recorded", nil)
}

// Tally implements SurveyHandler.
func (h *SurveyHandlerImpl) Tally(w http.ResponseWriter, r *http.Request) {
	tally, err := h.surveyService.Tally(r.Context(), chi.URLParam(r, "surveyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, tally)
}

// MyAnswer implements SurveyHandler.
func (h *SurveyHandlerImpl) MyAnswer(w http.ResponseWriter, r *http.Request) {
	answer, err := h.surveyService.MyAnswer(r.Context(), chi.URLParam(r, "surveyID"), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, answer)
}
