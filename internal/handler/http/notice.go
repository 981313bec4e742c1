package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/notice"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/middleware"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	noticeservice "github.com/yonseiedtech/reserve-backend-go/internal/service/notice"
)

type NoticeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type NoticeHandlerImpl struct {
	noticeService noticeservice.Service
}

func NewNoticeHandler(noticeService noticeservice.Service) NoticeHandler {
	return &NoticeHandlerImpl{noticeService: noticeService}
}

// Create implements NoticeHandler.
func (h *NoticeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req notice.CreateNoticeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.noticeService.CreateNotice(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Notice created successfully", created)
}

// Get implements NoticeHandler.
func (h *NoticeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	n, err := h.noticeService.GetNotice(r.Context(), chi.URLParam(r, "noticeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, n)
}

// List implements NoticeHandler.
func (h *NoticeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var batchID *string
	if v := r.URL.Query().Get("batch_id"); v != "" {
		batchID = &v
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notices, err := h.noticeService.ListNotices(r.Context(), batchID, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, notices)
}

// Update implements NoticeHandler.
func (h *NoticeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req notice.UpdateNoticeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "noticeID")

	updated, err := h.noticeService.UpdateNotice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements NoticeHandler.
func (h *NoticeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.noticeService.DeleteNotice(r.Context(), chi.URLParam(r, "noticeID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notice deleted successfully", nil)
}
