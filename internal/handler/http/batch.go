package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	batchservice "github.com/yonseiedtech/reserve-backend-go/internal/service/batch"
)

type BatchHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	AddMember(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	SetMemberStatus(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
}

type BatchHandlerImpl struct {
	batchService batchservice.Service
}

func NewBatchHandler(batchService batchservice.Service) BatchHandler {
	return &BatchHandlerImpl{batchService: batchService}
}

// Create implements BatchHandler.
func (h *BatchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req batch.CreateBatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.batchService.CreateBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Batch created successfully", created)
}

// Get implements BatchHandler.
func (h *BatchHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.batchService.GetBatch(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, b)
}

// List implements BatchHandler.
func (h *BatchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	batches, err := h.batchService.ListBatches(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, batches)
}

// Update implements BatchHandler.
func (h *BatchHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req batch.UpdateBatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.batchService.UpdateBatch(r.Context(), chi.URLParam(r, "batchID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements BatchHandler.
func (h *BatchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.batchService.DeleteBatch(r.Context(), chi.URLParam(r, "batchID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Batch deleted successfully", nil)
}

// AddMember implements BatchHandler.
func (h *BatchHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	member, err := h.batchService.AddMember(r.Context(), chi.URLParam(r, "batchID"), req.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Member added successfully", member)
}

// ListMembers implements BatchHandler.
func (h *BatchHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.batchService.ListMembers(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, members)
}

// SetMemberStatus implements BatchHandler.
func (h *BatchHandlerImpl) SetMemberStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	status := batch.BatchUserStatus(req.Status)
	if status != batch.BatchUserApplied && status != batch.BatchUserApproved && status != batch.BatchUserRejected {
		response.BadRequest(w, "Invalid member status", nil)
		return
	}

	if err := h.batchService.SetMemberStatus(r.Context(), chi.URLParam(r, "memberID"), status); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Member status updated", nil)
}

// RemoveMember implements BatchHandler.
func (h *BatchHandlerImpl) RemoveMember(w http.ResponseWriter, r *http.Request) {
	if err := h.batchService.RemoveMember(r.Context(), chi.URLParam(r, "memberID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Member removed successfully", nil)
}
