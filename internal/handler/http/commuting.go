package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/commuting"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/middleware"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	commutingservice "github.com/yonseiedtech/reserve-backend-go/internal/service/commuting"
)

type CommutingHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ManualEntry(w http.ResponseWriter, r *http.Request)
	GetMyRecord(w http.ResponseWriter, r *http.Request)
	ListMyRecords(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)

	CreateZone(w http.ResponseWriter, r *http.Request)
	ListZones(w http.ResponseWriter, r *http.Request)
	UpdateZone(w http.ResponseWriter, r *http.Request)
	DeleteZone(w http.ResponseWriter, r *http.Request)
}

type CommutingHandlerImpl struct {
	commutingService commutingservice.Service
}

func NewCommutingHandler(commutingService commutingservice.Service) CommutingHandler {
	return &CommutingHandlerImpl{commutingService: commutingService}
}

// CheckIn implements CommutingHandler.
func (h *CommutingHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req commuting.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.commutingService.CheckIn(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements CommutingHandler.
func (h *CommutingHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req commuting.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.commutingService.CheckOut(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// ManualEntry implements CommutingHandler.
func (h *CommutingHandlerImpl) ManualEntry(w http.ResponseWriter, r *http.Request) {
	var req commuting.ManualEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.commutingService.ManualEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// GetMyRecord implements CommutingHandler.
func (h *CommutingHandlerImpl) GetMyRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.commutingService.GetMyRecord(r.Context(), middleware.UserID(r), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// ListMyRecords implements CommutingHandler.
func (h *CommutingHandlerImpl) ListMyRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.commutingService.ListMyRecords(
		r.Context(),
		middleware.UserID(r),
		r.URL.Query().Get("from"),
		r.URL.Query().Get("to"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ListByDate implements CommutingHandler.
func (h *CommutingHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	records, err := h.commutingService.ListByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// CreateZone implements CommutingHandler.
func (h *CommutingHandlerImpl) CreateZone(w http.ResponseWriter, r *http.Request) {
	var req commuting.CreateZoneRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	zone, err := h.commutingService.CreateZone(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Zone created successfully", zone)
}

// ListZones implements CommutingHandler.
func (h *CommutingHandlerImpl) ListZones(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	zones, err := h.commutingService.ListZones(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, zones)
}

// UpdateZone implements CommutingHandler.
func (h *CommutingHandlerImpl) UpdateZone(w http.ResponseWriter, r *http.Request) {
	var req commuting.UpdateZoneRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "zoneID")

	zone, err := h.commutingService.UpdateZone(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, zone)
}

// DeleteZone implements CommutingHandler.
func (h *CommutingHandlerImpl) DeleteZone(w http.ResponseWriter, r *http.Request) {
	if err := h.commutingService.DeleteZone(r.Context(), chi.URLParam(r, "zoneID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Zone deleted successfully", nil)
}
