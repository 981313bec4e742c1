package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/mobileid"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/middleware"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	mobileidservice "github.com/yonseiedtech/reserve-backend-go/internal/service/mobileid"
)

type MobileIDHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
	GetMyCard(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
}

type MobileIDHandlerImpl struct {
	mobileIDService mobileidservice.Service
}

func NewMobileIDHandler(mobileIDService mobileidservice.Service) MobileIDHandler {
	return &MobileIDHandlerImpl{mobileIDService: mobileIDService}
}

// Issue implements MobileIDHandler.
func (h *MobileIDHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
	var req mobileid.IssueCardRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	card, err := h.mobileIDService.IssueCard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Card issued successfully", card)
}

// GetMyCard implements MobileIDHandler.
func (h *MobileIDHandlerImpl) GetMyCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.mobileIDService.GetMyCard(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, card)
}

// UploadPhoto implements MobileIDHandler.
func (h *MobileIDHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Missing photo file", nil)
		return
	}
	defer file.Close()

	card, err := h.mobileIDService.UploadPhoto(r.Context(), middleware.UserID(r), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, card)
}

// Revoke implements MobileIDHandler.
func (h *MobileIDHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	if err := h.mobileIDService.RevokeCard(r.Context(), chi.URLParam(r, "cardID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Card revoked", nil)
}
