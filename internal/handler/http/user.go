package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/user"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/middleware"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/response"
	userservice "github.com/yonseiedtech/reserve-backend-go/internal/service/user"
)

type UserHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateMyAddress(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService userservice.Service
}

func NewUserHandler(userService userservice.Service) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, u)
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var role *user.Role
	if v := r.URL.Query().Get("role"); v != "" {
		rv := user.Role(v)
		if !rv.IsValid() {
			response.BadRequest(w, "Invalid role filter", nil)
			return
		}
		role = &rv
	}

	users, err := h.userService.ListUsers(r.Context(), role)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "userID")

	updated, err := h.userService.UpdateUser(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// UpdateMyAddress implements UserHandler.
func (h *UserHandlerImpl) UpdateMyAddress(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateAddressRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.userService.UpdateMyAddress(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}
