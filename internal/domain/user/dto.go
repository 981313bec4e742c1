package user

import (
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

type UpdateUserRequest struct {
	ID            string  `json:"-"`
	Name          *string `json:"name,omitempty"`
	Rank          *string `json:"rank,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	ServiceNumber *string `json:"service_number,omitempty"`
	KakaoID       *string `json:"kakao_id,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.ServiceNumber != nil && !validator.IsValidServiceNumber(*r.ServiceNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "service_number",
			Message: "service_number format is invalid",
		})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAddressRequest struct {
	Address string `json:"address"`
}

func (r *UpdateAddressRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	ServiceNumber *string `json:"service_number,omitempty"`
	Rank          *string `json:"rank,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Name:          u.Name,
		Role:          string(u.Role),
		ServiceNumber: u.ServiceNumber,
		Rank:          u.Rank,
		Phone:         u.Phone,
		Address:       u.Address,
	}
}
