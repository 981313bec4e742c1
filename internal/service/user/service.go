package user

import (
	"context"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/user"
)

type Service interface {
	GetUser(ctx context.Context, id string) (user.UserResponse, error)
	ListUsers(ctx context.Context, role *user.Role) ([]user.UserResponse, error)
	UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error)
	// UpdateMyAddress lets a reservist change the address their transport
	// estimate is computed from.
	UpdateMyAddress(ctx context.Context, userID string, req user.UpdateAddressRequest) (user.UserResponse, error)
}

type serviceImpl struct {
	user.UserRepository
}

func NewService(userRepo user.UserRepository) Service {
	return &serviceImpl{UserRepository: userRepo}
}

// GetUser implements Service.
func (s *serviceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(u), nil
}

// ListUsers implements Service.
func (s *serviceImpl) ListUsers(ctx context.Context, role *user.Role) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx, role)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToUserResponse(u))
	}
	return responses, nil
}

// UpdateUser implements Service.
func (s *serviceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Rank != nil {
		u.Rank = req.Rank
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.Address != nil {
		u.Address = req.Address
	}
	if req.ServiceNumber != nil {
		u.ServiceNumber = req.ServiceNumber
	}
	if req.KakaoID != nil {
		u.KakaoID = req.KakaoID
	}

	if err := s.UserRepository.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}
	return s.GetUser(ctx, req.ID)
}

// UpdateMyAddress implements Service.
func (s *serviceImpl) UpdateMyAddress(ctx context.Context, userID string, req user.UpdateAddressRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.UserRepository.UpdateAddress(ctx, userID, req.Address); err != nil {
		return user.UserResponse{}, err
	}
	return s.GetUser(ctx, userID)
}
