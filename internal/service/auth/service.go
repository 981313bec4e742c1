package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/auth"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/user"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/jwt"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/oauth"
)

type Service interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	LoginWithKakao(ctx context.Context, code string) (auth.LoginResponse, error)
	KakaoRedirectURL(userAgent string) string
	Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID string) (auth.UserResponse, error)

	RegisterUser(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error)
}

type serviceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
	kakao      oauth.KakaoService
}

func NewService(userRepo user.UserRepository, jwtService jwt.Service, kakao oauth.KakaoService) Service {
	return &serviceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		kakao:      kakao,
	}
}

func toUserResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
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

// issueTokens builds the login response for an authenticated user.
func (s *serviceImpl) issueTokens(u user.User) (auth.LoginResponse, error) {
	serviceNumber := ""
	if u.ServiceNumber != nil {
		serviceNumber = *u.ServiceNumber
	}
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, serviceNumber, nil, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		User:         toUserResponse(u),
	}, nil
}

// Login implements Service.
func (s *serviceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the username exists.
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// KakaoRedirectURL implements Service.
func (s *serviceImpl) KakaoRedirectURL(userAgent string) string {
	state := s.kakao.GenerateState(userAgent)
	return s.kakao.RedirectURL(state)
}

// LoginWithKakao implements Service. Only users whose Kakao account has
// already been linked can log in this way; there is no self-registration.
func (s *serviceImpl) LoginWithKakao(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := s.kakao.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrKakaoLoginFailed
	}

	info, err := s.kakao.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrKakaoLoginFailed
	}

	u, err := s.userRepo.GetByKakaoID(ctx, info.KakaoID)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrKakaoLoginFailed
	}

	return s.issueTokens(u)
}

// Refresh implements Service.
func (s *serviceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	return s.issueTokens(u)
}

// Logout implements Service. Revocation is in-memory; restarting the
// server forgets revocations but also invalidates nothing that was not
// already expiring.
func (s *serviceImpl) Logout(ctx context.Context, refreshToken string) error {
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// Me implements Service.
func (s *serviceImpl) Me(ctx context.Context, userID string) (auth.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}
	return toUserResponse(u), nil
}

// RegisterUser implements Service. Admin-only account provisioning.
func (s *serviceImpl) RegisterUser(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:      req.Username,
		PasswordHash:  string(hash),
		Name:          req.Name,
		Role:          user.Role(req.Role),
		ServiceNumber: req.ServiceNumber,
		Rank:          req.Rank,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return toUserResponse(created), nil
}
