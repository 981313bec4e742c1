package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByKakaoID(ctx context.Context, kakaoID string) (User, error)
	List(ctx context.Context, role *Role) ([]User, error)
	Update(ctx context.Context, u User) error
	UpdateAddress(ctx context.Context, id string, address string) error
}
