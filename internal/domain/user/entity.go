package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleCook      Role = "cook"
	RoleReservist Role = "reservist"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCook, RoleReservist:
		return true
	}
	return false
}

type User struct {
	ID            string
	Username      string
	PasswordHash  string
	Name          string
	Role          Role
	ServiceNumber *string
	Rank          *string
	Phone         *string
	Address       *string
	KakaoID       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
