package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	StaffID      *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleFrontDesk Role = "front_desk"
	RoleDentist   Role = "dentist"
	RoleStaff     Role = "staff"
)

func IsValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleFrontDesk, RoleDentist, RoleStaff:
		return true
	}
	return false
}
