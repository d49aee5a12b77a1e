package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
)

func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleHR
}

type User struct {
	ID                 string
	Email              string
	PasswordHash       string
	Role               Role
	Phone              string
	EmailNotifications bool
	SMSNotifications   bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (u *User) IsHR() bool {
	return u.Role == RoleHR
}
