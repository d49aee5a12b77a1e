package auth

import (
	"strings"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	}
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

type CreateUserRequest struct {
	Email              string    `json:"email"`
	Password           string    `json:"password"`
	Role               user.Role `json:"role"`
	Phone              string    `json:"phone"`
	EmailNotifications *bool     `json:"email_notifications,omitempty"`
	SMSNotifications   *bool     `json:"sms_notifications,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if len(r.Password) < 8 {
		errs.Add("password", "password must be at least 8 characters long")
	}
	if len(r.Password) > 72 {
		errs.Add("password", "password must not exceed 72 characters")
	}
	if r.Role == "" {
		r.Role = user.RoleEmployee
	}
	if !r.Role.IsValid() {
		errs.Add("role", "role must be one of: employee, hr")
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "phone must contain 7 to 15 digits")
	}

	return errs.Err()
}

type TokenResponse struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresIn int64     `json:"access_token_expires_in"`
	Role                 user.Role `json:"role"`
	EmployeeID           *string   `json:"employee_id,omitempty"`
}

type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Role               user.Role `json:"role"`
	Phone              string    `json:"phone,omitempty"`
	EmailNotifications bool      `json:"email_notifications"`
	SMSNotifications   bool      `json:"sms_notifications"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Role:               u.Role,
		Phone:              u.Phone,
		EmailNotifications: u.EmailNotifications,
		SMSNotifications:   u.SMSNotifications,
	}
}
