package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// EnsureUser creates the account when the email is not registered yet.
	EnsureUser(ctx context.Context, req CreateUserRequest) (UserResponse, bool, error)
}
