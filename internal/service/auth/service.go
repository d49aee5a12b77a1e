package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// The principal's employee record is matched by email; HR accounts may have none.
	var employeeID *string
	emp, err := a.EmployeeRepository.GetByEmail(ctx, userData.Email)
	switch {
	case err == nil:
		employeeID = &emp.ID
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, employeeID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
		Role:                 userData.Role,
		EmployeeID:           employeeID,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken string) error {
	token, err := jwtauth.VerifyToken(a.Service.JWTAuth(), accessToken)
	if err != nil {
		return auth.ErrInvalidToken
	}
	if a.Service.IsTokenRevoked(accessToken) {
		return auth.ErrTokenRevoked
	}

	expiresAt := token.Expiration()
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(24 * time.Hour)
	}
	a.Service.RevokeToken(accessToken, expiresAt)
	return nil
}

// CreateUser implements auth.AuthService.
func (a *AuthServiceImpl) CreateUser(ctx context.Context, req auth.CreateUserRequest) (auth.UserResponse, error) {
	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:              req.Email,
		PasswordHash:       hash,
		Role:               req.Role,
		Phone:              req.Phone,
		EmailNotifications: true,
		SMSNotifications:   false,
	}
	if req.EmailNotifications != nil {
		newUser.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		newUser.SMSNotifications = *req.SMSNotifications
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) {
			return auth.UserResponse{}, err
		}
		return auth.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return auth.NewUserResponse(created), nil
}

// EnsureUser implements auth.AuthService.
func (a *AuthServiceImpl) EnsureUser(ctx context.Context, req auth.CreateUserRequest) (auth.UserResponse, bool, error) {
	existing, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return auth.NewUserResponse(existing), false, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.UserResponse{}, false, fmt.Errorf("failed to get user by email: %w", err)
	}

	created, err := a.CreateUser(ctx, req)
	if err != nil {
		return auth.UserResponse{}, false, err
	}
	return created, true, nil
}
