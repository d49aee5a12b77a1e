package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

type fakeUsers struct {
	byEmail map[string]user.User
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUsers) Create(ctx context.Context, u user.User) (user.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.User{}, user.ErrUserEmailExists
	}
	u.ID = fmt.Sprintf("user-%d", len(f.byEmail)+1)
	f.byEmail[u.Email] = u
	return u, nil
}

// fakeEmployees only needs the email lookup used at login.
type fakeEmployees struct {
	employee.EmployeeRepository
	byEmail map[string]employee.Employee
}

func (f *fakeEmployees) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	e, ok := f.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func newTestAuthService() (auth.AuthService, *jwt.JWTService) {
	users := &fakeUsers{byEmail: map[string]user.User{}}
	employees := &fakeEmployees{byEmail: map[string]employee.Employee{
		"ada@example.com": {ID: "emp-1", Email: "ada@example.com"},
	}}
	jwtService := jwt.NewJWTService(testSecret, time.Hour)
	return NewAuthService(users, employees, jwtService), jwtService
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, auth.CreateUserRequest{Email: "ada@example.com", Password: "password123", Role: user.RoleEmployee})
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, auth.CreateUserRequest{Email: "hr@example.com", Password: "password123", Role: user.RoleHR})
	require.NoError(t, err)

	t.Run("employee resolves employee id", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "ada@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, user.RoleEmployee, resp.Role)
		require.NotNil(t, resp.EmployeeID)
		assert.Equal(t, "emp-1", *resp.EmployeeID)
	})

	t.Run("hr without employee record", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "hr@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, user.RoleHR, resp.Role)
		assert.Nil(t, resp.EmployeeID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ada@example.com", Password: "wrong-password"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, jwtService := newTestAuthService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, auth.CreateUserRequest{Email: "ada@example.com", Password: "password123", Role: user.RoleEmployee})
	require.NoError(t, err)
	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "ada@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))
	assert.ErrorIs(t, svc.Logout(ctx, resp.AccessToken), auth.ErrTokenRevoked)
	assert.ErrorIs(t, svc.Logout(ctx, "garbage"), auth.ErrInvalidToken)
}

func TestEnsureUser_Idempotent(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()
	req := auth.CreateUserRequest{Email: "hr@example.com", Password: "password123", Role: user.RoleHR}

	first, created, err := svc.EnsureUser(ctx, req)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.EnsureUser(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	_, err = svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}
