package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc jwt.Service, gate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired(svc))
	if gate != nil {
		r.Use(gate)
	}
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		employeeID, _ := EmployeeIDFromContext(r.Context())
		w.Write([]byte(employeeID))
	})
	return r
}

func doRequest(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", time.Hour)
	employeeID := "emp-1"

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "ann@example.com", &employeeID, user.RoleEmployee)
	require.NoError(t, err)

	h := newTestRouter(svc, nil)

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(h, "").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		rec := doRequest(h, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "emp-1", rec.Body.String())
	})

	t.Run("sse token is not an access token", func(t *testing.T) {
		sseToken, _, err := svc.GenerateSSEToken(employeeID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doRequest(h, sseToken).Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		svc.RevokeToken(token, time.Unix(expiresAt, 0))
		assert.Equal(t, http.StatusUnauthorized, doRequest(h, token).Code)
	})
}

func TestRoleGates(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", time.Hour)
	employeeID := "emp-1"

	employeeToken, _, err := svc.GenerateAccessToken("user-1", "ann@example.com", &employeeID, user.RoleEmployee)
	require.NoError(t, err)
	hrToken, _, err := svc.GenerateAccessToken("user-2", "hr@example.com", nil, user.RoleHR)
	require.NoError(t, err)

	hrOnly := newTestRouter(svc, RequireHR)
	assert.Equal(t, http.StatusForbidden, doRequest(hrOnly, employeeToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(hrOnly, hrToken).Code)

	employeeOnly := newTestRouter(svc, RequireEmployee)
	assert.Equal(t, http.StatusOK, doRequest(employeeOnly, employeeToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(employeeOnly, hrToken).Code)
}
