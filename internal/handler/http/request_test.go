package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrm-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRequestID  = "0190a5b4-7c3e-7a1b-8c2d-1234567890ab"
	testRequestID2 = "0190a5b4-7c3e-7a1b-8c2d-1234567890ac"
)

// fakeRequestService records the reviewer and answers from canned values.
type fakeRequestService struct {
	request.RequestService

	approveErr   error
	processed    int
	lastReviewer string
	lastIDs      []string
}

func (f *fakeRequestService) Approve(ctx context.Context, requestID string, reviewerID string) (request.Outcome, error) {
	f.lastReviewer = reviewerID
	if f.approveErr != nil {
		return request.Outcome{}, f.approveErr
	}
	return request.Outcome{Request: request.RequestResponse{ID: requestID, Status: request.StatusApproved}}, nil
}

func (f *fakeRequestService) BulkApprove(ctx context.Context, requestIDs []string, reviewerID string) (int, error) {
	f.lastReviewer = reviewerID
	f.lastIDs = requestIDs
	return f.processed, nil
}

func newRequestTestRouter(t *testing.T, svc request.RequestService) (http.Handler, string) {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	token, _, err := jwtService.GenerateAccessToken("hr-user-1", "hr@example.com", nil, user.RoleHR)
	require.NoError(t, err)

	h := NewRequestHandler(svc)
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(middleware.AuthRequired(jwtService))
	r.Use(middleware.RequireHR)
	r.Post("/requests/{id}/approve", h.Approve)
	r.Post("/requests/bulk-approve", h.BulkApprove)

	return r, token
}

func doJSON(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequestHandler_Approve(t *testing.T) {
	t.Run("approves and uses the user id as reviewer", func(t *testing.T) {
		svc := &fakeRequestService{}
		h, token := newRequestTestRouter(t, svc)

		rec := doJSON(h, http.MethodPost, "/requests/"+testRequestID+"/approve", token, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hr-user-1", svc.lastReviewer)

		var body struct {
			Message string          `json:"message"`
			Data    request.Outcome `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Request #"+testRequestID+" has been approved", body.Message)
		assert.Equal(t, request.StatusApproved, body.Data.Request.Status)
	})

	t.Run("already processed is a conflict", func(t *testing.T) {
		svc := &fakeRequestService{approveErr: request.ErrRequestAlreadyProcessed}
		h, token := newRequestTestRouter(t, svc)

		rec := doJSON(h, http.MethodPost, "/requests/"+testRequestID+"/approve", token, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown request is not found", func(t *testing.T) {
		svc := &fakeRequestService{approveErr: request.ErrRequestNotFound}
		h, token := newRequestTestRouter(t, svc)

		rec := doJSON(h, http.MethodPost, "/requests/"+testRequestID+"/approve", token, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := &fakeRequestService{}
		h, token := newRequestTestRouter(t, svc)

		rec := doJSON(h, http.MethodPost, "/requests/not-a-uuid/approve", token, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, svc.lastReviewer)
	})
}

func TestRequestHandler_BulkApprove(t *testing.T) {
	t.Run("reports processed against requested", func(t *testing.T) {
		svc := &fakeRequestService{processed: 1}
		h, token := newRequestTestRouter(t, svc)

		body := `{"request_ids":["` + testRequestID + `","` + testRequestID2 + `"]}`
		rec := doJSON(h, http.MethodPost, "/requests/bulk-approve", token, body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{testRequestID, testRequestID2}, svc.lastIDs)

		var resp struct {
			Message string               `json:"message"`
			Data    request.BulkResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "1 request approved", resp.Message)
		assert.Equal(t, request.BulkResponse{Processed: 1, Requested: 2}, resp.Data)
	})

	t.Run("empty selection fails validation", func(t *testing.T) {
		svc := &fakeRequestService{}
		h, token := newRequestTestRouter(t, svc)

		rec := doJSON(h, http.MethodPost, "/requests/bulk-approve", token, `{"request_ids":[]}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Nil(t, svc.lastIDs)
	})
}
