package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/hrm-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

const pendingQueueLimit = 100

type RequestHandler interface {
	// Employee
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)

	// HR
	ListPending(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	BulkApprove(w http.ResponseWriter, r *http.Request)
	BulkReject(w http.ResponseWriter, r *http.Request)
	Comment(w http.ResponseWriter, r *http.Request)
}

type requestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &requestHandlerImpl{requestService: requestService}
}

// Submit implements RequestHandler.
func (h *requestHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(w, r)
	if !ok {
		return
	}

	var req request.SubmitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.requestService.Submit(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted successfully", created)
}

// ListMine implements RequestHandler.
func (h *requestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(w, r)
	if !ok {
		return
	}

	filter, err := parseRequestFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter.EmployeeID = &employeeID

	h.writeList(w, r, filter)
}

// GetMine implements RequestHandler.
func (h *requestHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	req, err := h.requestService.GetForEmployee(r.Context(), employeeID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, req)
}

// ListPending implements RequestHandler.
func (h *requestHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	pending := request.StatusPending
	h.writeList(w, r, request.RequestFilter{
		Status: &pending,
		Limit:  getIntQueryParam(r, "limit", pendingQueueLimit),
	})
}

// List implements RequestHandler.
func (h *requestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRequestFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter.EmployeeID = getOptionalQueryParam(r, "employee_id")

	h.writeList(w, r, filter)
}

func (h *requestHandlerImpl) writeList(w http.ResponseWriter, r *http.Request, filter request.RequestFilter) {
	requests, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Get implements RequestHandler.
func (h *requestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	req, err := h.requestService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, req)
}

// Approve implements RequestHandler.
func (h *requestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.Approve, "approved")
}

// Reject implements RequestHandler.
func (h *requestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.Reject, "rejected")
}

type transitionFunc func(ctx context.Context, requestID string, reviewerID string) (request.Outcome, error)

func (h *requestHandlerImpl) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc, verb string) {
	reviewerID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	outcome, err := fn(r.Context(), id, reviewerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request #"+id+" has been "+verb, outcome)
}

// BulkApprove implements RequestHandler.
func (h *requestHandlerImpl) BulkApprove(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.requestService.BulkApprove, "approved")
}

// BulkReject implements RequestHandler.
func (h *requestHandlerImpl) BulkReject(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.requestService.BulkReject, "rejected")
}

type bulkFunc func(ctx context.Context, requestIDs []string, reviewerID string) (int, error)

func (h *requestHandlerImpl) bulk(w http.ResponseWriter, r *http.Request, fn bulkFunc, verb string) {
	reviewerID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req request.BulkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	processed, err := fn(r.Context(), req.RequestIDs, reviewerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, pluralRequests(processed)+" "+verb, request.BulkResponse{
		Processed: processed,
		Requested: len(req.RequestIDs),
	})
}

// Comment implements RequestHandler.
func (h *requestHandlerImpl) Comment(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req request.CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.requestService.Comment(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Comment saved", updated)
}

func parseRequestFilter(r *http.Request) (request.RequestFilter, error) {
	var (
		errs   validator.ValidationErrors
		filter request.RequestFilter
	)

	if s := getOptionalQueryParam(r, "status"); s != nil {
		status := request.Status(*s)
		if !status.IsValid() {
			errs.Add("status", "status must be one of: pending, approved, rejected")
		}
		filter.Status = &status
	}
	if t := getOptionalQueryParam(r, "request_type"); t != nil {
		reqType := request.Type(*t)
		if !reqType.IsValid() {
			errs.Add("request_type", "request_type must be one of: vacation, sick, remote, other")
		}
		filter.Type = &reqType
	}
	filter.Limit = getIntQueryParam(r, "limit", 0)

	return filter, errs.Err()
}

func pluralRequests(n int) string {
	if n == 1 {
		return "1 request"
	}
	return strconv.Itoa(n) + " requests"
}
