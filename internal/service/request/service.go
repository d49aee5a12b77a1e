package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/request"
)

type RequestServiceImpl struct {
	request.RequestRepository
	notifications notification.Service
	documents     document.DocumentService
}

func NewRequestService(
	requestRepository request.RequestRepository,
	notificationService notification.Service,
	documentService document.DocumentService,
) request.RequestService {
	return &RequestServiceImpl{
		RequestRepository: requestRepository,
		notifications:     notificationService,
		documents:         documentService,
	}
}

// Submit implements request.RequestService.
func (s *RequestServiceImpl) Submit(ctx context.Context, employeeID string, req request.SubmitRequest) (request.RequestResponse, error) {
	if !req.Type.IsValid() {
		return request.RequestResponse{}, request.ErrInvalidType
	}
	start, end := req.Period()
	if start != nil && end != nil && end.Before(*start) {
		return request.RequestResponse{}, request.ErrInvalidPeriod
	}

	created, err := s.RequestRepository.Create(ctx, request.Request{
		EmployeeID: employeeID,
		Type:       req.Type,
		Reason:     strings.TrimSpace(req.Reason),
		StartDate:  start,
		EndDate:    end,
		Status:     request.StatusPending,
	})
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	return request.NewRequestResponse(created), nil
}

// Approve implements request.RequestService.
func (s *RequestServiceImpl) Approve(ctx context.Context, requestID string, reviewerID string) (request.Outcome, error) {
	updated, err := s.transition(ctx, requestID, request.StatusApproved, reviewerID)
	if err != nil {
		return request.Outcome{}, err
	}
	return s.afterApprove(ctx, updated), nil
}

// Reject implements request.RequestService.
func (s *RequestServiceImpl) Reject(ctx context.Context, requestID string, reviewerID string) (request.Outcome, error) {
	updated, err := s.transition(ctx, requestID, request.StatusRejected, reviewerID)
	if err != nil {
		return request.Outcome{}, err
	}
	return s.afterReject(ctx, updated), nil
}

// BulkApprove implements request.RequestService.
func (s *RequestServiceImpl) BulkApprove(ctx context.Context, requestIDs []string, reviewerID string) (int, error) {
	return s.bulk(ctx, requestIDs, request.StatusApproved, reviewerID)
}

// BulkReject implements request.RequestService.
func (s *RequestServiceImpl) BulkReject(ctx context.Context, requestIDs []string, reviewerID string) (int, error) {
	return s.bulk(ctx, requestIDs, request.StatusRejected, reviewerID)
}

func (s *RequestServiceImpl) bulk(ctx context.Context, requestIDs []string, status request.Status, reviewerID string) (int, error) {
	if len(requestIDs) == 0 {
		return 0, nil
	}

	pendingStatus := request.StatusPending
	pending, err := s.RequestRepository.List(ctx, request.RequestFilter{
		IDs:    dedupe(requestIDs),
		Status: &pendingStatus,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list pending requests: %w", err)
	}

	processed := 0
	for _, r := range pending {
		updated, err := s.transition(ctx, r.ID, status, reviewerID)
		if err != nil {
			// Lost a race with another reviewer.
			if errors.Is(err, request.ErrRequestAlreadyProcessed) {
				continue
			}
			return processed, err
		}

		if status == request.StatusApproved {
			s.afterApprove(ctx, updated)
		} else {
			s.afterReject(ctx, updated)
		}
		processed++
	}

	slog.Info("bulk request transition", "status", status, "requested", len(requestIDs), "processed", processed, "reviewer_id", reviewerID)
	return processed, nil
}

// transition is the only place a request leaves pending.
func (s *RequestServiceImpl) transition(ctx context.Context, requestID string, status request.Status, reviewerID string) (request.Request, error) {
	updated, err := s.RequestRepository.UpdateStatus(ctx, requestID, status, reviewerID)
	if err != nil {
		if errors.Is(err, request.ErrRequestAlreadyProcessed) || errors.Is(err, request.ErrRequestNotFound) {
			return request.Request{}, err
		}
		return request.Request{}, fmt.Errorf("failed to update request status: %w", err)
	}
	return updated, nil
}

func (s *RequestServiceImpl) afterApprove(ctx context.Context, r request.Request) request.Outcome {
	outcome := request.Outcome{Request: request.NewRequestResponse(r)}

	message := fmt.Sprintf("Your request #%s (%s) has been approved", r.ID, r.Type)
	s.notify(ctx, &outcome, r, notification.KindLeaveApproved, message)

	if !r.Type.IsLeave() || !r.HasPeriod() {
		return outcome
	}

	reason := r.Reason
	if strings.TrimSpace(reason) == "" {
		reason = fmt.Sprintf("Request #%s", r.ID)
	}

	record, err := s.documents.IssueLeaveRecord(ctx, document.LeaveRecordSpec{
		EmployeeID: r.EmployeeID,
		Kind:       document.LeaveKind(r.Type),
		Reason:     reason,
		StartDate:  *r.StartDate,
		EndDate:    *r.EndDate,
	})
	if err != nil {
		slog.Error("failed to issue leave record for approved request", "request_id", r.ID, "error", err)
		outcome.Warnings = append(outcome.Warnings, "leave record could not be issued")
		return outcome
	}

	doc, err := s.documents.SetStatus(ctx, record.DocumentID, document.StatusApproved)
	if err != nil {
		slog.Error("failed to approve leave record document", "request_id", r.ID, "document_id", record.DocumentID, "error", err)
		outcome.Warnings = append(outcome.Warnings, "leave record was issued but could not be approved")
	} else {
		record.Document = doc
	}

	resp := document.NewLeaveRecordResponse(record)
	outcome.LeaveRecord = &resp
	return outcome
}

func (s *RequestServiceImpl) afterReject(ctx context.Context, r request.Request) request.Outcome {
	outcome := request.Outcome{Request: request.NewRequestResponse(r)}

	message := fmt.Sprintf("Your request #%s (%s) has been rejected", r.ID, r.Type)
	s.notify(ctx, &outcome, r, notification.KindLeaveRejected, message)
	return outcome
}

func (s *RequestServiceImpl) notify(ctx context.Context, outcome *request.Outcome, r request.Request, kind notification.Kind, message string) {
	created, err := s.notifications.Notify(ctx, r.EmployeeID, kind, message, notification.ChannelPush)
	if err != nil {
		slog.Error("failed to notify employee about request", "request_id", r.ID, "employee_id", r.EmployeeID, "kind", kind, "error", err)
		outcome.Warnings = append(outcome.Warnings, "employee could not be notified")
		return
	}
	for _, n := range created {
		outcome.Notifications = append(outcome.Notifications, notification.NewNotificationResponse(n))
	}
}

// Get implements request.RequestService.
func (s *RequestServiceImpl) Get(ctx context.Context, id string) (request.RequestResponse, error) {
	r, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to get request: %w", err)
	}
	return request.NewRequestResponse(r), nil
}

// GetForEmployee implements request.RequestService. Requests of other
// employees are reported as not found.
func (s *RequestServiceImpl) GetForEmployee(ctx context.Context, employeeID string, id string) (request.RequestResponse, error) {
	r, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to get request: %w", err)
	}
	if r.EmployeeID != employeeID {
		return request.RequestResponse{}, request.ErrRequestNotFound
	}
	return request.NewRequestResponse(r), nil
}

// List implements request.RequestService.
func (s *RequestServiceImpl) List(ctx context.Context, filter request.RequestFilter) ([]request.RequestResponse, error) {
	requests, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	resp := make([]request.RequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, request.NewRequestResponse(r))
	}
	return resp, nil
}

// Comment implements request.RequestService.
func (s *RequestServiceImpl) Comment(ctx context.Context, id string, req request.CommentRequest) (request.RequestResponse, error) {
	r, err := s.RequestRepository.UpdateComment(ctx, id, strings.TrimSpace(req.Comment))
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to update request comment: %w", err)
	}
	return request.NewRequestResponse(r), nil
}

// CountByStatus implements request.RequestService.
func (s *RequestServiceImpl) CountByStatus(ctx context.Context, employeeID *string) (request.StatusCounts, error) {
	counts, err := s.RequestRepository.CountByStatus(ctx, employeeID)
	if err != nil {
		return request.StatusCounts{}, fmt.Errorf("failed to count requests: %w", err)
	}

	return request.StatusCounts{
		Total:    counts[request.StatusPending] + counts[request.StatusApproved] + counts[request.StatusRejected],
		Pending:  counts[request.StatusPending],
		Approved: counts[request.StatusApproved],
		Rejected: counts[request.StatusRejected],
	}, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
