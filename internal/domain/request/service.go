package request

import (
	"context"
)

type RequestService interface {
	Submit(ctx context.Context, employeeID string, req SubmitRequest) (RequestResponse, error)

	// Approve and Reject fail with ErrRequestAlreadyProcessed unless the request is pending.
	// Side effects after the status change are best effort and reported on the outcome.
	Approve(ctx context.Context, requestID string, reviewerID string) (Outcome, error)
	Reject(ctx context.Context, requestID string, reviewerID string) (Outcome, error)

	// BulkApprove and BulkReject skip requests that are not pending and return how many were processed.
	BulkApprove(ctx context.Context, requestIDs []string, reviewerID string) (int, error)
	BulkReject(ctx context.Context, requestIDs []string, reviewerID string) (int, error)

	Get(ctx context.Context, id string) (RequestResponse, error)
	GetForEmployee(ctx context.Context, employeeID string, id string) (RequestResponse, error)
	List(ctx context.Context, filter RequestFilter) ([]RequestResponse, error)
	Comment(ctx context.Context, id string, req CommentRequest) (RequestResponse, error)
	CountByStatus(ctx context.Context, employeeID *string) (StatusCounts, error)
}
