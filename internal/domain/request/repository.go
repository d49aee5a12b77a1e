package request

import (
	"context"
)

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, error)

	// UpdateStatus moves a pending request to status. A request that is no longer
	// pending is left untouched and ErrRequestAlreadyProcessed is returned.
	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy string) (Request, error)

	UpdateComment(ctx context.Context, id string, comment string) (Request, error)
	CountByStatus(ctx context.Context, employeeID *string) (map[Status]int, error)
}
