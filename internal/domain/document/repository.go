package document

import (
	"context"
)

// DocumentRepository - interface for documents table
type DocumentRepository interface {
	Create(ctx context.Context, doc Document) (Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	List(ctx context.Context, filter DocumentFilter) ([]Document, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Document, error)
}

// ContractRepository - interface for contracts table
type ContractRepository interface {
	Create(ctx context.Context, contract Contract) (Contract, error)
	GetByID(ctx context.Context, id string) (Contract, error)
	GetByDocumentID(ctx context.Context, documentID string) (Contract, error)
	List(ctx context.Context, employeeID *string) ([]Contract, error)
	GetLatestByEmployee(ctx context.Context, employeeID string) (Contract, error)
}

// LeaveRecordRepository - interface for leave_records table
type LeaveRecordRepository interface {
	Create(ctx context.Context, record LeaveRecord) (LeaveRecord, error)
	GetByID(ctx context.Context, id string) (LeaveRecord, error)
	GetByDocumentID(ctx context.Context, documentID string) (LeaveRecord, error)
	List(ctx context.Context, filter LeaveRecordFilter) ([]LeaveRecord, error)
}
