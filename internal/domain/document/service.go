package document

import (
	"context"
)

type DocumentService interface {
	// IssueContract creates a pending document and its contract atomically.
	IssueContract(ctx context.Context, spec ContractSpec) (Contract, error)

	// IssueLeaveRecord creates a pending document and its leave record atomically.
	IssueLeaveRecord(ctx context.Context, spec LeaveRecordSpec) (LeaveRecord, error)

	// Issue dispatches on the spec variant. It panics on a variant it does not know.
	Issue(ctx context.Context, spec Spec) (Issued, error)

	SetStatus(ctx context.Context, documentID string, status Status) (Document, error)

	GetDocument(ctx context.Context, id string) (DocumentResponse, error)
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]DocumentResponse, error)

	GetContract(ctx context.Context, id string) (ContractResponse, error)
	ListContracts(ctx context.Context, employeeID *string) ([]ContractResponse, error)
	LatestContract(ctx context.Context, employeeID string) (ContractResponse, error)

	GetLeaveRecord(ctx context.Context, id string) (LeaveRecordResponse, error)
	ListLeaveRecords(ctx context.Context, filter LeaveRecordFilter) ([]LeaveRecordResponse, error)

	// RenderPDF renders the document's payload. It returns the file content and a file name.
	RenderPDF(ctx context.Context, documentID string) ([]byte, string, error)
}
