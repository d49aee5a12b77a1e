package document

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
)

type DocumentServiceImpl struct {
	db database.Transactor
	document.DocumentRepository
	document.ContractRepository
	document.LeaveRecordRepository
	employee.EmployeeRepository
}

func NewDocumentService(
	db database.Transactor,
	documentRepository document.DocumentRepository,
	contractRepository document.ContractRepository,
	leaveRecordRepository document.LeaveRecordRepository,
	employeeRepository employee.EmployeeRepository,
) document.DocumentService {
	return &DocumentServiceImpl{
		db:                    db,
		DocumentRepository:    documentRepository,
		ContractRepository:    contractRepository,
		LeaveRecordRepository: leaveRecordRepository,
		EmployeeRepository:    employeeRepository,
	}
}

// IssueContract implements document.DocumentService.
func (s *DocumentServiceImpl) IssueContract(ctx context.Context, spec document.ContractSpec) (document.Contract, error) {
	if spec.EndDate != nil && spec.EndDate.Before(spec.StartDate) {
		return document.Contract{}, document.ErrInvalidPeriod
	}
	emp, err := s.EmployeeRepository.GetByID(ctx, spec.EmployeeID)
	if err != nil {
		return document.Contract{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var contract document.Contract
	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		doc, err := s.DocumentRepository.Create(txCtx, document.Document{
			Type:   document.TypeContract,
			Status: document.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create document: %w", err)
		}

		contract, err = s.ContractRepository.Create(txCtx, document.Contract{
			DocumentID: doc.ID,
			EmployeeID: spec.EmployeeID,
			Position:   strings.TrimSpace(spec.Position),
			Salary:     spec.Salary,
			StartDate:  spec.StartDate,
			EndDate:    spec.EndDate,
		})
		if err != nil {
			return fmt.Errorf("failed to create contract: %w", err)
		}
		contract.Document = doc
		return nil
	})
	if err != nil {
		return document.Contract{}, err
	}

	name := emp.FullName()
	contract.EmployeeName = &name
	return contract, nil
}

// IssueLeaveRecord implements document.DocumentService.
func (s *DocumentServiceImpl) IssueLeaveRecord(ctx context.Context, spec document.LeaveRecordSpec) (document.LeaveRecord, error) {
	if !spec.Kind.IsValid() {
		return document.LeaveRecord{}, document.ErrInvalidLeaveKind
	}
	if spec.EndDate.Before(spec.StartDate) {
		return document.LeaveRecord{}, document.ErrInvalidPeriod
	}
	emp, err := s.EmployeeRepository.GetByID(ctx, spec.EmployeeID)
	if err != nil {
		return document.LeaveRecord{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var record document.LeaveRecord
	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		doc, err := s.DocumentRepository.Create(txCtx, document.Document{
			Type:   document.TypeLeaveRecord,
			Status: document.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create document: %w", err)
		}

		record, err = s.LeaveRecordRepository.Create(txCtx, document.LeaveRecord{
			DocumentID: doc.ID,
			EmployeeID: spec.EmployeeID,
			Kind:       spec.Kind,
			Reason:     spec.Reason,
			StartDate:  spec.StartDate,
			EndDate:    spec.EndDate,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave record: %w", err)
		}
		record.Document = doc
		return nil
	})
	if err != nil {
		return document.LeaveRecord{}, err
	}

	name := emp.FullName()
	record.EmployeeName = &name
	return record, nil
}

// Issue implements document.DocumentService.
func (s *DocumentServiceImpl) Issue(ctx context.Context, spec document.Spec) (document.Issued, error) {
	switch v := spec.(type) {
	case document.ContractSpec:
		contract, err := s.IssueContract(ctx, v)
		if err != nil {
			return document.Issued{}, err
		}
		return document.Issued{Document: contract.Document, Contract: &contract}, nil
	case document.LeaveRecordSpec:
		record, err := s.IssueLeaveRecord(ctx, v)
		if err != nil {
			return document.Issued{}, err
		}
		return document.Issued{Document: record.Document, LeaveRecord: &record}, nil
	default:
		panic(fmt.Sprintf("document: unknown spec variant %T", spec))
	}
}

// SetStatus implements document.DocumentService.
func (s *DocumentServiceImpl) SetStatus(ctx context.Context, documentID string, status document.Status) (document.Document, error) {
	if !status.IsValid() {
		return document.Document{}, document.ErrInvalidStatus
	}
	doc, err := s.DocumentRepository.UpdateStatus(ctx, documentID, status)
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to update document status: %w", err)
	}
	return doc, nil
}

// GetDocument implements document.DocumentService.
func (s *DocumentServiceImpl) GetDocument(ctx context.Context, id string) (document.DocumentResponse, error) {
	doc, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to get document: %w", err)
	}
	resp := document.NewDocumentResponse(doc)

	switch doc.Type {
	case document.TypeContract:
		contract, err := s.ContractRepository.GetByDocumentID(ctx, doc.ID)
		if err != nil && !errors.Is(err, document.ErrContractNotFound) {
			return document.DocumentResponse{}, fmt.Errorf("failed to get contract: %w", err)
		}
		if err == nil {
			c := document.NewContractResponse(contract)
			resp.Contract = &c
		}
	case document.TypeLeaveRecord:
		record, err := s.LeaveRecordRepository.GetByDocumentID(ctx, doc.ID)
		if err != nil && !errors.Is(err, document.ErrLeaveRecordNotFound) {
			return document.DocumentResponse{}, fmt.Errorf("failed to get leave record: %w", err)
		}
		if err == nil {
			l := document.NewLeaveRecordResponse(record)
			resp.LeaveRecord = &l
		}
	}

	return resp, nil
}

// ListDocuments implements document.DocumentService.
func (s *DocumentServiceImpl) ListDocuments(ctx context.Context, filter document.DocumentFilter) ([]document.DocumentResponse, error) {
	docs, err := s.DocumentRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	resp := make([]document.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, document.NewDocumentResponse(d))
	}
	return resp, nil
}

// GetContract implements document.DocumentService.
func (s *DocumentServiceImpl) GetContract(ctx context.Context, id string) (document.ContractResponse, error) {
	contract, err := s.ContractRepository.GetByID(ctx, id)
	if err != nil {
		return document.ContractResponse{}, fmt.Errorf("failed to get contract: %w", err)
	}
	return document.NewContractResponse(contract), nil
}

// ListContracts implements document.DocumentService.
func (s *DocumentServiceImpl) ListContracts(ctx context.Context, employeeID *string) ([]document.ContractResponse, error) {
	contracts, err := s.ContractRepository.List(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	resp := make([]document.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		resp = append(resp, document.NewContractResponse(c))
	}
	return resp, nil
}

// LatestContract implements document.DocumentService.
func (s *DocumentServiceImpl) LatestContract(ctx context.Context, employeeID string) (document.ContractResponse, error) {
	contract, err := s.ContractRepository.GetLatestByEmployee(ctx, employeeID)
	if err != nil {
		return document.ContractResponse{}, fmt.Errorf("failed to get latest contract: %w", err)
	}
	return document.NewContractResponse(contract), nil
}

// GetLeaveRecord implements document.DocumentService.
func (s *DocumentServiceImpl) GetLeaveRecord(ctx context.Context, id string) (document.LeaveRecordResponse, error) {
	record, err := s.LeaveRecordRepository.GetByID(ctx, id)
	if err != nil {
		return document.LeaveRecordResponse{}, fmt.Errorf("failed to get leave record: %w", err)
	}
	return document.NewLeaveRecordResponse(record), nil
}

// ListLeaveRecords implements document.DocumentService.
func (s *DocumentServiceImpl) ListLeaveRecords(ctx context.Context, filter document.LeaveRecordFilter) ([]document.LeaveRecordResponse, error) {
	records, err := s.LeaveRecordRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}

	resp := make([]document.LeaveRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, document.NewLeaveRecordResponse(r))
	}
	return resp, nil
}
