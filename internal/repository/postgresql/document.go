package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

const documentColumns = `id, document_type, status, created_at, updated_at`

func scanDocument(row rowScanner) (document.Document, error) {
	var doc document.Document
	err := row.Scan(&doc.ID, &doc.Type, &doc.Status, &doc.CreatedAt, &doc.UpdatedAt)
	return doc, err
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return document.Document{}, err
	}

	query := `
		INSERT INTO documents (id, document_type, status)
		VALUES ($1, $2, $3)
		RETURNING ` + documentColumns

	created, err := scanDocument(q.QueryRow(ctx, query, id, doc.Type, doc.Status))
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to create document: %w", err)
	}
	return created, nil
}

// GetByID implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	doc, err := scanDocument(q.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get document with id %s: %w", id, err)
	}
	return doc, nil
}

// List implements document.DocumentRepository.
func (r *documentRepositoryImpl) List(ctx context.Context, filter document.DocumentFilter) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	argIdx := 1

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("document_type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `SELECT ` + documentColumns + ` FROM documents`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// UpdateStatus implements document.DocumentRepository.
func (r *documentRepositoryImpl) UpdateStatus(ctx context.Context, id string, status document.Status) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE documents SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + documentColumns

	doc, err := scanDocument(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to update status of document %s: %w", id, err)
	}
	return doc, nil
}

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) document.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

const contractSelect = `
	SELECT c.id, c.document_id, c.employee_id, c.position, c.salary, c.start_date, c.end_date, c.created_at,
		d.id, d.document_type, d.status, d.created_at, d.updated_at,
		e.first_name || ' ' || e.last_name
	FROM contracts c
	JOIN documents d ON d.id = c.document_id
	JOIN employees e ON e.id = c.employee_id
`

func scanContract(row rowScanner) (document.Contract, error) {
	var c document.Contract
	err := row.Scan(
		&c.ID, &c.DocumentID, &c.EmployeeID, &c.Position, &c.Salary, &c.StartDate, &c.EndDate, &c.CreatedAt,
		&c.Document.ID, &c.Document.Type, &c.Document.Status, &c.Document.CreatedAt, &c.Document.UpdatedAt,
		&c.EmployeeName,
	)
	return c, err
}

// Create implements document.ContractRepository.
func (r *contractRepositoryImpl) Create(ctx context.Context, contract document.Contract) (document.Contract, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return document.Contract{}, err
	}

	query := `
		INSERT INTO contracts (id, document_id, employee_id, position, salary, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, document_id, employee_id, position, salary, start_date, end_date, created_at
	`

	var created document.Contract
	err = q.QueryRow(ctx, query,
		id,
		contract.DocumentID,
		contract.EmployeeID,
		contract.Position,
		contract.Salary,
		contract.StartDate,
		contract.EndDate,
	).Scan(
		&created.ID,
		&created.DocumentID,
		&created.EmployeeID,
		&created.Position,
		&created.Salary,
		&created.StartDate,
		&created.EndDate,
		&created.CreatedAt,
	)
	if err != nil {
		return document.Contract{}, fmt.Errorf("failed to create contract: %w", err)
	}
	return created, nil
}

// GetByID implements document.ContractRepository.
func (r *contractRepositoryImpl) GetByID(ctx context.Context, id string) (document.Contract, error) {
	return r.getOne(ctx, "c.id", id)
}

// GetByDocumentID implements document.ContractRepository.
func (r *contractRepositoryImpl) GetByDocumentID(ctx context.Context, documentID string) (document.Contract, error) {
	return r.getOne(ctx, "c.document_id", documentID)
}

func (r *contractRepositoryImpl) getOne(ctx context.Context, column, value string) (document.Contract, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanContract(q.QueryRow(ctx, contractSelect+fmt.Sprintf(" WHERE %s = $1", column), value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Contract{}, document.ErrContractNotFound
		}
		return document.Contract{}, fmt.Errorf("failed to get contract by %s %s: %w", column, value, err)
	}
	return c, nil
}

// GetLatestByEmployee implements document.ContractRepository.
func (r *contractRepositoryImpl) GetLatestByEmployee(ctx context.Context, employeeID string) (document.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := contractSelect + ` WHERE c.employee_id = $1 ORDER BY c.start_date DESC, c.created_at DESC LIMIT 1`

	c, err := scanContract(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Contract{}, document.ErrContractNotFound
		}
		return document.Contract{}, fmt.Errorf("failed to get latest contract of employee %s: %w", employeeID, err)
	}
	return c, nil
}

// List implements document.ContractRepository.
func (r *contractRepositoryImpl) List(ctx context.Context, employeeID *string) ([]document.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := contractSelect
	var args []interface{}
	if employeeID != nil {
		query += " WHERE c.employee_id = $1"
		args = append(args, *employeeID)
	}
	query += " ORDER BY c.start_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []document.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

type leaveRecordRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) document.LeaveRecordRepository {
	return &leaveRecordRepositoryImpl{db: db}
}

const leaveRecordSelect = `
	SELECT l.id, l.document_id, l.employee_id, l.leave_kind, l.reason, l.start_date, l.end_date, l.created_at,
		d.id, d.document_type, d.status, d.created_at, d.updated_at,
		e.first_name || ' ' || e.last_name
	FROM leave_records l
	JOIN documents d ON d.id = l.document_id
	JOIN employees e ON e.id = l.employee_id
`

func scanLeaveRecord(row rowScanner) (document.LeaveRecord, error) {
	var l document.LeaveRecord
	err := row.Scan(
		&l.ID, &l.DocumentID, &l.EmployeeID, &l.Kind, &l.Reason, &l.StartDate, &l.EndDate, &l.CreatedAt,
		&l.Document.ID, &l.Document.Type, &l.Document.Status, &l.Document.CreatedAt, &l.Document.UpdatedAt,
		&l.EmployeeName,
	)
	return l, err
}

// Create implements document.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Create(ctx context.Context, record document.LeaveRecord) (document.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return document.LeaveRecord{}, err
	}

	query := `
		INSERT INTO leave_records (id, document_id, employee_id, leave_kind, reason, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, document_id, employee_id, leave_kind, reason, start_date, end_date, created_at
	`

	var created document.LeaveRecord
	err = q.QueryRow(ctx, query,
		id,
		record.DocumentID,
		record.EmployeeID,
		record.Kind,
		record.Reason,
		record.StartDate,
		record.EndDate,
	).Scan(
		&created.ID,
		&created.DocumentID,
		&created.EmployeeID,
		&created.Kind,
		&created.Reason,
		&created.StartDate,
		&created.EndDate,
		&created.CreatedAt,
	)
	if err != nil {
		return document.LeaveRecord{}, fmt.Errorf("failed to create leave record: %w", err)
	}
	return created, nil
}

// GetByID implements document.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) GetByID(ctx context.Context, id string) (document.LeaveRecord, error) {
	return r.getOne(ctx, "l.id", id)
}

// GetByDocumentID implements document.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) GetByDocumentID(ctx context.Context, documentID string) (document.LeaveRecord, error) {
	return r.getOne(ctx, "l.document_id", documentID)
}

func (r *leaveRecordRepositoryImpl) getOne(ctx context.Context, column, value string) (document.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeaveRecord(q.QueryRow(ctx, leaveRecordSelect+fmt.Sprintf(" WHERE %s = $1", column), value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.LeaveRecord{}, document.ErrLeaveRecordNotFound
		}
		return document.LeaveRecord{}, fmt.Errorf("failed to get leave record by %s %s: %w", column, value, err)
	}
	return l, nil
}

// List implements document.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) List(ctx context.Context, filter document.LeaveRecordFilter) ([]document.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("l.leave_kind = $%d", argIdx))
		args = append(args, *filter.Kind)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("d.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.ActiveOn != nil {
		conditions = append(conditions, fmt.Sprintf("l.start_date <= $%d AND l.end_date >= $%d", argIdx, argIdx))
		args = append(args, *filter.ActiveOn)
		argIdx++
	}
	if filter.StartFrom != nil {
		conditions = append(conditions, fmt.Sprintf("l.start_date >= $%d", argIdx))
		args = append(args, *filter.StartFrom)
		argIdx++
	}
	if filter.StartTo != nil {
		conditions = append(conditions, fmt.Sprintf("l.start_date <= $%d", argIdx))
		args = append(args, *filter.StartTo)
		argIdx++
	}

	query := leaveRecordSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY l.start_date ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []document.LeaveRecord
	for rows.Next() {
		l, err := scanLeaveRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, l)
	}
	return records, rows.Err()
}
