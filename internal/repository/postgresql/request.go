package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

const requestSelect = `
	SELECT r.id, r.employee_id, r.request_type, r.reason, r.start_date, r.end_date, r.status,
		r.hr_comment, r.reviewed_by, r.reviewed_at, r.created_at, r.updated_at,
		e.first_name || ' ' || e.last_name
	FROM requests r
	JOIN employees e ON e.id = r.employee_id
`

func scanRequest(row rowScanner) (request.Request, error) {
	var req request.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.Reason, &req.StartDate, &req.EndDate, &req.Status,
		&req.HRComment, &req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	return req, err
}

// Create implements request.RequestRepository.
func (r *requestRepositoryImpl) Create(ctx context.Context, req request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return request.Request{}, err
	}

	query := `
		INSERT INTO requests (id, employee_id, request_type, reason, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = q.Exec(ctx, query,
		id,
		req.EmployeeID,
		req.Type,
		req.Reason,
		req.StartDate,
		req.EndDate,
		req.Status,
	)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to create request: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements request.RequestRepository.
func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanRequest(q.QueryRow(ctx, requestSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, fmt.Errorf("failed to get request with id %s: %w", id, err)
	}
	return req, nil
}

// List implements request.RequestRepository.
func (r *requestRepositoryImpl) List(ctx context.Context, filter request.RequestFilter) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("r.request_type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}
	if len(filter.IDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("r.id = ANY($%d)", argIdx))
		args = append(args, filter.IDs)
		argIdx++
	}

	query := requestSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY r.created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	var requests []request.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateStatus implements request.RequestRepository.
func (r *requestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.Status, reviewedBy string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE requests
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status, reviewedBy).Scan(&updatedID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, fmt.Errorf("failed to update status of request %s: %w", id, err)
		}

		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return request.Request{}, fmt.Errorf("failed to check request %s: %w", id, err)
		}
		if !exists {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, request.ErrRequestAlreadyProcessed
	}

	return r.GetByID(ctx, updatedID)
}

// UpdateComment implements request.RequestRepository.
func (r *requestRepositoryImpl) UpdateComment(ctx context.Context, id string, comment string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE requests SET hr_comment = $2, updated_at = NOW() WHERE id = $1`, id, comment)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to update comment of request %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return request.Request{}, request.ErrRequestNotFound
	}

	return r.GetByID(ctx, id)
}

// CountByStatus implements request.RequestRepository.
func (r *requestRepositoryImpl) CountByStatus(ctx context.Context, employeeID *string) (map[request.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT status, COUNT(*) FROM requests`
	var args []interface{}
	if employeeID != nil {
		query += " WHERE employee_id = $1"
		args = append(args, *employeeID)
	}
	query += " GROUP BY status"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests: %w", err)
	}
	defer rows.Close()

	counts := make(map[request.Status]int)
	for rows.Next() {
		var (
			status request.Status
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan request count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
