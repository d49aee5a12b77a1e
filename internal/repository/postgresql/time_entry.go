package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/timetracking"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timetracking.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

const timeEntryColumns = `id, employee_id, clock_in, clock_out, work_date, created_at`

func scanTimeEntry(row rowScanner) (timetracking.TimeEntry, error) {
	var entry timetracking.TimeEntry
	err := row.Scan(
		&entry.ID,
		&entry.EmployeeID,
		&entry.ClockIn,
		&entry.ClockOut,
		&entry.WorkDate,
		&entry.CreatedAt,
	)
	return entry, err
}

// Create implements timetracking.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry timetracking.TimeEntry) (timetracking.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return timetracking.TimeEntry{}, err
	}

	query := `
		INSERT INTO time_entries (id, employee_id, clock_in, clock_out, work_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + timeEntryColumns

	created, err := scanTimeEntry(q.QueryRow(ctx, query,
		id,
		entry.EmployeeID,
		entry.ClockIn,
		entry.ClockOut,
		entry.WorkDate,
	))
	if err != nil {
		if pgErrorCode(err) == uniqueViolationCode {
			return timetracking.TimeEntry{}, timetracking.ErrAlreadyClockedIn
		}
		return timetracking.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}
	return created, nil
}

// GetLatestOpen implements timetracking.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetLatestOpen(ctx context.Context, employeeID string, workDate time.Time) (timetracking.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1 AND work_date = $2 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, employeeID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timetracking.TimeEntry{}, timetracking.ErrTimeEntryNotFound
		}
		return timetracking.TimeEntry{}, fmt.Errorf("failed to get open time entry for employee %s: %w", employeeID, err)
	}
	return entry, nil
}

// Close implements timetracking.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Close(ctx context.Context, id string, clockOut time.Time) (timetracking.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET clock_out = $2
		WHERE id = $1 AND clock_out IS NULL
		RETURNING ` + timeEntryColumns

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id, clockOut))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timetracking.TimeEntry{}, timetracking.ErrTimeEntryNotFound
		}
		return timetracking.TimeEntry{}, fmt.Errorf("failed to close time entry with id %s: %w", id, err)
	}
	return entry, nil
}

// List implements timetracking.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) List(ctx context.Context, filter timetracking.TimeEntryFilter) ([]timetracking.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("t.work_date >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("t.work_date <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}
	if filter.OpenOnly {
		conditions = append(conditions, "t.clock_out IS NULL")
	}

	query := `
		SELECT t.id, t.employee_id, t.clock_in, t.clock_out, t.work_date, t.created_at,
			e.first_name || ' ' || e.last_name
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t.clock_in ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timetracking.TimeEntry
	for rows.Next() {
		var entry timetracking.TimeEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.EmployeeID,
			&entry.ClockIn,
			&entry.ClockOut,
			&entry.WorkDate,
			&entry.CreatedAt,
			&entry.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
