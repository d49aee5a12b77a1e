package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetWorkerHours sums closed entries per employee. A limit of 0 returns everyone.
func (r *dashboardRepositoryImpl) GetWorkerHours(ctx context.Context, since time.Time, limit int) ([]dashboard.WorkerHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id,
			e.first_name || ' ' || e.last_name AS employee_name,
			ROUND((SUM(EXTRACT(EPOCH FROM (t.clock_out - t.clock_in))) / 3600)::numeric, 2)::float8 AS hours
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.clock_out IS NOT NULL AND t.clock_in >= $1
		GROUP BY e.id, e.first_name, e.last_name
		ORDER BY hours DESC, employee_name ASC
	`
	args := []interface{}{since}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker hours: %w", err)
	}
	defer rows.Close()

	var workers []dashboard.WorkerHours
	for rows.Next() {
		var w dashboard.WorkerHours
		if err := rows.Scan(&w.EmployeeID, &w.EmployeeName, &w.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan worker hours: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

// GetClockedIn returns employees with an open time entry on workDate.
func (r *dashboardRepositoryImpl) GetClockedIn(ctx context.Context, workDate time.Time) ([]dashboard.ClockedInEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.first_name || ' ' || e.last_name, t.clock_in
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.work_date = $1 AND t.clock_out IS NULL
		ORDER BY t.clock_in ASC
	`

	rows, err := q.Query(ctx, query, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get clocked in employees: %w", err)
	}
	defer rows.Close()

	var result []dashboard.ClockedInEmployee
	for rows.Next() {
		var c dashboard.ClockedInEmployee
		if err := rows.Scan(&c.EmployeeID, &c.EmployeeName, &c.ClockIn); err != nil {
			return nil, fmt.Errorf("failed to scan clocked in employee: %w", err)
		}
		result = append(result, c)
	}

	return result, rows.Err()
}

// GetRecruitmentStats returns vacancy and candidate counters in single query
func (r *dashboardRepositoryImpl) GetRecruitmentStats(ctx context.Context) (*dashboard.RecruitmentStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM vacancies WHERE is_active = TRUE) AS active_vacancies,
			(SELECT COUNT(*) FROM candidates) AS total_candidates,
			(SELECT COUNT(*) FROM candidates WHERE status = 'new') AS new_candidates
	`

	var stats dashboard.RecruitmentStats
	if err := q.QueryRow(ctx, query).Scan(&stats.ActiveVacancies, &stats.TotalCandidates, &stats.NewCandidates); err != nil {
		return nil, fmt.Errorf("failed to get recruitment stats: %w", err)
	}

	return &stats, nil
}
