package dashboard

import (
	"context"
	"time"
)

// WorkerHours is the closed time of one employee over a period.
type WorkerHours struct {
	EmployeeID   string
	EmployeeName string
	Hours        float64
}

// ClockedInEmployee is an employee with an open time entry.
type ClockedInEmployee struct {
	EmployeeID   string
	EmployeeName string
	ClockIn      time.Time
}

// RecruitmentStats combines vacancy and candidate counters in single query
type RecruitmentStats struct {
	ActiveVacancies int64
	TotalCandidates int64
	NewCandidates   int64
}

// DashboardRepository defines the aggregate queries behind the dashboards
type DashboardRepository interface {
	// GetWorkerHours returns closed hours per employee since the given instant, highest first
	GetWorkerHours(ctx context.Context, since time.Time, limit int) ([]WorkerHours, error)

	// GetClockedIn returns employees with an open entry on workDate
	GetClockedIn(ctx context.Context, workDate time.Time) ([]ClockedInEmployee, error)

	GetRecruitmentStats(ctx context.Context) (*RecruitmentStats, error)
}
