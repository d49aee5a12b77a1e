package dashboard

import (
	"context"
)

// DashboardService composes the read-only views for employees and HR
type DashboardService interface {
	// GetEmployeeDashboard returns the self-service overview of one employee
	GetEmployeeDashboard(ctx context.Context, employeeID string) (EmployeeDashboardResponse, error)

	// GetHRDashboard returns company-wide counters and reports
	GetHRDashboard(ctx context.Context) (HRDashboardResponse, error)

	// GetEmployeeDetail returns the HR view of one employee
	GetEmployeeDetail(ctx context.Context, employeeID string) (EmployeeDetailResponse, error)
}
