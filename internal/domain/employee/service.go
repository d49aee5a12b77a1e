package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// GetByEmail resolves a principal's contact email to an employee.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	AssignSalaryRule(ctx context.Context, req AssignSalaryRuleRequest) (EmployeeResponse, error)

	// SalaryHistory returns one entry per month, most recent first.
	SalaryHistory(ctx context.Context, id string, months int) (SalaryHistoryResponse, error)
}
