package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/timetracking"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

const defaultHistoryMonths = 6

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	salary.SalaryRuleRepository
	timetracking.TimeEntryRepository
	now func() time.Time
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	salaryRuleRepository salary.SalaryRuleRepository,
	timeEntryRepository timetracking.TimeEntryRepository,
	now func() time.Time,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:   employeeRepository,
		SalaryRuleRepository: salaryRuleRepository,
		TimeEntryRepository:  timeEntryRepository,
		now:                  now,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	hireDate, err := time.Parse(validator.DateLayout, req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	if req.SalaryRuleID != nil {
		if _, err := s.SalaryRuleRepository.GetByID(ctx, *req.SalaryRuleID); err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get salary rule: %w", err)
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     strings.TrimSpace(req.Position),
		Department:   strings.TrimSpace(req.Department),
		HireDate:     hireDate,
		SalaryRuleID: req.SalaryRuleID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.GetEmployee(ctx, created.ID)
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.NewEmployeeResponse(emp), nil
}

// GetByEmail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return emp, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp = append(resp, employee.NewEmployeeResponse(emp))
	}
	return resp, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.GetEmployee(ctx, req.ID)
}

// AssignSalaryRule implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AssignSalaryRule(ctx context.Context, req employee.AssignSalaryRuleRequest) (employee.EmployeeResponse, error) {
	if req.SalaryRuleID != nil {
		if _, err := s.SalaryRuleRepository.GetByID(ctx, *req.SalaryRuleID); err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get salary rule: %w", err)
		}
	}

	if err := s.EmployeeRepository.AssignSalaryRule(ctx, req.EmployeeID, req.SalaryRuleID); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to assign salary rule: %w", err)
	}
	return s.GetEmployee(ctx, req.EmployeeID)
}

// SalaryHistory implements employee.EmployeeService.
// Every month is priced with the current rule; hours come from the time ledger.
func (s *EmployeeServiceImpl) SalaryHistory(ctx context.Context, id string, months int) (employee.SalaryHistoryResponse, error) {
	if months <= 0 {
		months = defaultHistoryMonths
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.SalaryHistoryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	now := s.now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	from := currentMonth.AddDate(0, -(months - 1), 0)
	to := currentMonth.AddDate(0, 1, -1)

	entries, err := s.TimeEntryRepository.List(ctx, timetracking.TimeEntryFilter{
		EmployeeID: &emp.ID,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return employee.SalaryHistoryResponse{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	hours := make(map[string]float64)
	days := make(map[string]map[string]struct{})
	for _, e := range entries {
		key := e.WorkDate.Format("2006-01")
		hours[key] += timetracking.HoursWorked(e)
		if days[key] == nil {
			days[key] = make(map[string]struct{})
		}
		days[key][e.WorkDate.Format(validator.DateLayout)] = struct{}{}
	}

	rule := emp.SalaryRule.Rule()
	base, bonus := salary.Components(rule)
	total := salary.Evaluate(rule)

	resp := employee.SalaryHistoryResponse{
		EmployeeID: emp.ID,
		Current:    total,
		Months:     make([]employee.SalaryMonth, 0, months),
	}
	if rule != nil {
		kind := rule.Kind()
		resp.RuleKind = &kind
	}

	for i := 0; i < months; i++ {
		key := currentMonth.AddDate(0, -i, 0).Format("2006-01")
		resp.Months = append(resp.Months, employee.SalaryMonth{
			Month:       key,
			Base:        base,
			Bonus:       bonus,
			Total:       total,
			HoursWorked: timetracking.RoundHours(hours[key], 2),
			DaysWorked:  len(days[key]),
		})
	}

	return resp, nil
}
