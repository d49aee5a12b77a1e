package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.first_name, e.last_name, e.email, e.phone, e.position, e.department,
		e.hire_date, e.salary_rule_id, e.created_at, e.updated_at,
		sr.name, sr.kind, sr.monthly_amount, sr.base_salary, sr.bonus_percent, sr.created_at, sr.updated_at
	FROM employees e
	LEFT JOIN salary_rules sr ON sr.id = e.salary_rule_id
`

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var (
		emp           employee.Employee
		ruleName      *string
		ruleKind      *string
		monthlyAmount *decimal.Decimal
		baseSalary    *decimal.Decimal
		bonusPercent  *decimal.Decimal
		ruleCreatedAt *time.Time
		ruleUpdatedAt *time.Time
	)
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.Position, &emp.Department,
		&emp.HireDate, &emp.SalaryRuleID, &emp.CreatedAt, &emp.UpdatedAt,
		&ruleName, &ruleKind, &monthlyAmount, &baseSalary, &bonusPercent, &ruleCreatedAt, &ruleUpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if emp.SalaryRuleID != nil && ruleKind != nil {
		rule := &salary.SalaryRule{
			ID:            *emp.SalaryRuleID,
			Kind:          salary.Kind(*ruleKind),
			MonthlyAmount: monthlyAmount,
			BaseSalary:    baseSalary,
			BonusPercent:  bonusPercent,
		}
		if ruleName != nil {
			rule.Name = *ruleName
		}
		if ruleCreatedAt != nil {
			rule.CreatedAt = *ruleCreatedAt
		}
		if ruleUpdatedAt != nil {
			rule.UpdatedAt = *ruleUpdatedAt
		}
		emp.SalaryRule = rule
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	id, err := newID()
	if err != nil {
		return employee.Employee{}, err
	}

	query := `
		INSERT INTO employees (id, first_name, last_name, email, phone, position, department, hire_date, salary_rule_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = q.Exec(ctx, query,
		id,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.Position,
		newEmployee.Department,
		newEmployee.HireDate,
		newEmployee.SalaryRuleID,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case uniqueViolationCode:
			return employee.Employee{}, employee.ErrEmailExists
		case foreignKeyViolationCode:
			return employee.Employee{}, salary.ErrSalaryRuleNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e.GetByID(ctx, id)
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE LOWER(e.email) = LOWER($1)`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with email %s: %w", email, err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var (
		conditions []string
		args       []interface{}
	)
	argIdx := 1

	if filter.Department != nil && *filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("e.department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.email ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	query := employeeSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.last_name ASC, e.first_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}

	if len(updates) == 0 {
		return nil
	}

	setClauses := make([]string, 0, len(updates)+1)
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	sql := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", strings.Join(setClauses, ", "), i)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if pgErrorCode(err) == uniqueViolationCode {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee with id %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// AssignSalaryRule implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) AssignSalaryRule(ctx context.Context, id string, salaryRuleID *string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET salary_rule_id = $1, updated_at = NOW() WHERE id = $2`, salaryRuleID, id)
	if err != nil {
		if pgErrorCode(err) == foreignKeyViolationCode {
			return salary.ErrSalaryRuleNotFound
		}
		return fmt.Errorf("failed to assign salary rule to employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
