package employee

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/timetracking"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepository struct {
	employee.EmployeeRepository

	employees map[string]employee.Employee
	created   int
	lastEmail string
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	f.lastEmail = email
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.created++
	newEmployee.ID = "emp-new"
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

type fakeSalaryRuleRepository struct {
	salary.SalaryRuleRepository
	rules map[string]salary.SalaryRule
}

func (f *fakeSalaryRuleRepository) GetByID(ctx context.Context, id string) (salary.SalaryRule, error) {
	rule, ok := f.rules[id]
	if !ok {
		return salary.SalaryRule{}, salary.ErrSalaryRuleNotFound
	}
	return rule, nil
}

type fakeTimeEntryRepository struct {
	timetracking.TimeEntryRepository
	entries []timetracking.TimeEntry
}

func (f *fakeTimeEntryRepository) List(ctx context.Context, filter timetracking.TimeEntryFilter) ([]timetracking.TimeEntry, error) {
	return f.entries, nil
}

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func closedEntry(clockIn, clockOut time.Time) timetracking.TimeEntry {
	return timetracking.TimeEntry{
		EmployeeID: "emp-1",
		ClockIn:    clockIn,
		ClockOut:   &clockOut,
		WorkDate:   timetracking.DateOf(clockIn),
	}
}

func newTestService(emps map[string]employee.Employee, entries []timetracking.TimeEntry) (employee.EmployeeService, *fakeEmployeeRepository) {
	empRepo := &fakeEmployeeRepository{employees: emps}
	svc := NewEmployeeService(
		empRepo,
		&fakeSalaryRuleRepository{rules: map[string]salary.SalaryRule{}},
		&fakeTimeEntryRepository{entries: entries},
		func() time.Time { return at(2025, time.March, 15, 10, 0) },
	)
	return svc, empRepo
}

func TestSalaryHistory(t *testing.T) {
	base := decimal.NewFromInt(1000)
	bonus := decimal.NewFromInt(10)

	emps := map[string]employee.Employee{
		"emp-1": {
			ID:    "emp-1",
			Email: "ann@example.com",
			SalaryRule: &salary.SalaryRule{
				Kind:         salary.KindBonus,
				BaseSalary:   &base,
				BonusPercent: &bonus,
			},
		},
		"emp-2": {ID: "emp-2", Email: "bob@example.com"},
	}
	entries := []timetracking.TimeEntry{
		closedEntry(at(2025, time.March, 3, 9, 0), at(2025, time.March, 3, 17, 0)),
		closedEntry(at(2025, time.March, 3, 18, 0), at(2025, time.March, 3, 19, 30)),
		closedEntry(at(2025, time.February, 10, 9, 0), at(2025, time.February, 10, 13, 15)),
	}

	t.Run("bonus rule with ledger hours", func(t *testing.T) {
		svc, _ := newTestService(emps, entries)

		resp, err := svc.SalaryHistory(context.Background(), "emp-1", 3)
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(1100).Equal(resp.Current))
		require.NotNil(t, resp.RuleKind)
		assert.Equal(t, salary.KindBonus, *resp.RuleKind)

		require.Len(t, resp.Months, 3)
		assert.Equal(t, "2025-03", resp.Months[0].Month)
		assert.Equal(t, "2025-02", resp.Months[1].Month)
		assert.Equal(t, "2025-01", resp.Months[2].Month)

		march := resp.Months[0]
		assert.True(t, base.Equal(march.Base))
		assert.True(t, decimal.NewFromInt(100).Equal(march.Bonus))
		assert.Equal(t, 9.5, march.HoursWorked)
		assert.Equal(t, 1, march.DaysWorked)

		assert.Equal(t, 4.25, resp.Months[1].HoursWorked)
		assert.Equal(t, 1, resp.Months[1].DaysWorked)
		assert.Zero(t, resp.Months[2].HoursWorked)
		assert.Zero(t, resp.Months[2].DaysWorked)
	})

	t.Run("no rule evaluates to zero over the default window", func(t *testing.T) {
		svc, _ := newTestService(emps, nil)

		resp, err := svc.SalaryHistory(context.Background(), "emp-2", 0)
		require.NoError(t, err)

		assert.True(t, resp.Current.IsZero())
		assert.Nil(t, resp.RuleKind)
		assert.Len(t, resp.Months, defaultHistoryMonths)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, _ := newTestService(emps, nil)

		_, err := svc.SalaryHistory(context.Background(), "missing", 3)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestGetByEmail(t *testing.T) {
	svc, repo := newTestService(map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Email: "ann@example.com"},
	}, nil)

	emp, err := svc.GetByEmail(context.Background(), "  Ann@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", emp.ID)
	assert.Equal(t, "ann@example.com", repo.lastEmail)

	_, err = svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateEmployee_UnknownSalaryRule(t *testing.T) {
	svc, repo := newTestService(map[string]employee.Employee{}, nil)

	ruleID := "rule-missing"
	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FirstName:    "Ann",
		LastName:     "Lee",
		Email:        "ann@example.com",
		Position:     "Engineer",
		Department:   "R&D",
		HireDate:     "2024-01-02",
		SalaryRuleID: &ruleID,
	})

	assert.ErrorIs(t, err, salary.ErrSalaryRuleNotFound)
	assert.Zero(t, repo.created)
}
