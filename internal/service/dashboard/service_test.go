package dashboard

import (
	"testing"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRule(amount int64) *salary.SalaryRule {
	a := decimal.NewFromInt(amount)
	return &salary.SalaryRule{Kind: salary.KindFixed, MonthlyAmount: &a}
}

func bonusRule(base int64, percent string) *salary.SalaryRule {
	b := decimal.NewFromInt(base)
	p := decimal.RequireFromString(percent)
	return &salary.SalaryRule{Kind: salary.KindBonus, BaseSalary: &b, BonusPercent: &p}
}

func TestDepartmentStats(t *testing.T) {
	employees := []employee.Employee{
		{Department: "Sales", SalaryRule: bonusRule(3000, "10")},
		{Department: "Engineering", SalaryRule: fixedRule(5000)},
		{Department: "Engineering", SalaryRule: fixedRule(4000)},
		{Department: "Sales"},
	}

	stats, total := departmentStats(employees)
	require.Len(t, stats, 2)

	assert.Equal(t, "Engineering", stats[0].Department)
	assert.Equal(t, 2, stats[0].Employees)
	assert.True(t, decimal.NewFromInt(9000).Equal(stats[0].TotalSalary))
	assert.True(t, decimal.NewFromInt(4500).Equal(stats[0].AverageSalary))

	assert.Equal(t, "Sales", stats[1].Department)
	assert.Equal(t, 2, stats[1].Employees)
	assert.True(t, decimal.NewFromInt(3300).Equal(stats[1].TotalSalary), "a missing rule counts as zero")
	assert.True(t, decimal.NewFromInt(1650).Equal(stats[1].AverageSalary))

	assert.True(t, decimal.NewFromInt(12300).Equal(total))
}

func TestDepartmentStats_Empty(t *testing.T) {
	stats, total := departmentStats(nil)
	assert.Empty(t, stats)
	assert.True(t, total.IsZero())
}
