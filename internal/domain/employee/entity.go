package employee

import (
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Position     string
	Department   string
	HireDate     time.Time
	SalaryRuleID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	SalaryRule *salary.SalaryRule
}

func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// Salary evaluates the employee's current salary rule.
func (e Employee) Salary() decimal.Decimal {
	return salary.Evaluate(e.SalaryRule.Rule())
}
