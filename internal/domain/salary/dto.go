package salary

import (
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSalaryRuleRequest struct {
	Name          string           `json:"name"`
	Kind          Kind             `json:"kind"`
	MonthlyAmount *decimal.Decimal `json:"monthly_amount,omitempty"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	BonusPercent  *decimal.Decimal `json:"bonus_percent,omitempty"`
}

func (r *CreateSalaryRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if len(r.Name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}
	validateAmounts(&errs, r.Kind, r.MonthlyAmount, r.BaseSalary, r.BonusPercent)

	return errs.Err()
}

type UpdateSalaryRuleRequest struct {
	ID            string           `json:"-"`
	Name          *string          `json:"name,omitempty"`
	Kind          Kind             `json:"kind"`
	MonthlyAmount *decimal.Decimal `json:"monthly_amount,omitempty"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	BonusPercent  *decimal.Decimal `json:"bonus_percent,omitempty"`
}

func (r *UpdateSalaryRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	validateAmounts(&errs, r.Kind, r.MonthlyAmount, r.BaseSalary, r.BonusPercent)

	return errs.Err()
}

func validateAmounts(errs *validator.ValidationErrors, kind Kind, monthly, base, percent *decimal.Decimal) {
	switch kind {
	case KindFixed:
		if validator.IsNegative(monthly) {
			errs.Add("monthly_amount", "monthly_amount must not be negative")
		}
	case KindBonus:
		if base == nil {
			errs.Add("base_salary", "base_salary is required for bonus rules")
		} else if base.IsNegative() {
			errs.Add("base_salary", "base_salary must not be negative")
		}
		if percent == nil {
			errs.Add("bonus_percent", "bonus_percent is required for bonus rules")
		} else if percent.IsNegative() {
			errs.Add("bonus_percent", "bonus_percent must not be negative")
		}
	default:
		errs.Add("kind", "kind must be one of: fixed, bonus")
	}
}

type SalaryRuleResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Kind          Kind             `json:"kind"`
	MonthlyAmount *decimal.Decimal `json:"monthly_amount,omitempty"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	BonusPercent  *decimal.Decimal `json:"bonus_percent,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func NewSalaryRuleResponse(r SalaryRule) SalaryRuleResponse {
	return SalaryRuleResponse{
		ID:            r.ID,
		Name:          r.Name,
		Kind:          r.Kind,
		MonthlyAmount: r.MonthlyAmount,
		BaseSalary:    r.BaseSalary,
		BonusPercent:  r.BonusPercent,
		Amount:        Evaluate(r.Rule()),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
