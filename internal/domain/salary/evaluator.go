package salary

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Evaluate resolves a rule to a non-negative monthly amount.
// A missing rule evaluates to zero.
func Evaluate(rule Rule) decimal.Decimal {
	base, bonus := Components(rule)
	total := base.Add(bonus).Round(2)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Components splits the evaluated amount into its base and bonus parts.
func Components(rule Rule) (base, bonus decimal.Decimal) {
	switch r := rule.(type) {
	case nil:
		return decimal.Zero, decimal.Zero
	case Fixed:
		if r.MonthlyAmount == nil {
			return decimal.Zero, decimal.Zero
		}
		return *r.MonthlyAmount, decimal.Zero
	case BonusBased:
		return r.BaseSalary, r.BaseSalary.Mul(r.BonusPercent).Div(hundred)
	default:
		panic(fmt.Sprintf("salary: unknown rule variant %T", rule))
	}
}
