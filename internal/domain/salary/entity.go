package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindFixed Kind = "fixed"
	KindBonus Kind = "bonus"
)

// Rule is a salary computation strategy. Only Fixed and BonusBased implement it.
type Rule interface {
	Kind() Kind
	sealed()
}

// Fixed pays a flat monthly amount. A nil amount resolves to zero.
type Fixed struct {
	MonthlyAmount *decimal.Decimal
}

func (Fixed) Kind() Kind { return KindFixed }
func (Fixed) sealed() {}

// BonusBased pays BaseSalary plus BonusPercent of it.
type BonusBased struct {
	BaseSalary   decimal.Decimal
	BonusPercent decimal.Decimal
}

func (BonusBased) Kind() Kind { return KindBonus }
func (BonusBased) sealed() {}

// SalaryRule is the persisted form of a Rule. Only the fields of its Kind are meaningful.
type SalaryRule struct {
	ID            string
	Name          string
	Kind          Kind
	MonthlyAmount *decimal.Decimal
	BaseSalary    *decimal.Decimal
	BonusPercent  *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Rule converts the stored record into its variant.
func (r *SalaryRule) Rule() Rule {
	if r == nil {
		return nil
	}
	switch r.Kind {
	case KindFixed:
		return Fixed{MonthlyAmount: r.MonthlyAmount}
	case KindBonus:
		rule := BonusBased{BaseSalary: decimal.Zero, BonusPercent: decimal.Zero}
		if r.BaseSalary != nil {
			rule.BaseSalary = *r.BaseSalary
		}
		if r.BonusPercent != nil {
			rule.BonusPercent = *r.BonusPercent
		}
		return rule
	default:
		return nil
	}
}
