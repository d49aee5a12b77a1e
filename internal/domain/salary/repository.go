package salary

import "context"

type SalaryRuleRepository interface {
	Create(ctx context.Context, rule SalaryRule) (SalaryRule, error)
	GetByID(ctx context.Context, id string) (SalaryRule, error)
	List(ctx context.Context) ([]SalaryRule, error)
	Update(ctx context.Context, rule SalaryRule) (SalaryRule, error)
}
