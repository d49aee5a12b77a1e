package salary

import "context"

type SalaryRuleService interface {
	Create(ctx context.Context, req CreateSalaryRuleRequest) (SalaryRuleResponse, error)
	Get(ctx context.Context, id string) (SalaryRuleResponse, error)
	List(ctx context.Context) ([]SalaryRuleResponse, error)
	Update(ctx context.Context, req UpdateSalaryRuleRequest) (SalaryRuleResponse, error)
}
