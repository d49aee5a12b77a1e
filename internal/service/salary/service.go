package salary

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/salary"
)

type SalaryRuleServiceImpl struct {
	salary.SalaryRuleRepository
}

func NewSalaryRuleService(salaryRuleRepository salary.SalaryRuleRepository) salary.SalaryRuleService {
	return &SalaryRuleServiceImpl{
		SalaryRuleRepository: salaryRuleRepository,
	}
}

// Create implements salary.SalaryRuleService.
func (s *SalaryRuleServiceImpl) Create(ctx context.Context, req salary.CreateSalaryRuleRequest) (salary.SalaryRuleResponse, error) {
	rule := normalize(salary.SalaryRule{
		Name:          req.Name,
		Kind:          req.Kind,
		MonthlyAmount: req.MonthlyAmount,
		BaseSalary:    req.BaseSalary,
		BonusPercent:  req.BonusPercent,
	})

	created, err := s.SalaryRuleRepository.Create(ctx, rule)
	if err != nil {
		return salary.SalaryRuleResponse{}, fmt.Errorf("failed to create salary rule: %w", err)
	}

	return salary.NewSalaryRuleResponse(created), nil
}

// Get implements salary.SalaryRuleService.
func (s *SalaryRuleServiceImpl) Get(ctx context.Context, id string) (salary.SalaryRuleResponse, error) {
	rule, err := s.SalaryRuleRepository.GetByID(ctx, id)
	if err != nil {
		return salary.SalaryRuleResponse{}, fmt.Errorf("failed to get salary rule: %w", err)
	}
	return salary.NewSalaryRuleResponse(rule), nil
}

// List implements salary.SalaryRuleService.
func (s *SalaryRuleServiceImpl) List(ctx context.Context) ([]salary.SalaryRuleResponse, error) {
	rules, err := s.SalaryRuleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary rules: %w", err)
	}

	resp := make([]salary.SalaryRuleResponse, 0, len(rules))
	for _, rule := range rules {
		resp = append(resp, salary.NewSalaryRuleResponse(rule))
	}
	return resp, nil
}

// Update implements salary.SalaryRuleService.
func (s *SalaryRuleServiceImpl) Update(ctx context.Context, req salary.UpdateSalaryRuleRequest) (salary.SalaryRuleResponse, error) {
	existing, err := s.SalaryRuleRepository.GetByID(ctx, req.ID)
	if err != nil {
		return salary.SalaryRuleResponse{}, fmt.Errorf("failed to get salary rule: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	existing.Kind = req.Kind
	existing.MonthlyAmount = req.MonthlyAmount
	existing.BaseSalary = req.BaseSalary
	existing.BonusPercent = req.BonusPercent

	updated, err := s.SalaryRuleRepository.Update(ctx, normalize(existing))
	if err != nil {
		return salary.SalaryRuleResponse{}, fmt.Errorf("failed to update salary rule: %w", err)
	}
	return salary.NewSalaryRuleResponse(updated), nil
}

// normalize clears the fields that do not belong to the rule's kind.
func normalize(rule salary.SalaryRule) salary.SalaryRule {
	switch rule.Kind {
	case salary.KindFixed:
		rule.BaseSalary = nil
		rule.BonusPercent = nil
	case salary.KindBonus:
		rule.MonthlyAmount = nil
	}
	return rule
}
