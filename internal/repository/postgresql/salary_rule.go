package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryRuleRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRuleRepository(db *database.DB) salary.SalaryRuleRepository {
	return &salaryRuleRepositoryImpl{db: db}
}

const salaryRuleColumns = `id, name, kind, monthly_amount, base_salary, bonus_percent, created_at, updated_at`

func scanSalaryRule(row rowScanner) (salary.SalaryRule, error) {
	var rule salary.SalaryRule
	err := row.Scan(
		&rule.ID,
		&rule.Name,
		&rule.Kind,
		&rule.MonthlyAmount,
		&rule.BaseSalary,
		&rule.BonusPercent,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	return rule, err
}

// Create implements salary.SalaryRuleRepository.
func (r *salaryRuleRepositoryImpl) Create(ctx context.Context, rule salary.SalaryRule) (salary.SalaryRule, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return salary.SalaryRule{}, err
	}

	query := `
		INSERT INTO salary_rules (id, name, kind, monthly_amount, base_salary, bonus_percent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + salaryRuleColumns

	created, err := scanSalaryRule(q.QueryRow(ctx, query,
		id,
		rule.Name,
		rule.Kind,
		rule.MonthlyAmount,
		rule.BaseSalary,
		rule.BonusPercent,
	))
	if err != nil {
		return salary.SalaryRule{}, fmt.Errorf("failed to create salary rule: %w", err)
	}
	return created, nil
}

// GetByID implements salary.SalaryRuleRepository.
func (r *salaryRuleRepositoryImpl) GetByID(ctx context.Context, id string) (salary.SalaryRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryRuleColumns + ` FROM salary_rules WHERE id = $1`

	rule, err := scanSalaryRule(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryRule{}, salary.ErrSalaryRuleNotFound
		}
		return salary.SalaryRule{}, fmt.Errorf("failed to get salary rule with id %s: %w", id, err)
	}
	return rule, nil
}

// List implements salary.SalaryRuleRepository.
func (r *salaryRuleRepositoryImpl) List(ctx context.Context) ([]salary.SalaryRule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+salaryRuleColumns+` FROM salary_rules ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary rules: %w", err)
	}
	defer rows.Close()

	var rules []salary.SalaryRule
	for rows.Next() {
		rule, err := scanSalaryRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// Update implements salary.SalaryRuleRepository.
func (r *salaryRuleRepositoryImpl) Update(ctx context.Context, rule salary.SalaryRule) (salary.SalaryRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_rules
		SET name = $2, kind = $3, monthly_amount = $4, base_salary = $5, bonus_percent = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + salaryRuleColumns

	updated, err := scanSalaryRule(q.QueryRow(ctx, query,
		rule.ID,
		rule.Name,
		rule.Kind,
		rule.MonthlyAmount,
		rule.BaseSalary,
		rule.BonusPercent,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryRule{}, salary.ErrSalaryRuleNotFound
		}
		return salary.SalaryRule{}, fmt.Errorf("failed to update salary rule with id %s: %w", rule.ID, err)
	}
	return updated, nil
}
