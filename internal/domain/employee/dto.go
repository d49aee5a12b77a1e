package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Position     string  `json:"position"`
	Department   string  `json:"department"`
	HireDate     string  `json:"hire_date"`
	SalaryRuleID *string `json:"salary_rule_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if validator.IsEmpty(r.FirstName) {
		errs.Add("first_name", "first_name is required")
	}
	if len(r.FirstName) > 100 {
		errs.Add("first_name", "first_name must not exceed 100 characters")
	}
	if validator.IsEmpty(r.LastName) {
		errs.Add("last_name", "last_name is required")
	}
	if len(r.LastName) > 100 {
		errs.Add("last_name", "last_name must not exceed 100 characters")
	}
	if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "phone must contain 7 to 15 digits")
	}
	if validator.IsEmpty(r.Position) {
		errs.Add("position", "position is required")
	}
	if validator.IsEmpty(r.Department) {
		errs.Add("department", "department is required")
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
	}
	if r.SalaryRuleID != nil && !validator.IsValidUUID(*r.SalaryRuleID) {
		errs.Add("salary_rule_id", "salary_rule_id must be a valid UUID")
	}

	return errs.Err()
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs.Add("first_name", "first_name must not be empty")
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs.Add("last_name", "last_name must not be empty")
	}
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
		if !validator.IsValidEmail(email) {
			errs.Add("email", "email must be a valid email address")
		}
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone must contain 7 to 15 digits")
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs.Add("position", "position must not be empty")
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs.Add("department", "department must not be empty")
	}

	return errs.Err()
}

type AssignSalaryRuleRequest struct {
	EmployeeID   string  `json:"-"`
	SalaryRuleID *string `json:"salary_rule_id"`
}

func (r *AssignSalaryRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.SalaryRuleID != nil && !validator.IsValidUUID(*r.SalaryRuleID) {
		errs.Add("salary_rule_id", "salary_rule_id must be a valid UUID")
	}

	return errs.Err()
}

type EmployeeFilter struct {
	Department *string
	Search     *string
}

type EmployeeResponse struct {
	ID         string                     `json:"id"`
	FirstName  string                     `json:"first_name"`
	LastName   string                     `json:"last_name"`
	FullName   string                     `json:"full_name"`
	Email      string                     `json:"email"`
	Phone      string                     `json:"phone,omitempty"`
	Position   string                     `json:"position"`
	Department string                     `json:"department"`
	HireDate   string                     `json:"hire_date"`
	SalaryRule *salary.SalaryRuleResponse `json:"salary_rule,omitempty"`
	Salary     decimal.Decimal            `json:"salary"`
	CreatedAt  time.Time                  `json:"created_at"`
	UpdatedAt  time.Time                  `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		FullName:   e.FullName(),
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		HireDate:   e.HireDate.Format(validator.DateLayout),
		Salary:     e.Salary(),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if e.SalaryRule != nil {
		rule := salary.NewSalaryRuleResponse(*e.SalaryRule)
		resp.SalaryRule = &rule
	}
	return resp
}

type SalaryMonth struct {
	Month       string          `json:"month"`
	Base        decimal.Decimal `json:"base"`
	Bonus       decimal.Decimal `json:"bonus"`
	Total       decimal.Decimal `json:"total"`
	HoursWorked float64         `json:"hours_worked"`
	DaysWorked  int             `json:"days_worked"`
}

type SalaryHistoryResponse struct {
	EmployeeID string          `json:"employee_id"`
	Current    decimal.Decimal `json:"current"`
	RuleKind   *salary.Kind    `json:"rule_kind,omitempty"`
	Months     []SalaryMonth   `json:"months"`
}
