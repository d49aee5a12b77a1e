package recruitment

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type VacancyFilter struct {
	ActiveOnly bool
	Department *string
}

type CandidateFilter struct {
	VacancyID *string
	Status    *CandidateStatus
}

type CreateVacancyRequest struct {
	Title        string           `json:"title"`
	Department   string           `json:"department"`
	Description  string           `json:"description"`
	Requirements string           `json:"requirements"`
	SalaryFrom   *decimal.Decimal `json:"salary_from,omitempty"`
	SalaryTo     *decimal.Decimal `json:"salary_to,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

func (r *CreateVacancyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	}
	if len(r.Title) > 200 {
		errs.Add("title", "title must not exceed 200 characters")
	}
	if validator.IsEmpty(r.Department) {
		errs.Add("department", "department is required")
	}
	validateSalaryRange(&errs, r.SalaryFrom, r.SalaryTo)

	return errs.Err()
}

type UpdateVacancyRequest struct {
	ID           string           `json:"-"`
	Title        *string          `json:"title,omitempty"`
	Department   *string          `json:"department,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Requirements *string          `json:"requirements,omitempty"`
	SalaryFrom   *decimal.Decimal `json:"salary_from,omitempty"`
	SalaryTo     *decimal.Decimal `json:"salary_to,omitempty"`
}

func (r *UpdateVacancyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs.Add("title", "title must not be empty")
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs.Add("department", "department must not be empty")
	}
	validateSalaryRange(&errs, r.SalaryFrom, r.SalaryTo)

	return errs.Err()
}

func validateSalaryRange(errs *validator.ValidationErrors, from, to *decimal.Decimal) {
	if validator.IsNegative(from) {
		errs.Add("salary_from", "salary_from must not be negative")
	}
	if validator.IsNegative(to) {
		errs.Add("salary_to", "salary_to must not be negative")
	}
	if from != nil && to != nil && from.GreaterThan(*to) {
		errs.Add("salary_to", ErrInvalidSalaryRange.Error())
	}
}

type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type ApplyRequest struct {
	VacancyID  string `json:"vacancy_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	// ResumeText is the pasted resume or experience summary; a file may be attached as well.
	ResumeText string `json:"resume_text"`
	Notes      string `json:"notes"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if !validator.IsValidUUID(r.VacancyID) {
		errs.Add("vacancy_id", "vacancy_id must be a valid UUID")
	}
	if validator.IsEmpty(r.FirstName) {
		errs.Add("first_name", "first_name is required")
	}
	if validator.IsEmpty(r.LastName) {
		errs.Add("last_name", "last_name is required")
	}
	if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "phone must contain 7 to 15 digits")
	}

	return errs.Err()
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type BulkStatusRequest struct {
	CandidateIDs []string        `json:"candidate_ids"`
	Status       CandidateStatus `json:"status"`
}

func (r *BulkStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.CandidateIDs) == 0 {
		errs.Add("candidate_ids", "candidate_ids must contain at least one id")
	}
	for _, id := range r.CandidateIDs {
		if !validator.IsValidUUID(id) {
			errs.Add("candidate_ids", "candidate_ids must contain valid UUIDs")
			break
		}
	}
	if !r.Status.IsValid() {
		errs.Add("status", "status must be one of: new, interview, offer, hired, rejected")
	}

	return errs.Err()
}

type VacancyResponse struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Department     string           `json:"department"`
	Description    string           `json:"description"`
	Requirements   string           `json:"requirements"`
	SalaryFrom     *decimal.Decimal `json:"salary_from,omitempty"`
	SalaryTo       *decimal.Decimal `json:"salary_to,omitempty"`
	IsActive       bool             `json:"is_active"`
	CandidateCount int              `json:"candidate_count"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func NewVacancyResponse(v Vacancy) VacancyResponse {
	return VacancyResponse{
		ID:             v.ID,
		Title:          v.Title,
		Department:     v.Department,
		Description:    v.Description,
		Requirements:   v.Requirements,
		SalaryFrom:     v.SalaryFrom,
		SalaryTo:       v.SalaryTo,
		IsActive:       v.IsActive,
		CandidateCount: v.CandidateCount,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

type CandidateResponse struct {
	ID           string          `json:"id"`
	VacancyID    string          `json:"vacancy_id"`
	VacancyTitle *string         `json:"vacancy_title,omitempty"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	ResumeText   string          `json:"resume_text,omitempty"`
	HasResume    bool            `json:"has_resume"`
	Status       CandidateStatus `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	AppliedAt    time.Time       `json:"applied_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewCandidateResponse(c Candidate) CandidateResponse {
	return CandidateResponse{
		ID:           c.ID,
		VacancyID:    c.VacancyID,
		VacancyTitle: c.VacancyTitle,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		FullName:     c.FullName(),
		Email:        c.Email,
		Phone:        c.Phone,
		ResumeText:   c.ResumeText,
		HasResume:    c.ResumePath != nil,
		Status:       c.Status,
		Notes:        c.Notes,
		AppliedAt:    c.AppliedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
