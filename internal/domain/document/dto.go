package document

import (
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type DocumentFilter struct {
	Type   *DocumentType
	Status *Status
}

type LeaveRecordFilter struct {
	EmployeeID *string
	Kind       *LeaveKind
	Status     *Status

	// ActiveOn keeps records whose period contains the date.
	ActiveOn *time.Time

	// StartFrom and StartTo bound the start date, both inclusive.
	StartFrom *time.Time
	StartTo   *time.Time
}

type IssueContractRequest struct {
	EmployeeID string          `json:"employee_id"`
	Position   string          `json:"position"`
	Salary     decimal.Decimal `json:"salary"`
	StartDate  string          `json:"start_date"`
	EndDate    *string         `json:"end_date,omitempty"`
}

// Validate checks the request and returns the parsed spec.
func (r *IssueContractRequest) Validate() (ContractSpec, error) {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if validator.IsEmpty(r.Position) {
		errs.Add("position", "position is required")
	}
	if r.Salary.IsNegative() {
		errs.Add("salary", "salary must not be negative")
	}
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, ok := validator.ParseOptionalDate(r.EndDate)
	if !ok {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if end != nil && end.Before(start) {
		errs.Add("end_date", ErrInvalidPeriod.Error())
	}

	if err := errs.Err(); err != nil {
		return ContractSpec{}, err
	}

	return ContractSpec{
		EmployeeID: r.EmployeeID,
		Position:   r.Position,
		Salary:     r.Salary,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

type IssueLeaveRecordRequest struct {
	EmployeeID string    `json:"employee_id"`
	Kind       LeaveKind `json:"leave_kind"`
	Reason     string    `json:"reason"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
}

func (r *IssueLeaveRecordRequest) Validate() (LeaveRecordSpec, error) {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if !r.Kind.IsValid() {
		errs.Add("leave_kind", "leave_kind must be one of: vacation, sick")
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", ErrInvalidPeriod.Error())
	}

	if err := errs.Err(); err != nil {
		return LeaveRecordSpec{}, err
	}

	return LeaveRecordSpec{
		EmployeeID: r.EmployeeID,
		Kind:       r.Kind,
		Reason:     r.Reason,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

type SetStatusRequest struct {
	Status Status `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if !r.Status.IsValid() {
		errs.Add("status", "status must be one of: pending, approved, rejected")
	}
	return errs.Err()
}

type DocumentResponse struct {
	ID          string               `json:"id"`
	Type        DocumentType         `json:"document_type"`
	Status      Status               `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Contract    *ContractResponse    `json:"contract,omitempty"`
	LeaveRecord *LeaveRecordResponse `json:"leave_record,omitempty"`
}

func NewDocumentResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:        d.ID,
		Type:      d.Type,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type ContractResponse struct {
	ID           string          `json:"id"`
	DocumentID   string          `json:"document_id"`
	Status       Status          `json:"status"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	Position     string          `json:"position"`
	Salary       decimal.Decimal `json:"salary"`
	StartDate    string          `json:"start_date"`
	EndDate      *string         `json:"end_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewContractResponse(c Contract) ContractResponse {
	resp := ContractResponse{
		ID:           c.ID,
		DocumentID:   c.DocumentID,
		Status:       c.Document.Status,
		EmployeeID:   c.EmployeeID,
		EmployeeName: c.EmployeeName,
		Position:     c.Position,
		Salary:       c.Salary,
		StartDate:    c.StartDate.Format(validator.DateLayout),
		CreatedAt:    c.CreatedAt,
	}
	if c.EndDate != nil {
		end := c.EndDate.Format(validator.DateLayout)
		resp.EndDate = &end
	}
	return resp
}

type LeaveRecordResponse struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"document_id"`
	Status       Status    `json:"status"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	Kind         LeaveKind `json:"leave_kind"`
	Reason       string    `json:"reason"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Days         int       `json:"days"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewLeaveRecordResponse(l LeaveRecord) LeaveRecordResponse {
	return LeaveRecordResponse{
		ID:           l.ID,
		DocumentID:   l.DocumentID,
		Status:       l.Document.Status,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Kind:         l.Kind,
		Reason:       l.Reason,
		StartDate:    l.StartDate.Format(validator.DateLayout),
		EndDate:      l.EndDate.Format(validator.DateLayout),
		Days:         l.Days(),
		CreatedAt:    l.CreatedAt,
	}
}
