package request

import (
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	Type      Type    `json:"request_type"`
	Reason    string  `json:"reason"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`

	startDate *time.Time
	endDate   *time.Time
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Type.IsValid() {
		errs.Add("request_type", "request_type must be one of: vacation, sick, remote, other")
	}
	if len(r.Reason) > 2000 {
		errs.Add("reason", "reason must not exceed 2000 characters")
	}

	var ok bool
	if r.startDate, ok = validator.ParseOptionalDate(r.StartDate); !ok {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	if r.endDate, ok = validator.ParseOptionalDate(r.EndDate); !ok {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if r.startDate != nil && r.endDate != nil && r.endDate.Before(*r.startDate) {
		errs.Add("end_date", ErrInvalidPeriod.Error())
	}

	return errs.Err()
}

// Period returns the dates parsed by Validate.
func (r *SubmitRequest) Period() (start, end *time.Time) {
	return r.startDate, r.endDate
}

type BulkRequest struct {
	RequestIDs []string `json:"request_ids"`
}

func (r *BulkRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RequestIDs) == 0 {
		errs.Add("request_ids", "request_ids must contain at least one id")
	}
	for _, id := range r.RequestIDs {
		if !validator.IsValidUUID(id) {
			errs.Add("request_ids", "request_ids must contain valid UUIDs")
			break
		}
	}

	return errs.Err()
}

type CommentRequest struct {
	Comment string `json:"hr_comment"`
}

func (r *CommentRequest) Validate() error {
	var errs validator.ValidationErrors
	if len(r.Comment) > 2000 {
		errs.Add("hr_comment", "hr_comment must not exceed 2000 characters")
	}
	return errs.Err()
}

type RequestFilter struct {
	EmployeeID *string
	Status     *Status
	Type       *Type
	IDs        []string
	Limit      int
}

type RequestResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	Type         Type       `json:"request_type"`
	Reason       string     `json:"reason"`
	StartDate    *string    `json:"start_date,omitempty"`
	EndDate      *string    `json:"end_date,omitempty"`
	DaysCount    int        `json:"days_count"`
	Status       Status     `json:"status"`
	HRComment    string     `json:"hr_comment,omitempty"`
	ReviewedBy   *string    `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewRequestResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Type:         r.Type,
		Reason:       r.Reason,
		StartDate:    formatDate(r.StartDate),
		EndDate:      formatDate(r.EndDate),
		DaysCount:    r.DaysCount(),
		Status:       r.Status,
		HRComment:    r.HRComment,
		ReviewedBy:   r.ReviewedBy,
		ReviewedAt:   r.ReviewedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validator.DateLayout)
	return &s
}

// Outcome reports a status transition and its best-effort side effects.
type Outcome struct {
	Request       RequestResponse                    `json:"request"`
	Notifications []notification.NotificationResponse `json:"notifications,omitempty"`
	LeaveRecord   *document.LeaveRecordResponse       `json:"leave_record,omitempty"`
	Warnings      []string                            `json:"warnings,omitempty"`
}

type BulkResponse struct {
	Processed int `json:"processed"`
	Requested int `json:"requested"`
}

type StatusCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
