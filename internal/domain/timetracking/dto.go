package timetracking

import (
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

type TimeEntryFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	OpenOnly   bool
}

func (f *TimeEntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		errs.Add("to", ErrInvalidPeriod.Error())
	}

	return errs.Err()
}

type TimeEntryResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	WorkDate     string     `json:"work_date"`
	ClockIn      time.Time  `json:"clock_in"`
	ClockOut     *time.Time `json:"clock_out,omitempty"`
	Hours        float64    `json:"hours"`
}

func NewTimeEntryResponse(e TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		WorkDate:     e.WorkDate.Format(validator.DateLayout),
		ClockIn:      e.ClockIn,
		ClockOut:     e.ClockOut,
		Hours:        HoursWorked(e),
	}
}

type TodaySummary struct {
	Date           string             `json:"date"`
	ClockedIn      bool               `json:"clocked_in"`
	OpenEntry      *TimeEntryResponse `json:"open_entry,omitempty"`
	ClosedHours    float64            `json:"closed_hours"`
	ProjectedHours float64            `json:"projected_hours"`
	TotalHours     float64            `json:"total_hours"`
}

type HistoryResponse struct {
	Entries    []TimeEntryResponse `json:"entries"`
	TotalHours float64             `json:"total_hours"`
}
