package request

import (
	"time"
)

type Type string

const (
	TypeVacation Type = "vacation"
	TypeSick     Type = "sick"
	TypeRemote   Type = "remote"
	TypeOther    Type = "other"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeVacation, TypeSick, TypeRemote, TypeOther:
		return true
	}
	return false
}

// IsLeave reports whether approving the type issues a leave record.
func (t Type) IsLeave() bool {
	return t == TypeVacation || t == TypeSick
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Request moves from pending to exactly one of approved or rejected.
type Request struct {
	ID         string
	EmployeeID string
	Type       Type
	Reason     string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     Status
	HRComment  string
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeName *string
}

// DaysCount is the inclusive length of the requested period, or 0 when a date is missing.
func (r Request) DaysCount() int {
	if r.StartDate == nil || r.EndDate == nil {
		return 0
	}
	return int(r.EndDate.Sub(*r.StartDate).Hours()/24) + 1
}

// HasPeriod reports whether both dates are set.
func (r Request) HasPeriod() bool {
	return r.StartDate != nil && r.EndDate != nil
}
