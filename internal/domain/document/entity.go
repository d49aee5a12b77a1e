package document

import (
	"time"

	"github.com/shopspring/decimal"
)

type DocumentType string

const (
	TypeContract    DocumentType = "contract"
	TypeLeaveRecord DocumentType = "leave_record"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type LeaveKind string

const (
	LeaveVacation LeaveKind = "vacation"
	LeaveSick     LeaveKind = "sick"
)

func (k LeaveKind) IsValid() bool {
	return k == LeaveVacation || k == LeaveSick
}

// Document is the envelope shared by every official artifact.
type Document struct {
	ID        string
	Type      DocumentType
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Contract struct {
	ID         string
	DocumentID string
	EmployeeID string
	Position   string
	Salary     decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
	CreatedAt  time.Time

	// Join
	Document     Document
	EmployeeName *string
}

type LeaveRecord struct {
	ID         string
	DocumentID string
	EmployeeID string
	Kind       LeaveKind
	Reason     string
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time

	// Join
	Document     Document
	EmployeeName *string
}

// Days counts calendar days, both ends inclusive.
func (l LeaveRecord) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

// Spec describes a document to issue. ContractSpec and LeaveRecordSpec are the only variants.
type Spec interface {
	DocumentType() DocumentType
	sealed()
}

type ContractSpec struct {
	EmployeeID string
	Position   string
	Salary     decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
}

func (ContractSpec) DocumentType() DocumentType { return TypeContract }
func (ContractSpec) sealed() {}

type LeaveRecordSpec struct {
	EmployeeID string
	Kind       LeaveKind
	Reason     string
	StartDate  time.Time
	EndDate    time.Time
}

func (LeaveRecordSpec) DocumentType() DocumentType { return TypeLeaveRecord }
func (LeaveRecordSpec) sealed() {}

// Issued holds the result of Issue; exactly one payload is set.
type Issued struct {
	Document    Document
	Contract    *Contract
	LeaveRecord *LeaveRecord
}
