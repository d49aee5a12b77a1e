package recruitment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Vacancy struct {
	ID           string
	Title        string
	Department   string
	Description  string
	Requirements string
	SalaryFrom   *decimal.Decimal
	SalaryTo     *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Aggregate
	CandidateCount int
}

type CandidateStatus string

const (
	CandidateNew       CandidateStatus = "new"
	CandidateInterview CandidateStatus = "interview"
	CandidateOffer     CandidateStatus = "offer"
	CandidateHired     CandidateStatus = "hired"
	CandidateRejected  CandidateStatus = "rejected"
)

func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateNew, CandidateInterview, CandidateOffer, CandidateHired, CandidateRejected:
		return true
	}
	return false
}

type Candidate struct {
	ID         string
	VacancyID  string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	ResumeText string
	ResumePath *string
	Status     CandidateStatus
	Notes      string
	AppliedAt  time.Time
	UpdatedAt  time.Time

	// Join
	VacancyTitle *string
}

func (c Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}
