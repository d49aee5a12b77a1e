package recruitment

import (
	"context"
)

// VacancyRepository - interface for vacancies table
type VacancyRepository interface {
	Create(ctx context.Context, vacancy Vacancy) (Vacancy, error)
	GetByID(ctx context.Context, id string) (Vacancy, error)
	List(ctx context.Context, filter VacancyFilter) ([]Vacancy, error)
	Update(ctx context.Context, vacancy Vacancy) (Vacancy, error)
	SetActive(ctx context.Context, id string, active bool) (Vacancy, error)
}

// CandidateRepository - interface for candidates table
type CandidateRepository interface {
	Create(ctx context.Context, candidate Candidate) (Candidate, error)
	GetByID(ctx context.Context, id string) (Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	UpdateNotes(ctx context.Context, id string, notes string) (Candidate, error)
	SetResume(ctx context.Context, id string, path string) error

	// SetStatus updates every listed candidate and returns the number of rows changed.
	SetStatus(ctx context.Context, ids []string, status CandidateStatus) (int, error)
}
