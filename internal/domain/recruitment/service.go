package recruitment

import (
	"context"
	"io"
)

type RecruitmentService interface {
	CreateVacancy(ctx context.Context, req CreateVacancyRequest) (VacancyResponse, error)
	GetVacancy(ctx context.Context, id string) (VacancyResponse, error)
	ListVacancies(ctx context.Context, filter VacancyFilter) ([]VacancyResponse, error)
	UpdateVacancy(ctx context.Context, req UpdateVacancyRequest) (VacancyResponse, error)
	SetVacancyActive(ctx context.Context, id string, active bool) (VacancyResponse, error)

	// Apply registers a candidate with status new. resume may be nil.
	Apply(ctx context.Context, req ApplyRequest, resume io.Reader, filename string) (CandidateResponse, error)
	GetCandidate(ctx context.Context, id string) (CandidateResponse, error)
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]CandidateResponse, error)
	UpdateCandidateNotes(ctx context.Context, id string, req UpdateNotesRequest) (CandidateResponse, error)
	BulkSetCandidateStatus(ctx context.Context, req BulkStatusRequest) (int, error)
	DownloadResume(ctx context.Context, candidateID string) (io.ReadCloser, string, error)
}
