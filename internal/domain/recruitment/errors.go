package recruitment

import "errors"

var (
	ErrVacancyNotFound        = errors.New("vacancy not found")
	ErrCandidateNotFound      = errors.New("candidate not found")
	ErrInvalidCandidateStatus = errors.New("invalid candidate status")
	ErrInvalidSalaryRange     = errors.New("salary_from must not exceed salary_to")
	ErrUnsupportedResume      = errors.New("resume must be a PDF, DOC or DOCX file")
	ErrVacancyClosed          = errors.New("vacancy is not accepting applications")
	ErrResumeNotFound         = errors.New("candidate has no resume")
)
