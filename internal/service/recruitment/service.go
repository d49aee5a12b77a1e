package recruitment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/storage"
)

const maxResumeSize = 10 << 20

var resumePolicy = storage.UploadPolicy{
	MaxSize:     maxResumeSize,
	AllowedExts: []string{".pdf", ".doc", ".docx"},
}

type RecruitmentServiceImpl struct {
	db database.Transactor
	recruitment.VacancyRepository
	recruitment.CandidateRepository
	files storage.FileStorage
}

func NewRecruitmentService(
	db database.Transactor,
	vacancyRepository recruitment.VacancyRepository,
	candidateRepository recruitment.CandidateRepository,
	files storage.FileStorage,
) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		db:                  db,
		VacancyRepository:   vacancyRepository,
		CandidateRepository: candidateRepository,
		files:               files,
	}
}

// CreateVacancy implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CreateVacancy(ctx context.Context, req recruitment.CreateVacancyRequest) (recruitment.VacancyResponse, error) {
	if req.SalaryFrom != nil && req.SalaryTo != nil && req.SalaryFrom.GreaterThan(*req.SalaryTo) {
		return recruitment.VacancyResponse{}, recruitment.ErrInvalidSalaryRange
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	created, err := s.VacancyRepository.Create(ctx, recruitment.Vacancy{
		Title:        strings.TrimSpace(req.Title),
		Department:   strings.TrimSpace(req.Department),
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryFrom:   req.SalaryFrom,
		SalaryTo:     req.SalaryTo,
		IsActive:     active,
	})
	if err != nil {
		return recruitment.VacancyResponse{}, fmt.Errorf("failed to create vacancy: %w", err)
	}
	return recruitment.NewVacancyResponse(created), nil
}

// GetVacancy implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetVacancy(ctx context.Context, id string) (recruitment.VacancyResponse, error) {
	v, err := s.VacancyRepository.GetByID(ctx, id)
	if err != nil {
		return recruitment.VacancyResponse{}, fmt.Errorf("failed to get vacancy: %w", err)
	}
	return recruitment.NewVacancyResponse(v), nil
}

// ListVacancies implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListVacancies(ctx context.Context, filter recruitment.VacancyFilter) ([]recruitment.VacancyResponse, error) {
	vacancies, err := s.VacancyRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacancies: %w", err)
	}

	resp := make([]recruitment.VacancyResponse, 0, len(vacancies))
	for _, v := range vacancies {
		resp = append(resp, recruitment.NewVacancyResponse(v))
	}
	return resp, nil
}

// UpdateVacancy implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdateVacancy(ctx context.Context, req recruitment.UpdateVacancyRequest) (recruitment.VacancyResponse, error) {
	current, err := s.VacancyRepository.GetByID(ctx, req.ID)
	if err != nil {
		return recruitment.VacancyResponse{}, fmt.Errorf("failed to get vacancy: %w", err)
	}

	if req.Title != nil {
		current.Title = strings.TrimSpace(*req.Title)
	}
	if req.Department != nil {
		current.Department = strings.TrimSpace(*req.Department)
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Requirements != nil {
		current.Requirements = *req.Requirements
	}
	if req.SalaryFrom != nil {
		current.SalaryFrom = req.SalaryFrom
	}
	if req.SalaryTo != nil {
		current.SalaryTo = req.SalaryTo
	}
	if current.SalaryFrom != nil && current.SalaryTo != nil && current.SalaryFrom.GreaterThan(*current.SalaryTo) {
		return recruitment.VacancyResponse{}, recruitment.ErrInvalidSalaryRange
	}

	updated, err := s.VacancyRepository.Update(ctx, current)
	if err != nil {
		return recruitment.VacancyResponse{}, fmt.Errorf("failed to update vacancy: %w", err)
	}
	updated.CandidateCount = current.CandidateCount
	return recruitment.NewVacancyResponse(updated), nil
}

// SetVacancyActive implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) SetVacancyActive(ctx context.Context, id string, active bool) (recruitment.VacancyResponse, error) {
	v, err := s.VacancyRepository.SetActive(ctx, id, active)
	if err != nil {
		return recruitment.VacancyResponse{}, fmt.Errorf("failed to set vacancy active: %w", err)
	}
	return recruitment.NewVacancyResponse(v), nil
}

// Apply implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) Apply(ctx context.Context, req recruitment.ApplyRequest, resume io.Reader, filename string) (recruitment.CandidateResponse, error) {
	var ext string
	if resume != nil {
		var err error
		if ext, err = resumePolicy.CheckExt(filename); err != nil {
			return recruitment.CandidateResponse{}, recruitment.ErrUnsupportedResume
		}
	}

	vacancy, err := s.VacancyRepository.GetByID(ctx, req.VacancyID)
	if err != nil {
		return recruitment.CandidateResponse{}, fmt.Errorf("failed to get vacancy: %w", err)
	}
	if !vacancy.IsActive {
		return recruitment.CandidateResponse{}, recruitment.ErrVacancyClosed
	}

	var (
		candidate recruitment.Candidate
		savedKey  string
	)
	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		candidate, err = s.CandidateRepository.Create(txCtx, recruitment.Candidate{
			VacancyID:  vacancy.ID,
			FirstName:  strings.TrimSpace(req.FirstName),
			LastName:   strings.TrimSpace(req.LastName),
			Email:      req.Email,
			Phone:      req.Phone,
			ResumeText: strings.TrimSpace(req.ResumeText),
			Status:     recruitment.CandidateNew,
			Notes:      req.Notes,
		})
		if err != nil {
			return fmt.Errorf("failed to create candidate: %w", err)
		}

		if resume == nil {
			return nil
		}

		key := path.Join("resumes", vacancy.ID, candidate.ID+ext)
		savedKey, err = s.files.Save(txCtx, resumePolicy.Limit(resume), key)
		if err != nil {
			return fmt.Errorf("failed to store resume: %w", err)
		}
		if err := s.CandidateRepository.SetResume(txCtx, candidate.ID, savedKey); err != nil {
			return fmt.Errorf("failed to attach resume: %w", err)
		}
		candidate.ResumePath = &savedKey
		return nil
	})
	if err != nil {
		if savedKey != "" {
			if delErr := s.files.Delete(ctx, savedKey); delErr != nil {
				slog.Error("failed to remove orphaned resume", "key", savedKey, "error", delErr)
			}
		}
		return recruitment.CandidateResponse{}, err
	}

	candidate.VacancyTitle = &vacancy.Title
	return recruitment.NewCandidateResponse(candidate), nil
}

// GetCandidate implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetCandidate(ctx context.Context, id string) (recruitment.CandidateResponse, error) {
	c, err := s.CandidateRepository.GetByID(ctx, id)
	if err != nil {
		return recruitment.CandidateResponse{}, fmt.Errorf("failed to get candidate: %w", err)
	}
	return recruitment.NewCandidateResponse(c), nil
}

// ListCandidates implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListCandidates(ctx context.Context, filter recruitment.CandidateFilter) ([]recruitment.CandidateResponse, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, recruitment.ErrInvalidCandidateStatus
	}

	candidates, err := s.CandidateRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	resp := make([]recruitment.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		resp = append(resp, recruitment.NewCandidateResponse(c))
	}
	return resp, nil
}

// UpdateCandidateNotes implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdateCandidateNotes(ctx context.Context, id string, req recruitment.UpdateNotesRequest) (recruitment.CandidateResponse, error) {
	c, err := s.CandidateRepository.UpdateNotes(ctx, id, req.Notes)
	if err != nil {
		return recruitment.CandidateResponse{}, fmt.Errorf("failed to update candidate notes: %w", err)
	}
	return recruitment.NewCandidateResponse(c), nil
}

// BulkSetCandidateStatus implements recruitment.RecruitmentService. Any status
// may follow any other.
func (s *RecruitmentServiceImpl) BulkSetCandidateStatus(ctx context.Context, req recruitment.BulkStatusRequest) (int, error) {
	if !req.Status.IsValid() {
		return 0, recruitment.ErrInvalidCandidateStatus
	}
	if len(req.CandidateIDs) == 0 {
		return 0, nil
	}

	count, err := s.CandidateRepository.SetStatus(ctx, req.CandidateIDs, req.Status)
	if err != nil {
		return 0, fmt.Errorf("failed to set candidate status: %w", err)
	}
	return count, nil
}

// DownloadResume implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) DownloadResume(ctx context.Context, candidateID string) (io.ReadCloser, string, error) {
	c, err := s.CandidateRepository.GetByID(ctx, candidateID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get candidate: %w", err)
	}
	if c.ResumePath == nil {
		return nil, "", recruitment.ErrResumeNotFound
	}

	rc, err := s.files.Open(ctx, *c.ResumePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, "", recruitment.ErrResumeNotFound
		}
		return nil, "", fmt.Errorf("failed to open resume: %w", err)
	}

	name := strings.ReplaceAll(strings.ToLower(c.FullName()), " ", "_")
	return rc, name + "_resume" + path.Ext(*c.ResumePath), nil
}
