package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hrm-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/storage"
)

// maxApplyBodySize leaves room for the form fields next to a 10MB resume.
const maxApplyBodySize = 11 << 20

type RecruitmentHandler interface {
	CreateVacancy(w http.ResponseWriter, r *http.Request)
	ListVacancies(w http.ResponseWriter, r *http.Request)
	GetVacancy(w http.ResponseWriter, r *http.Request)
	UpdateVacancy(w http.ResponseWriter, r *http.Request)
	SetVacancyActive(w http.ResponseWriter, r *http.Request)

	// Public careers endpoints
	ListOpenVacancies(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)

	ListCandidates(w http.ResponseWriter, r *http.Request)
	GetCandidate(w http.ResponseWriter, r *http.Request)
	UpdateCandidateNotes(w http.ResponseWriter, r *http.Request)
	BulkSetCandidateStatus(w http.ResponseWriter, r *http.Request)
	DownloadResume(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &recruitmentHandlerImpl{recruitmentService: recruitmentService}
}

// CreateVacancy implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) CreateVacancy(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateVacancyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.recruitmentService.CreateVacancy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacancy created successfully", created)
}

// ListVacancies implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListVacancies(w http.ResponseWriter, r *http.Request) {
	h.writeVacancies(w, r, recruitment.VacancyFilter{
		ActiveOnly: getBoolQueryParam(r, "active_only", false),
		Department: getOptionalQueryParam(r, "department"),
	})
}

// ListOpenVacancies implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListOpenVacancies(w http.ResponseWriter, r *http.Request) {
	h.writeVacancies(w, r, recruitment.VacancyFilter{
		ActiveOnly: true,
		Department: getOptionalQueryParam(r, "department"),
	})
}

func (h *recruitmentHandlerImpl) writeVacancies(w http.ResponseWriter, r *http.Request, filter recruitment.VacancyFilter) {
	vacancies, err := h.recruitmentService.ListVacancies(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, vacancies)
}

// GetVacancy implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) GetVacancy(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	vacancy, err := h.recruitmentService.GetVacancy(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, vacancy)
}

// UpdateVacancy implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) UpdateVacancy(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req recruitment.UpdateVacancyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.recruitmentService.UpdateVacancy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacancy updated successfully", updated)
}

// SetVacancyActive implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) SetVacancyActive(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req recruitment.SetActiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.recruitmentService.SetVacancyActive(r.Context(), id, req.IsActive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Vacancy closed"
	if updated.IsActive {
		message = "Vacancy opened"
	}
	response.SuccessWithMessage(w, message, updated)
}

// Apply implements RecruitmentHandler. The body is multipart: a JSON "data"
// field and an optional "resume" file.
func (h *recruitmentHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	vacancyID, ok := urlID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxApplyBodySize)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.HandleError(w, storage.ErrFileTooLarge)
			return
		}
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	var req recruitment.ApplyRequest
	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.VacancyID = vacancyID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	var (
		resume   io.Reader
		filename string
	)
	file, fileHeader, err := r.FormFile("resume")
	switch {
	case err == nil:
		defer file.Close()
		resume = file
		filename = fileHeader.Filename
	case !errors.Is(err, http.ErrMissingFile):
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	candidate, err := h.recruitmentService.Apply(r.Context(), req, resume, filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application received", candidate)
}

// ListCandidates implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	filter := recruitment.CandidateFilter{VacancyID: getOptionalQueryParam(r, "vacancy_id")}
	if s := getOptionalQueryParam(r, "status"); s != nil {
		status := recruitment.CandidateStatus(*s)
		if !status.IsValid() {
			response.HandleError(w, recruitment.ErrInvalidCandidateStatus)
			return
		}
		filter.Status = &status
	}

	candidates, err := h.recruitmentService.ListCandidates(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, candidates)
}

// GetCandidate implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	candidate, err := h.recruitmentService.GetCandidate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, candidate)
}

// UpdateCandidateNotes implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) UpdateCandidateNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req recruitment.UpdateNotesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.recruitmentService.UpdateCandidateNotes(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notes saved", updated)
}

// BulkSetCandidateStatus implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) BulkSetCandidateStatus(w http.ResponseWriter, r *http.Request) {
	var req recruitment.BulkStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.recruitmentService.BulkSetCandidateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("%d candidates moved to %s", updated, req.Status), map[string]int{"updated": updated})
}

// DownloadResume implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) DownloadResume(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	content, filename, err := h.recruitmentService.DownloadResume(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.Copy(w, content); err != nil {
		slog.Error("Failed to stream resume", "candidate_id", id, "error", err)
	}
}
