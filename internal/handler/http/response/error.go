package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/order"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/timetracking"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "HR access required")
	case errors.Is(err, user.ErrEmployeeAccessRequired):
		Forbidden(w, "Employee profile required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryRuleNotFound):
		NotFound(w, "Salary rule not found")
	case errors.Is(err, salary.ErrInvalidKind):
		UnprocessableEntity(w, "Invalid salary rule kind")

	// Time tracking errors
	case errors.Is(err, timetracking.ErrAlreadyClockedIn):
		Conflict(w, "You are already clocked in today")
	case errors.Is(err, timetracking.ErrNotClockedIn):
		Conflict(w, "You are not clocked in today")
	case errors.Is(err, timetracking.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timetracking.ErrInvalidPeriod):
		BadRequest(w, "Period end must not be before start", nil)

	// Notification errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrInvalidKind),
		errors.Is(err, notification.ErrInvalidChannel),
		errors.Is(err, notification.ErrEmptyMessage):
		UnprocessableEntity(w, err.Error())

	// Document errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, document.ErrLeaveRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, document.ErrInvalidStatus):
		UnprocessableEntity(w, "Invalid document status")
	case errors.Is(err, document.ErrInvalidLeaveKind):
		UnprocessableEntity(w, "Invalid leave kind")
	case errors.Is(err, document.ErrInvalidPeriod):
		BadRequest(w, "End date must not be before start date", nil)

	// Request errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrRequestAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, request.ErrInvalidType):
		UnprocessableEntity(w, "Invalid request type")
	case errors.Is(err, request.ErrInvalidPeriod):
		BadRequest(w, "End date must not be before start date", nil)

	// Order errors
	case errors.Is(err, order.ErrOrderNotFound):
		NotFound(w, "Order not found")
	case errors.Is(err, order.ErrOrderNumberExists):
		Conflict(w, "Order number already exists")
	case errors.Is(err, order.ErrInvalidType):
		UnprocessableEntity(w, "Invalid order type")

	// Recruitment errors
	case errors.Is(err, recruitment.ErrVacancyNotFound):
		NotFound(w, "Vacancy not found")
	case errors.Is(err, recruitment.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, recruitment.ErrResumeNotFound):
		NotFound(w, "Candidate has no resume")
	case errors.Is(err, recruitment.ErrVacancyClosed):
		Conflict(w, "Vacancy is not accepting applications")
	case errors.Is(err, recruitment.ErrInvalidCandidateStatus):
		UnprocessableEntity(w, "Invalid candidate status")
	case errors.Is(err, recruitment.ErrInvalidSalaryRange):
		UnprocessableEntity(w, "salary_from must not exceed salary_to")
	case errors.Is(err, recruitment.ErrUnsupportedResume),
		errors.Is(err, storage.ErrFileExtension):
		UnprocessableEntity(w, "Resume must be a PDF, DOC or DOCX file")

	// Storage errors
	case errors.Is(err, storage.ErrFileTooLarge):
		PayloadTooLarge(w, "File exceeds the size limit")
	case errors.Is(err, storage.ErrFileNotFound):
		NotFound(w, "File not found")
	case errors.Is(err, storage.ErrInvalidPath):
		BadRequest(w, "Invalid file path", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
