package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/timetracking"
	"github.com/cmlabs-hris/hrm-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

type TimeTrackingHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	MyEntries(w http.ResponseWriter, r *http.Request)

	// List is the HR view over every employee.
	List(w http.ResponseWriter, r *http.Request)
}

type timeTrackingHandlerImpl struct {
	timeService timetracking.TimeTrackingService
}

func NewTimeTrackingHandler(timeService timetracking.TimeTrackingService) TimeTrackingHandler {
	return &timeTrackingHandlerImpl{timeService: timeService}
}

// ClockIn implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(w, r)
	if !ok {
		return
	}

	entry, err := h.timeService.ClockIn(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", timetracking.NewTimeEntryResponse(entry))
}

// ClockOut implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(w, r)
	if !ok {
		return
	}

	entry, err := h.timeService.ClockOut(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", timetracking.NewTimeEntryResponse(entry))
}

// Today implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.timeService.Today(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// MyEntries implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) MyEntries(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(w, r)
	if !ok {
		return
	}

	filter, err := parseTimeEntryFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter.EmployeeID = &employeeID

	h.writeHistory(w, r, filter)
}

// List implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTimeEntryFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter.EmployeeID = getOptionalQueryParam(r, "employee_id")

	h.writeHistory(w, r, filter)
}

func (h *timeTrackingHandlerImpl) writeHistory(w http.ResponseWriter, r *http.Request, filter timetracking.TimeEntryFilter) {
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	history, err := h.timeService.History(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

func parseTimeEntryFilter(r *http.Request) (timetracking.TimeEntryFilter, error) {
	var errs validator.ValidationErrors

	filter := timetracking.TimeEntryFilter{
		From:     getDateQueryParam(r, "from", &errs),
		To:       getDateQueryParam(r, "to", &errs),
		OpenOnly: getBoolQueryParam(r, "open_only", false),
	}
	return filter, errs.Err()
}
