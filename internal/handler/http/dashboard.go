package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrm-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
	GetHRDashboard(w http.ResponseWriter, r *http.Request)
	GetEmployeeDetail(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetEmployeeDashboard returns the dashboard of the authenticated employee
func (h *dashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetEmployeeDashboard(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHRDashboard returns company-wide reports
func (h *dashboardHandlerImpl) GetHRDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetHRDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeDetail returns the HR view of one employee
func (h *dashboardHandlerImpl) GetEmployeeDetail(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetEmployeeDetail(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
