package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/hrm-backend-go/internal/handler/http/response"
)

type SalaryRuleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type salaryRuleHandlerImpl struct {
	salaryService salary.SalaryRuleService
}

func NewSalaryRuleHandler(salaryService salary.SalaryRuleService) SalaryRuleHandler {
	return &salaryRuleHandlerImpl{salaryService: salaryService}
}

// Create implements SalaryRuleHandler.
func (h *salaryRuleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req salary.CreateSalaryRuleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.salaryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary rule created successfully", created)
}

// List implements SalaryRuleHandler.
func (h *salaryRuleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.salaryService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rules)
}

// Get implements SalaryRuleHandler.
func (h *salaryRuleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	rule, err := h.salaryService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rule)
}

// Update implements SalaryRuleHandler.
func (h *salaryRuleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req salary.UpdateSalaryRuleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.salaryService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary rule updated successfully", updated)
}
