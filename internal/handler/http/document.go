package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/hrm-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

type DocumentHandler interface {
	ListDocuments(w http.ResponseWriter, r *http.Request)
	GetDocument(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	DownloadPDF(w http.ResponseWriter, r *http.Request)

	IssueContract(w http.ResponseWriter, r *http.Request)
	ListContracts(w http.ResponseWriter, r *http.Request)
	GetContract(w http.ResponseWriter, r *http.Request)

	IssueLeaveRecord(w http.ResponseWriter, r *http.Request)
	ListLeaveRecords(w http.ResponseWriter, r *http.Request)
	GetLeaveRecord(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

// ListDocuments implements DocumentHandler.
func (h *documentHandlerImpl) ListDocuments(w http.ResponseWriter, r *http.Request) {
	var filter document.DocumentFilter
	if t := getOptionalQueryParam(r, "document_type"); t != nil {
		docType := document.DocumentType(*t)
		filter.Type = &docType
	}
	if s := getOptionalQueryParam(r, "status"); s != nil {
		status := document.Status(*s)
		if !status.IsValid() {
			response.HandleError(w, document.ErrInvalidStatus)
			return
		}
		filter.Status = &status
	}

	docs, err := h.documentService.ListDocuments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, docs)
}

// GetDocument implements DocumentHandler.
func (h *documentHandlerImpl) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	doc, err := h.documentService.GetDocument(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, doc)
}

// SetStatus implements DocumentHandler.
func (h *documentHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req document.SetStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.documentService.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Document marked as %s", doc.Status), document.NewDocumentResponse(doc))
}

// DownloadPDF implements DocumentHandler.
func (h *documentHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	content, filename, err := h.documentService.RenderPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

// IssueContract implements DocumentHandler.
func (h *documentHandlerImpl) IssueContract(w http.ResponseWriter, r *http.Request) {
	var req document.IssueContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	spec, err := req.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	contract, err := h.documentService.IssueContract(r.Context(), spec)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contract issued successfully", document.NewContractResponse(contract))
}

// ListContracts implements DocumentHandler.
func (h *documentHandlerImpl) ListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.documentService.ListContracts(r.Context(), getOptionalQueryParam(r, "employee_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, contracts)
}

// GetContract implements DocumentHandler.
func (h *documentHandlerImpl) GetContract(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	contract, err := h.documentService.GetContract(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, contract)
}

// IssueLeaveRecord implements DocumentHandler.
func (h *documentHandlerImpl) IssueLeaveRecord(w http.ResponseWriter, r *http.Request) {
	var req document.IssueLeaveRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	spec, err := req.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.documentService.IssueLeaveRecord(r.Context(), spec)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave record issued successfully", document.NewLeaveRecordResponse(record))
}

// ListLeaveRecords implements DocumentHandler.
func (h *documentHandlerImpl) ListLeaveRecords(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors

	filter := document.LeaveRecordFilter{
		EmployeeID: getOptionalQueryParam(r, "employee_id"),
		ActiveOn:   getDateQueryParam(r, "active_on", &errs),
		StartFrom:  getDateQueryParam(r, "start_from", &errs),
		StartTo:    getDateQueryParam(r, "start_to", &errs),
	}
	if k := getOptionalQueryParam(r, "leave_kind"); k != nil {
		kind := document.LeaveKind(*k)
		if !kind.IsValid() {
			errs.Add("leave_kind", "leave_kind must be one of: vacation, sick")
		}
		filter.Kind = &kind
	}
	if s := getOptionalQueryParam(r, "status"); s != nil {
		status := document.Status(*s)
		if !status.IsValid() {
			errs.Add("status", "status must be one of: pending, approved, rejected")
		}
		filter.Status = &status
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.documentService.ListLeaveRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetLeaveRecord implements DocumentHandler.
func (h *documentHandlerImpl) GetLeaveRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	record, err := h.documentService.GetLeaveRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}
