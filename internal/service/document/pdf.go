package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
	"github.com/jung-kurt/gofpdf"
)

// RenderPDF implements document.DocumentService.
func (s *DocumentServiceImpl) RenderPDF(ctx context.Context, documentID string) ([]byte, string, error) {
	doc, err := s.DocumentRepository.GetByID(ctx, documentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get document: %w", err)
	}

	var (
		title    string
		empName  string
		rows     [][2]string
	)

	switch doc.Type {
	case document.TypeContract:
		contract, err := s.ContractRepository.GetByDocumentID(ctx, doc.ID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to get contract: %w", err)
		}
		if empName, err = s.employeeName(ctx, contract.EmployeeID); err != nil {
			return nil, "", err
		}
		end := "Indefinite"
		if contract.EndDate != nil {
			end = contract.EndDate.Format(validator.DateLayout)
		}
		title = "Employment Contract"
		rows = [][2]string{
			{"Position", contract.Position},
			{"Monthly salary", contract.Salary.StringFixed(2)},
			{"Start date", contract.StartDate.Format(validator.DateLayout)},
			{"End date", end},
		}
	case document.TypeLeaveRecord:
		record, err := s.LeaveRecordRepository.GetByDocumentID(ctx, doc.ID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to get leave record: %w", err)
		}
		if empName, err = s.employeeName(ctx, record.EmployeeID); err != nil {
			return nil, "", err
		}
		title = "Leave Record"
		rows = [][2]string{
			{"Leave type", string(record.Kind)},
			{"Reason", record.Reason},
			{"Start date", record.StartDate.Format(validator.DateLayout)},
			{"End date", record.EndDate.Format(validator.DateLayout)},
			{"Days", fmt.Sprintf("%d", record.Days())},
		}
	default:
		return nil, "", fmt.Errorf("document %s has unknown type %q", doc.ID, doc.Type)
	}

	content, err := renderDocument(doc, title, empName, rows)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render pdf: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.pdf", doc.Type, doc.ID)
	return content, filename, nil
}

func (s *DocumentServiceImpl) employeeName(ctx context.Context, employeeID string) (string, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return "", fmt.Errorf("failed to get employee: %w", err)
	}
	return emp.FullName(), nil
}

func renderDocument(doc document.Document, title, employeeName string, rows [][2]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Document: %s", doc.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", strings.ToUpper(string(doc.Status))))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Issued: %s", doc.CreatedAt.Format(validator.DateLayout)))
	pdf.Ln(10)

	rows = append([][2]string{{"Employee", employeeName}}, rows...)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Generated %s", time.Now().UTC().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
