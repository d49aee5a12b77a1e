package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// store backs every fake repository; the fake transactor restores it on error.
type store struct {
	seq       int
	documents map[string]document.Document
	contracts map[string]document.Contract
	records   map[string]document.LeaveRecord
	failOn    string
}

func newStore() *store {
	return &store{
		documents: map[string]document.Document{},
		contracts: map[string]document.Contract{},
		records:   map[string]document.LeaveRecord{},
	}
}

func (s *store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *store) snapshot() *store {
	cp := newStore()
	cp.seq = s.seq
	for k, v := range s.documents {
		cp.documents[k] = v
	}
	for k, v := range s.contracts {
		cp.contracts[k] = v
	}
	for k, v := range s.records {
		cp.records[k] = v
	}
	return cp
}

type fakeTransactor struct {
	st    *store
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	saved := f.st.snapshot()
	if err := fn(ctx); err != nil {
		f.st.documents, f.st.contracts, f.st.records = saved.documents, saved.contracts, saved.records
		return err
	}
	return nil
}

type documentRepo struct{ st *store }

func (r documentRepo) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	doc.ID = r.st.nextID("doc")
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	r.st.documents[doc.ID] = doc
	return doc, nil
}

func (r documentRepo) GetByID(ctx context.Context, id string) (document.Document, error) {
	doc, ok := r.st.documents[id]
	if !ok {
		return document.Document{}, document.ErrDocumentNotFound
	}
	return doc, nil
}

func (r documentRepo) List(ctx context.Context, filter document.DocumentFilter) ([]document.Document, error) {
	var out []document.Document
	for _, d := range r.st.documents {
		if filter.Type != nil && d.Type != *filter.Type {
			continue
		}
		if filter.Status != nil && d.Status != *filter.Status {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r documentRepo) UpdateStatus(ctx context.Context, id string, status document.Status) (document.Document, error) {
	doc, ok := r.st.documents[id]
	if !ok {
		return document.Document{}, document.ErrDocumentNotFound
	}
	doc.Status = status
	r.st.documents[id] = doc
	return doc, nil
}

type contractRepo struct{ st *store }

func (r contractRepo) Create(ctx context.Context, c document.Contract) (document.Contract, error) {
	if r.st.failOn == "contract" {
		return document.Contract{}, errors.New("insert failed")
	}
	c.ID = r.st.nextID("contract")
	r.st.contracts[c.ID] = c
	return c, nil
}

func (r contractRepo) GetByID(ctx context.Context, id string) (document.Contract, error) {
	c, ok := r.st.contracts[id]
	if !ok {
		return document.Contract{}, document.ErrContractNotFound
	}
	return c, nil
}

func (r contractRepo) GetByDocumentID(ctx context.Context, documentID string) (document.Contract, error) {
	for _, c := range r.st.contracts {
		if c.DocumentID == documentID {
			return c, nil
		}
	}
	return document.Contract{}, document.ErrContractNotFound
}

func (r contractRepo) List(ctx context.Context, employeeID *string) ([]document.Contract, error) {
	var out []document.Contract
	for _, c := range r.st.contracts {
		if employeeID == nil || c.EmployeeID == *employeeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r contractRepo) GetLatestByEmployee(ctx context.Context, employeeID string) (document.Contract, error) {
	var latest *document.Contract
	for _, c := range r.st.contracts {
		c := c
		if c.EmployeeID == employeeID && (latest == nil || c.StartDate.After(latest.StartDate)) {
			latest = &c
		}
	}
	if latest == nil {
		return document.Contract{}, document.ErrContractNotFound
	}
	return *latest, nil
}

type leaveRecordRepo struct{ st *store }

func (r leaveRecordRepo) Create(ctx context.Context, l document.LeaveRecord) (document.LeaveRecord, error) {
	if r.st.failOn == "leave_record" {
		return document.LeaveRecord{}, errors.New("insert failed")
	}
	l.ID = r.st.nextID("leave")
	r.st.records[l.ID] = l
	return l, nil
}

func (r leaveRecordRepo) GetByID(ctx context.Context, id string) (document.LeaveRecord, error) {
	l, ok := r.st.records[id]
	if !ok {
		return document.LeaveRecord{}, document.ErrLeaveRecordNotFound
	}
	return l, nil
}

func (r leaveRecordRepo) GetByDocumentID(ctx context.Context, documentID string) (document.LeaveRecord, error) {
	for _, l := range r.st.records {
		if l.DocumentID == documentID {
			return l, nil
		}
	}
	return document.LeaveRecord{}, document.ErrLeaveRecordNotFound
}

func (r leaveRecordRepo) List(ctx context.Context, filter document.LeaveRecordFilter) ([]document.LeaveRecord, error) {
	var out []document.LeaveRecord
	for _, l := range r.st.records {
		if filter.EmployeeID == nil || l.EmployeeID == *filter.EmployeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

type employeeRepo struct {
	employees map[string]employee.Employee
}

func (r employeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r employeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r employeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r employeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r employeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (r employeeRepo) AssignSalaryRule(ctx context.Context, id string, salaryRuleID *string) error {
	return nil
}

const employeeID = "0190a6b2-3c4d-7e5f-8a9b-0c1d2e3f4a5b"

func newTestService() (*DocumentServiceImpl, *store, *fakeTransactor) {
	st := newStore()
	tx := &fakeTransactor{st: st}
	emps := employeeRepo{employees: map[string]employee.Employee{
		employeeID: {ID: employeeID, FirstName: "Ada", LastName: "Lovelace", Position: "Engineer"},
	}}
	svc := NewDocumentService(tx, documentRepo{st}, contractRepo{st}, leaveRecordRepo{st}, emps)
	return svc.(*DocumentServiceImpl), st, tx
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIssueContract(t *testing.T) {
	svc, st, tx := newTestService()

	contract, err := svc.IssueContract(context.Background(), document.ContractSpec{
		EmployeeID: employeeID,
		Position:   " Engineer ",
		Salary:     decimal.NewFromInt(5000),
		StartDate:  date(2024, 1, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, "Engineer", contract.Position)
	assert.Equal(t, document.TypeContract, contract.Document.Type)
	assert.Equal(t, document.StatusPending, contract.Document.Status)
	assert.Equal(t, contract.Document.ID, contract.DocumentID)
	require.NotNil(t, contract.EmployeeName)
	assert.Equal(t, "Ada Lovelace", *contract.EmployeeName)
	assert.Len(t, st.documents, 1)
	assert.Len(t, st.contracts, 1)
}

func TestIssueContract_RollsBackDocumentOnPayloadFailure(t *testing.T) {
	svc, st, _ := newTestService()
	st.failOn = "contract"

	_, err := svc.IssueContract(context.Background(), document.ContractSpec{
		EmployeeID: employeeID,
		Position:   "Engineer",
		Salary:     decimal.NewFromInt(5000),
		StartDate:  date(2024, 1, 1),
	})
	require.Error(t, err)
	assert.Empty(t, st.documents, "no envelope may survive without its payload")
	assert.Empty(t, st.contracts)
}

func TestIssueContract_UnknownEmployee(t *testing.T) {
	svc, st, tx := newTestService()

	_, err := svc.IssueContract(context.Background(), document.ContractSpec{
		EmployeeID: "0190a6b2-3c4d-7e5f-8a9b-ffffffffffff",
		Position:   "Engineer",
		StartDate:  date(2024, 1, 1),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Zero(t, tx.calls)
	assert.Empty(t, st.documents)
}

func TestIssueLeaveRecord(t *testing.T) {
	svc, st, _ := newTestService()
	ctx := context.Background()

	record, err := svc.IssueLeaveRecord(ctx, document.LeaveRecordSpec{
		EmployeeID: employeeID,
		Kind:       document.LeaveSick,
		Reason:     "flu",
		StartDate:  date(2024, 2, 1),
		EndDate:    date(2024, 2, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, document.TypeLeaveRecord, record.Document.Type)
	assert.Equal(t, document.StatusPending, record.Document.Status)
	assert.Equal(t, 3, record.Days())

	_, err = svc.IssueLeaveRecord(ctx, document.LeaveRecordSpec{
		EmployeeID: employeeID,
		Kind:       document.LeaveVacation,
		StartDate:  date(2024, 2, 3),
		EndDate:    date(2024, 2, 1),
	})
	assert.ErrorIs(t, err, document.ErrInvalidPeriod)

	_, err = svc.IssueLeaveRecord(ctx, document.LeaveRecordSpec{
		EmployeeID: employeeID,
		Kind:       document.LeaveKind("sabbatical"),
		StartDate:  date(2024, 2, 1),
		EndDate:    date(2024, 2, 1),
	})
	assert.ErrorIs(t, err, document.ErrInvalidLeaveKind)

	st.failOn = "leave_record"
	_, err = svc.IssueLeaveRecord(ctx, document.LeaveRecordSpec{
		EmployeeID: employeeID,
		Kind:       document.LeaveVacation,
		StartDate:  date(2024, 3, 1),
		EndDate:    date(2024, 3, 1),
	})
	require.Error(t, err)
	assert.Len(t, st.documents, 1)
	assert.Len(t, st.records, 1)
}

type unknownSpec struct{ document.ContractSpec }

func (unknownSpec) DocumentType() document.DocumentType { return "memo" }

func TestIssue_Dispatch(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	issued, err := svc.Issue(ctx, document.ContractSpec{
		EmployeeID: employeeID,
		Position:   "Engineer",
		Salary:     decimal.NewFromInt(100),
		StartDate:  date(2024, 1, 1),
	})
	require.NoError(t, err)
	require.NotNil(t, issued.Contract)
	assert.Nil(t, issued.LeaveRecord)
	assert.Equal(t, document.TypeContract, issued.Document.Type)

	issued, err = svc.Issue(ctx, document.LeaveRecordSpec{
		EmployeeID: employeeID,
		Kind:       document.LeaveVacation,
		StartDate:  date(2024, 1, 1),
		EndDate:    date(2024, 1, 5),
	})
	require.NoError(t, err)
	require.NotNil(t, issued.LeaveRecord)
	assert.Nil(t, issued.Contract)

	assert.Panics(t, func() {
		_, _ = svc.Issue(ctx, unknownSpec{})
	})
}

func TestSetStatus(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	record, err := svc.IssueLeaveRecord(ctx, document.LeaveRecordSpec{
		EmployeeID: employeeID,
		Kind:       document.LeaveVacation,
		StartDate:  date(2024, 1, 1),
		EndDate:    date(2024, 1, 1),
	})
	require.NoError(t, err)

	doc, err := svc.SetStatus(ctx, record.DocumentID, document.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, document.StatusApproved, doc.Status)

	_, err = svc.SetStatus(ctx, record.DocumentID, document.Status("archived"))
	assert.ErrorIs(t, err, document.ErrInvalidStatus)

	_, err = svc.SetStatus(ctx, "missing", document.StatusApproved)
	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
}

func TestGetDocument_IncludesPayload(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	contract, err := svc.IssueContract(ctx, document.ContractSpec{
		EmployeeID: employeeID,
		Position:   "Engineer",
		Salary:     decimal.NewFromInt(4200),
		StartDate:  date(2024, 1, 1),
	})
	require.NoError(t, err)

	resp, err := svc.GetDocument(ctx, contract.DocumentID)
	require.NoError(t, err)
	require.NotNil(t, resp.Contract)
	assert.Nil(t, resp.LeaveRecord)
	assert.Equal(t, contract.ID, resp.Contract.ID)
}

func TestRenderPDF(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	record, err := svc.IssueLeaveRecord(ctx, document.LeaveRecordSpec{
		EmployeeID: employeeID,
		Kind:       document.LeaveVacation,
		Reason:     "Holiday",
		StartDate:  date(2024, 7, 1),
		EndDate:    date(2024, 7, 10),
	})
	require.NoError(t, err)

	content, filename, err := svc.RenderPDF(ctx, record.DocumentID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	assert.Equal(t, "leave_record_"+record.DocumentID+".pdf", filename)

	_, _, err = svc.RenderPDF(ctx, "missing")
	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
}
