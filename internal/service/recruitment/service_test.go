package recruitment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTransactor struct{}

func (passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeVacancies struct {
	seq  int
	rows map[string]recruitment.Vacancy
}

func (f *fakeVacancies) Create(ctx context.Context, v recruitment.Vacancy) (recruitment.Vacancy, error) {
	f.seq++
	v.ID = fmt.Sprintf("vac-%d", f.seq)
	f.rows[v.ID] = v
	return v, nil
}

func (f *fakeVacancies) GetByID(ctx context.Context, id string) (recruitment.Vacancy, error) {
	v, ok := f.rows[id]
	if !ok {
		return recruitment.Vacancy{}, recruitment.ErrVacancyNotFound
	}
	return v, nil
}

func (f *fakeVacancies) List(ctx context.Context, filter recruitment.VacancyFilter) ([]recruitment.Vacancy, error) {
	var out []recruitment.Vacancy
	for _, v := range f.rows {
		if filter.ActiveOnly && !v.IsActive {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVacancies) Update(ctx context.Context, v recruitment.Vacancy) (recruitment.Vacancy, error) {
	f.rows[v.ID] = v
	return v, nil
}

func (f *fakeVacancies) SetActive(ctx context.Context, id string, active bool) (recruitment.Vacancy, error) {
	v, ok := f.rows[id]
	if !ok {
		return recruitment.Vacancy{}, recruitment.ErrVacancyNotFound
	}
	v.IsActive = active
	f.rows[id] = v
	return v, nil
}

type fakeCandidates struct {
	seq  int
	rows map[string]recruitment.Candidate
}

func (f *fakeCandidates) Create(ctx context.Context, c recruitment.Candidate) (recruitment.Candidate, error) {
	f.seq++
	c.ID = fmt.Sprintf("cand-%d", f.seq)
	f.rows[c.ID] = c
	return c, nil
}

func (f *fakeCandidates) GetByID(ctx context.Context, id string) (recruitment.Candidate, error) {
	c, ok := f.rows[id]
	if !ok {
		return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
	}
	return c, nil
}

func (f *fakeCandidates) List(ctx context.Context, filter recruitment.CandidateFilter) ([]recruitment.Candidate, error) {
	var out []recruitment.Candidate
	for _, c := range f.rows {
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCandidates) UpdateNotes(ctx context.Context, id string, notes string) (recruitment.Candidate, error) {
	c, ok := f.rows[id]
	if !ok {
		return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
	}
	c.Notes = notes
	f.rows[id] = c
	return c, nil
}

func (f *fakeCandidates) SetResume(ctx context.Context, id string, path string) error {
	c, ok := f.rows[id]
	if !ok {
		return recruitment.ErrCandidateNotFound
	}
	c.ResumePath = &path
	f.rows[id] = c
	return nil
}

func (f *fakeCandidates) SetStatus(ctx context.Context, ids []string, status recruitment.CandidateStatus) (int, error) {
	n := 0
	for _, id := range ids {
		if c, ok := f.rows[id]; ok {
			c.Status = status
			f.rows[id] = c
			n++
		}
	}
	return n, nil
}

type fixture struct {
	svc        recruitment.RecruitmentService
	vacancies  *fakeVacancies
	candidates *fakeCandidates
	files      *storage.LocalStorage
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	vacancies := &fakeVacancies{rows: map[string]recruitment.Vacancy{}}
	candidates := &fakeCandidates{rows: map[string]recruitment.Candidate{}}
	return fixture{
		svc:        NewRecruitmentService(passthroughTransactor{}, vacancies, candidates, files),
		vacancies:  vacancies,
		candidates: candidates,
		files:      files,
	}
}

func (f fixture) vacancy(t *testing.T) recruitment.VacancyResponse {
	t.Helper()
	v, err := f.svc.CreateVacancy(context.Background(), recruitment.CreateVacancyRequest{
		Title:      "Backend Engineer",
		Department: "Engineering",
	})
	require.NoError(t, err)
	return v
}

func TestCreateVacancy(t *testing.T) {
	f := newFixture(t)
	v := f.vacancy(t)
	assert.True(t, v.IsActive, "vacancies open by default")

	from, to := decimal.NewFromInt(9000), decimal.NewFromInt(5000)
	_, err := f.svc.CreateVacancy(context.Background(), recruitment.CreateVacancyRequest{
		Title: "x", Department: "y", SalaryFrom: &from, SalaryTo: &to,
	})
	assert.ErrorIs(t, err, recruitment.ErrInvalidSalaryRange)
}

func TestUpdateVacancy_MergesAndChecksRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.vacancy(t)

	to := decimal.NewFromInt(8000)
	title := "Senior Backend Engineer"
	updated, err := f.svc.UpdateVacancy(ctx, recruitment.UpdateVacancyRequest{ID: v.ID, Title: &title, SalaryTo: &to})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, "Engineering", updated.Department)

	from := decimal.NewFromInt(9000)
	_, err = f.svc.UpdateVacancy(ctx, recruitment.UpdateVacancyRequest{ID: v.ID, SalaryFrom: &from})
	assert.ErrorIs(t, err, recruitment.ErrInvalidSalaryRange)
}

func TestApply_WithResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.vacancy(t)

	c, err := f.svc.Apply(ctx, recruitment.ApplyRequest{
		VacancyID: v.ID, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
	}, strings.NewReader("%PDF-1.4 resume"), "CV.pdf")
	require.NoError(t, err)
	assert.Equal(t, recruitment.CandidateNew, c.Status)
	assert.True(t, c.HasResume)
	require.NotNil(t, c.VacancyTitle)
	assert.Equal(t, "Backend Engineer", *c.VacancyTitle)

	rc, name, err := f.svc.DownloadResume(ctx, c.ID)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 resume", string(body))
	assert.Equal(t, "grace_hopper_resume.pdf", name)
}

func TestApply_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.vacancy(t)
	req := recruitment.ApplyRequest{VacancyID: v.ID, FirstName: "A", LastName: "B", Email: "a@b.io"}

	_, err := f.svc.Apply(ctx, req, strings.NewReader("MZ"), "cv.exe")
	assert.ErrorIs(t, err, recruitment.ErrUnsupportedResume)

	_, err = f.svc.Apply(ctx, recruitment.ApplyRequest{VacancyID: "missing"}, nil, "")
	assert.ErrorIs(t, err, recruitment.ErrVacancyNotFound)

	_, err = f.svc.SetVacancyActive(ctx, v.ID, false)
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, req, nil, "")
	assert.ErrorIs(t, err, recruitment.ErrVacancyClosed)

	assert.Empty(t, f.candidates.rows)
}

func TestApply_WithoutResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.vacancy(t)

	c, err := f.svc.Apply(ctx, recruitment.ApplyRequest{VacancyID: v.ID, FirstName: "A", LastName: "B", Email: "a@b.io"}, nil, "")
	require.NoError(t, err)
	assert.False(t, c.HasResume)

	_, _, err = f.svc.DownloadResume(ctx, c.ID)
	assert.ErrorIs(t, err, recruitment.ErrResumeNotFound)
}

func TestApply_KeepsResumeText(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.vacancy(t)

	c, err := f.svc.Apply(ctx, recruitment.ApplyRequest{
		VacancyID:  v.ID,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		ResumeText: "  5 years of Go, distributed systems  ",
	}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "5 years of Go, distributed systems", c.ResumeText)
	assert.False(t, c.HasResume)

	stored, err := f.svc.GetCandidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "5 years of Go, distributed systems", stored.ResumeText)

	withFile, err := f.svc.Apply(ctx, recruitment.ApplyRequest{
		VacancyID:  v.ID,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		ResumeText: "see attached",
	}, strings.NewReader("%PDF-1.4"), "cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "see attached", withFile.ResumeText)
	assert.True(t, withFile.HasResume)
}

func TestBulkSetCandidateStatus_AnyTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.vacancy(t)

	var ids []string
	for i := 0; i < 3; i++ {
		c, err := f.svc.Apply(ctx, recruitment.ApplyRequest{VacancyID: v.ID, FirstName: "A", LastName: "B", Email: "a@b.io"}, nil, "")
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	count, err := f.svc.BulkSetCandidateStatus(ctx, recruitment.BulkStatusRequest{CandidateIDs: ids, Status: recruitment.CandidateHired})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = f.svc.BulkSetCandidateStatus(ctx, recruitment.BulkStatusRequest{CandidateIDs: ids[:1], Status: recruitment.CandidateNew})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	status := recruitment.CandidateHired
	hired, err := f.svc.ListCandidates(ctx, recruitment.CandidateFilter{Status: &status})
	require.NoError(t, err)
	assert.Len(t, hired, 2)

	_, err = f.svc.BulkSetCandidateStatus(ctx, recruitment.BulkStatusRequest{CandidateIDs: ids, Status: "archived"})
	assert.True(t, errors.Is(err, recruitment.ErrInvalidCandidateStatus))
}

func TestUpdateCandidateNotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.vacancy(t)

	c, err := f.svc.Apply(ctx, recruitment.ApplyRequest{VacancyID: v.ID, FirstName: "A", LastName: "B", Email: "a@b.io"}, nil, "")
	require.NoError(t, err)

	updated, err := f.svc.UpdateCandidateNotes(ctx, c.ID, recruitment.UpdateNotesRequest{Notes: "strong systems background"})
	require.NoError(t, err)
	assert.Equal(t, "strong systems background", updated.Notes)

	_, err = f.svc.UpdateCandidateNotes(ctx, "missing", recruitment.UpdateNotesRequest{})
	assert.ErrorIs(t, err, recruitment.ErrCandidateNotFound)
}
