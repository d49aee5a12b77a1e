package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vacancyRepositoryImpl struct {
	db *database.DB
}

func NewVacancyRepository(db *database.DB) recruitment.VacancyRepository {
	return &vacancyRepositoryImpl{db: db}
}

const vacancySelect = `
	SELECT v.id, v.title, v.department, v.description, v.requirements, v.salary_from, v.salary_to,
		v.is_active, v.created_at, v.updated_at,
		(SELECT COUNT(*) FROM candidates c WHERE c.vacancy_id = v.id)
	FROM vacancies v
`

func scanVacancy(row rowScanner) (recruitment.Vacancy, error) {
	var v recruitment.Vacancy
	err := row.Scan(
		&v.ID, &v.Title, &v.Department, &v.Description, &v.Requirements, &v.SalaryFrom, &v.SalaryTo,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt,
		&v.CandidateCount,
	)
	return v, err
}

// Create implements recruitment.VacancyRepository.
func (r *vacancyRepositoryImpl) Create(ctx context.Context, vacancy recruitment.Vacancy) (recruitment.Vacancy, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return recruitment.Vacancy{}, err
	}

	query := `
		INSERT INTO vacancies (id, title, department, description, requirements, salary_from, salary_to, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = q.Exec(ctx, query,
		id,
		vacancy.Title,
		vacancy.Department,
		vacancy.Description,
		vacancy.Requirements,
		vacancy.SalaryFrom,
		vacancy.SalaryTo,
		vacancy.IsActive,
	)
	if err != nil {
		return recruitment.Vacancy{}, fmt.Errorf("failed to create vacancy: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements recruitment.VacancyRepository.
func (r *vacancyRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.Vacancy, error) {
	q := GetQuerier(ctx, r.db)

	v, err := scanVacancy(q.QueryRow(ctx, vacancySelect+` WHERE v.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.Vacancy{}, recruitment.ErrVacancyNotFound
		}
		return recruitment.Vacancy{}, fmt.Errorf("failed to get vacancy with id %s: %w", id, err)
	}
	return v, nil
}

// List implements recruitment.VacancyRepository.
func (r *vacancyRepositoryImpl) List(ctx context.Context, filter recruitment.VacancyFilter) ([]recruitment.Vacancy, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)

	if filter.ActiveOnly {
		conditions = append(conditions, "v.is_active = TRUE")
	}
	if filter.Department != nil && *filter.Department != "" {
		args = append(args, *filter.Department)
		conditions = append(conditions, fmt.Sprintf("v.department = $%d", len(args)))
	}

	query := vacancySelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY v.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacancies: %w", err)
	}
	defer rows.Close()

	var vacancies []recruitment.Vacancy
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacancy: %w", err)
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}

// Update implements recruitment.VacancyRepository.
func (r *vacancyRepositoryImpl) Update(ctx context.Context, vacancy recruitment.Vacancy) (recruitment.Vacancy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacancies
		SET title = $2, department = $3, description = $4, requirements = $5,
			salary_from = $6, salary_to = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		vacancy.ID,
		vacancy.Title,
		vacancy.Department,
		vacancy.Description,
		vacancy.Requirements,
		vacancy.SalaryFrom,
		vacancy.SalaryTo,
		vacancy.IsActive,
	)
	if err != nil {
		return recruitment.Vacancy{}, fmt.Errorf("failed to update vacancy with id %s: %w", vacancy.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.Vacancy{}, recruitment.ErrVacancyNotFound
	}

	return r.GetByID(ctx, vacancy.ID)
}

// SetActive implements recruitment.VacancyRepository.
func (r *vacancyRepositoryImpl) SetActive(ctx context.Context, id string, active bool) (recruitment.Vacancy, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE vacancies SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return recruitment.Vacancy{}, fmt.Errorf("failed to toggle vacancy with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.Vacancy{}, recruitment.ErrVacancyNotFound
	}

	return r.GetByID(ctx, id)
}

type candidateRepositoryImpl struct {
	db *database.DB
}

func NewCandidateRepository(db *database.DB) recruitment.CandidateRepository {
	return &candidateRepositoryImpl{db: db}
}

const candidateSelect = `
	SELECT c.id, c.vacancy_id, c.first_name, c.last_name, c.email, c.phone, c.resume_text, c.resume_path,
		c.status, c.notes, c.applied_at, c.updated_at,
		v.title
	FROM candidates c
	JOIN vacancies v ON v.id = c.vacancy_id
`

func scanCandidate(row rowScanner) (recruitment.Candidate, error) {
	var c recruitment.Candidate
	err := row.Scan(
		&c.ID, &c.VacancyID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.ResumeText, &c.ResumePath,
		&c.Status, &c.Notes, &c.AppliedAt, &c.UpdatedAt,
		&c.VacancyTitle,
	)
	return c, err
}

// Create implements recruitment.CandidateRepository.
func (r *candidateRepositoryImpl) Create(ctx context.Context, candidate recruitment.Candidate) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return recruitment.Candidate{}, err
	}

	status := candidate.Status
	if status == "" {
		status = recruitment.CandidateNew
	}

	query := `
		INSERT INTO candidates (id, vacancy_id, first_name, last_name, email, phone, resume_text, resume_path, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = q.Exec(ctx, query,
		id,
		candidate.VacancyID,
		candidate.FirstName,
		candidate.LastName,
		candidate.Email,
		candidate.Phone,
		candidate.ResumeText,
		candidate.ResumePath,
		status,
		candidate.Notes,
	)
	if err != nil {
		if pgErrorCode(err) == foreignKeyViolationCode {
			return recruitment.Candidate{}, recruitment.ErrVacancyNotFound
		}
		return recruitment.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements recruitment.CandidateRepository.
func (r *candidateRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCandidate(q.QueryRow(ctx, candidateSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
		}
		return recruitment.Candidate{}, fmt.Errorf("failed to get candidate with id %s: %w", id, err)
	}
	return c, nil
}

// List implements recruitment.CandidateRepository.
func (r *candidateRepositoryImpl) List(ctx context.Context, filter recruitment.CandidateFilter) ([]recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)

	if filter.VacancyID != nil {
		args = append(args, *filter.VacancyID)
		conditions = append(conditions, fmt.Sprintf("c.vacancy_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", len(args)))
	}

	query := candidateSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY c.applied_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []recruitment.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// UpdateNotes implements recruitment.CandidateRepository.
func (r *candidateRepositoryImpl) UpdateNotes(ctx context.Context, id string, notes string) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE candidates SET notes = $2, updated_at = NOW() WHERE id = $1`, id, notes)
	if err != nil {
		return recruitment.Candidate{}, fmt.Errorf("failed to update notes of candidate %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
	}

	return r.GetByID(ctx, id)
}

// SetResume implements recruitment.CandidateRepository.
func (r *candidateRepositoryImpl) SetResume(ctx context.Context, id string, path string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE candidates SET resume_path = $2, updated_at = NOW() WHERE id = $1`, id, path)
	if err != nil {
		return fmt.Errorf("failed to set resume of candidate %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrCandidateNotFound
	}
	return nil
}

// SetStatus implements recruitment.CandidateRepository.
func (r *candidateRepositoryImpl) SetStatus(ctx context.Context, ids []string, status recruitment.CandidateStatus) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE candidates SET status = $1, updated_at = NOW() WHERE id = ANY($2)`, status, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to update candidate status: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
