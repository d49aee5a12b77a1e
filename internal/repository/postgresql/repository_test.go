package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/order"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/timetracking"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, database.New(mock)
}

func TestWithTransaction_Commit(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		_, ok := TxFromContext(ctx)
		assert.True(t, ok, "transaction not injected into context")
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	fnErr := errors.New("boom")
	err := NewTxManager(db).WithinTransaction(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_NestedJoinsOuter(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		outer, _ := TxFromContext(ctx)
		return WithTransaction(ctx, db, func(inner context.Context) error {
			tx, ok := TxFromContext(inner)
			assert.True(t, ok)
			assert.Same(t, outer, tx)
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_UpdateStatus(t *testing.T) {
	t.Run("processed request is left untouched", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := NewRequestRepository(db)

		mock.ExpectQuery(`UPDATE requests`).
			WithArgs("req-1", request.StatusRejected, "hr-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("req-1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := repo.UpdateStatus(context.Background(), "req-1", request.StatusRejected, "hr-1")

		assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown request", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := NewRequestRepository(db)

		mock.ExpectQuery(`UPDATE requests`).
			WithArgs("missing", request.StatusApproved, "hr-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("missing").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := repo.UpdateStatus(context.Background(), "missing", request.StatusApproved, "hr-1")

		assert.ErrorIs(t, err, request.ErrRequestNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTimeEntryRepository_CreateOpenEntryConflict(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewTimeEntryRepository(db)

	clockIn := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	workDate := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO time_entries`).
		WithArgs(pgxmock.AnyArg(), "emp-1", clockIn, pgxmock.AnyArg(), workDate).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err := repo.Create(context.Background(), timetracking.TimeEntry{
		EmployeeID: "emp-1",
		ClockIn:    clockIn,
		WorkDate:   workDate,
	})

	assert.ErrorIs(t, err, timetracking.ErrAlreadyClockedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkAsReadForeignRecipient(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(`UPDATE notifications SET read = TRUE`).
		WithArgs("n-1", "emp-2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.MarkAsRead(context.Background(), "n-1", "emp-2")

	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_CreateBatchEmpty(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewNotificationRepository(db)

	require.NoError(t, repo.CreateBatch(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateDuplicateNumber(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewOrderRepository(db)

	orderDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(pgxmock.AnyArg(), "emp-1", order.TypeHire, "HR-001", orderDate, "Hire as engineer", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err := repo.Create(context.Background(), order.Order{
		Type:        order.TypeHire,
		EmployeeID:  "emp-1",
		OrderNumber: "HR-001",
		OrderDate:   orderDate,
		Content:     "Hire as engineer",
	})

	assert.ErrorIs(t, err, order.ErrOrderNumberExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateUnknownEmployee(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(pgxmock.AnyArg(), "missing", order.TypeFire, "HR-002", pgxmock.AnyArg(), "Dismissal", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

	_, err := repo.Create(context.Background(), order.Order{
		Type:        order.TypeFire,
		EmployeeID:  "missing",
		OrderNumber: "HR-002",
		OrderDate:   time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		Content:     "Dismissal",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateMissing(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`UPDATE orders`).
		WithArgs("ord-1", "HR-003", pgxmock.AnyArg(), "Text").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	_, err := repo.Update(context.Background(), order.Order{ID: "ord-1", OrderNumber: "HR-003", Content: "Text"})

	assert.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
