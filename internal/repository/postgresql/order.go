package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/order"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

const orderSelect = `
	SELECT o.id, o.order_type, o.employee_id, o.order_number, o.order_date, o.content,
		o.created_by, o.created_at, o.updated_at,
		e.first_name || ' ' || e.last_name
	FROM orders o
	JOIN employees e ON e.id = o.employee_id
`

func scanOrder(row rowScanner) (order.Order, error) {
	var o order.Order
	err := row.Scan(
		&o.ID, &o.Type, &o.EmployeeID, &o.OrderNumber, &o.OrderDate, &o.Content,
		&o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
		&o.EmployeeName,
	)
	return o, err
}

func mapOrderWriteError(err error) error {
	switch pgErrorCode(err) {
	case uniqueViolationCode:
		return order.ErrOrderNumberExists
	case foreignKeyViolationCode:
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Create implements order.OrderRepository.
func (r *orderRepositoryImpl) Create(ctx context.Context, newOrder order.Order) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return order.Order{}, err
	}

	query := `
		INSERT INTO orders (id, employee_id, order_type, order_number, order_date, content, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = q.Exec(ctx, query,
		id,
		newOrder.EmployeeID,
		newOrder.Type,
		newOrder.OrderNumber,
		newOrder.OrderDate,
		newOrder.Content,
		newOrder.CreatedBy,
	)
	if err != nil {
		if mapped := mapOrderWriteError(err); mapped != nil {
			return order.Order{}, mapped
		}
		return order.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements order.OrderRepository.
func (r *orderRepositoryImpl) GetByID(ctx context.Context, id string) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOrder(q.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, fmt.Errorf("failed to get order with id %s: %w", id, err)
	}
	return o, nil
}

// List implements order.OrderRepository.
func (r *orderRepositoryImpl) List(ctx context.Context, filter order.OrderFilter) ([]order.Order, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("o.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("o.order_type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("o.order_date >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("o.order_date <= $%d", argIdx))
		args = append(args, *filter.To)
	}

	query := orderSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY o.order_date DESC, o.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Update implements order.OrderRepository.
func (r *orderRepositoryImpl) Update(ctx context.Context, o order.Order) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE orders
		SET order_number = $2, order_date = $3, content = $4, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, o.ID, o.OrderNumber, o.OrderDate, o.Content)
	if err != nil {
		if mapped := mapOrderWriteError(err); mapped != nil {
			return order.Order{}, mapped
		}
		return order.Order{}, fmt.Errorf("failed to update order %s: %w", o.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return order.Order{}, order.ErrOrderNotFound
	}

	return r.GetByID(ctx, o.ID)
}
