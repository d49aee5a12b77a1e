package order

import "context"

type OrderRepository interface {
	// Create fails with ErrOrderNumberExists on a duplicate number.
	Create(ctx context.Context, newOrder Order) (Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	List(ctx context.Context, filter OrderFilter) ([]Order, error)
	Update(ctx context.Context, o Order) (Order, error)
}
