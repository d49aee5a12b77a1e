package order

import "context"

type OrderService interface {
	// Create stores the order and notifies the employee with kind order_created.
	Create(ctx context.Context, createdBy string, req CreateOrderRequest) (Outcome, error)

	// Update edits number, date or content and notifies the employee with kind order_status.
	Update(ctx context.Context, req UpdateOrderRequest) (Outcome, error)

	Get(ctx context.Context, id string) (OrderResponse, error)
	List(ctx context.Context, filter OrderFilter) ([]OrderResponse, error)
}
