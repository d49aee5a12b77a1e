package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/order"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

type OrderServiceImpl struct {
	order.OrderRepository
	notifications notification.Service
}

func NewOrderService(orderRepository order.OrderRepository, notificationService notification.Service) order.OrderService {
	return &OrderServiceImpl{
		OrderRepository: orderRepository,
		notifications:   notificationService,
	}
}

// Create implements order.OrderService.
func (s *OrderServiceImpl) Create(ctx context.Context, createdBy string, req order.CreateOrderRequest) (order.Outcome, error) {
	if !req.Type.IsValid() {
		return order.Outcome{}, order.ErrInvalidType
	}
	orderDate, ok := validator.IsValidDate(req.OrderDate)
	if !ok {
		return order.Outcome{}, fmt.Errorf("invalid order date %q", req.OrderDate)
	}

	newOrder := order.Order{
		Type:        req.Type,
		EmployeeID:  req.EmployeeID,
		OrderNumber: strings.TrimSpace(req.OrderNumber),
		OrderDate:   orderDate,
		Content:     strings.TrimSpace(req.Content),
	}
	if createdBy != "" {
		newOrder.CreatedBy = &createdBy
	}

	created, err := s.OrderRepository.Create(ctx, newOrder)
	if err != nil {
		return order.Outcome{}, fmt.Errorf("failed to create order: %w", err)
	}

	outcome := order.Outcome{Order: order.NewOrderResponse(created)}
	message := fmt.Sprintf("A %s No. %s dated %s was issued for you",
		created.Type.Label(), created.OrderNumber, created.OrderDate.Format(validator.DateLayout))
	s.notify(ctx, &outcome, created, notification.KindOrderCreated, message)

	return outcome, nil
}

// Update implements order.OrderService.
func (s *OrderServiceImpl) Update(ctx context.Context, req order.UpdateOrderRequest) (order.Outcome, error) {
	existing, err := s.OrderRepository.GetByID(ctx, req.ID)
	if err != nil {
		return order.Outcome{}, fmt.Errorf("failed to get order: %w", err)
	}

	if req.OrderNumber != nil {
		existing.OrderNumber = strings.TrimSpace(*req.OrderNumber)
	}
	if req.OrderDate != nil {
		orderDate, ok := validator.IsValidDate(*req.OrderDate)
		if !ok {
			return order.Outcome{}, fmt.Errorf("invalid order date %q", *req.OrderDate)
		}
		existing.OrderDate = orderDate
	}
	if req.Content != nil {
		existing.Content = strings.TrimSpace(*req.Content)
	}

	updated, err := s.OrderRepository.Update(ctx, existing)
	if err != nil {
		return order.Outcome{}, fmt.Errorf("failed to update order: %w", err)
	}

	outcome := order.Outcome{Order: order.NewOrderResponse(updated)}
	message := fmt.Sprintf("Your %s No. %s was updated", updated.Type.Label(), updated.OrderNumber)
	s.notify(ctx, &outcome, updated, notification.KindOrderStatus, message)

	return outcome, nil
}

// notify is best-effort: a failed notification never undoes the stored order.
func (s *OrderServiceImpl) notify(ctx context.Context, outcome *order.Outcome, o order.Order, kind notification.Kind, message string) {
	created, err := s.notifications.Notify(ctx, o.EmployeeID, kind, message, notification.ChannelPush)
	if err != nil {
		slog.Error("failed to notify employee about order", "order_id", o.ID, "employee_id", o.EmployeeID, "kind", kind, "error", err)
		outcome.Warnings = append(outcome.Warnings, "employee could not be notified")
		return
	}
	for _, n := range created {
		outcome.Notifications = append(outcome.Notifications, notification.NewNotificationResponse(n))
	}
}

// Get implements order.OrderService.
func (s *OrderServiceImpl) Get(ctx context.Context, id string) (order.OrderResponse, error) {
	o, err := s.OrderRepository.GetByID(ctx, id)
	if err != nil {
		return order.OrderResponse{}, fmt.Errorf("failed to get order: %w", err)
	}
	return order.NewOrderResponse(o), nil
}

// List implements order.OrderService.
func (s *OrderServiceImpl) List(ctx context.Context, filter order.OrderFilter) ([]order.OrderResponse, error) {
	orders, err := s.OrderRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	responses := make([]order.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, order.NewOrderResponse(o))
	}
	return responses, nil
}
