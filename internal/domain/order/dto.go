package order

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

type CreateOrderRequest struct {
	Type        Type   `json:"order_type"`
	EmployeeID  string `json:"employee_id"`
	OrderNumber string `json:"order_number"`
	OrderDate   string `json:"order_date"`
	Content     string `json:"content"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	r.OrderNumber = strings.TrimSpace(r.OrderNumber)

	if !r.Type.IsValid() {
		errs.Add("order_type", "order_type must be one of: vacation, hire, fire, promotion")
	}
	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if r.OrderNumber == "" {
		errs.Add("order_number", "order_number is required")
	} else if len(r.OrderNumber) > 50 {
		errs.Add("order_number", "order_number must not exceed 50 characters")
	}
	if _, ok := validator.IsValidDate(r.OrderDate); !ok {
		errs.Add("order_date", "order_date must be in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.Content) {
		errs.Add("content", "content is required")
	}

	return errs.Err()
}

type UpdateOrderRequest struct {
	ID          string  `json:"-"`
	OrderNumber *string `json:"order_number,omitempty"`
	OrderDate   *string `json:"order_date,omitempty"`
	Content     *string `json:"content,omitempty"`
}

func (r *UpdateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OrderNumber == nil && r.OrderDate == nil && r.Content == nil {
		errs.Add("order", "at least one field must be provided")
	}
	if r.OrderNumber != nil {
		trimmed := strings.TrimSpace(*r.OrderNumber)
		r.OrderNumber = &trimmed
		if trimmed == "" || len(trimmed) > 50 {
			errs.Add("order_number", "order_number must be 1 to 50 characters")
		}
	}
	if r.OrderDate != nil {
		if _, ok := validator.IsValidDate(*r.OrderDate); !ok {
			errs.Add("order_date", "order_date must be in YYYY-MM-DD format")
		}
	}
	if r.Content != nil && validator.IsEmpty(*r.Content) {
		errs.Add("content", "content must not be empty")
	}

	return errs.Err()
}

type OrderFilter struct {
	EmployeeID *string
	Type       *Type
	From       *time.Time
	To         *time.Time
}

type OrderResponse struct {
	ID           string    `json:"id"`
	Type         Type      `json:"order_type"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	OrderNumber  string    `json:"order_number"`
	OrderDate    string    `json:"order_date"`
	Content      string    `json:"content"`
	CreatedBy    *string   `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewOrderResponse(o Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		Type:         o.Type,
		EmployeeID:   o.EmployeeID,
		EmployeeName: o.EmployeeName,
		OrderNumber:  o.OrderNumber,
		OrderDate:    o.OrderDate.Format(validator.DateLayout),
		Content:      o.Content,
		CreatedBy:    o.CreatedBy,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// Outcome carries the stored order and the notifications sent about it.
type Outcome struct {
	Order         OrderResponse                       `json:"order"`
	Notifications []notification.NotificationResponse `json:"notifications,omitempty"`
	Warnings      []string                            `json:"warnings,omitempty"`
}
