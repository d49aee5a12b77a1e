package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/order"
	"github.com/cmlabs-hris/hrm-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/validator"
)

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type orderHandlerImpl struct {
	orderService order.OrderService
}

func NewOrderHandler(orderService order.OrderService) OrderHandler {
	return &orderHandlerImpl{orderService: orderService}
}

// Create implements OrderHandler.
func (h *orderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req order.CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	outcome, err := h.orderService.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order created successfully", outcome)
}

// List implements OrderHandler.
func (h *orderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	filter := order.OrderFilter{
		EmployeeID: getOptionalQueryParam(r, "employee_id"),
		From:       getDateQueryParam(r, "from", &errs),
		To:         getDateQueryParam(r, "to", &errs),
	}
	if t := getOptionalQueryParam(r, "order_type"); t != nil {
		typ := order.Type(*t)
		if !typ.IsValid() {
			errs.Add("order_type", "order_type must be one of: vacation, hire, fire, promotion")
		}
		filter.Type = &typ
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	orders, err := h.orderService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, orders)
}

// Get implements OrderHandler.
func (h *orderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	o, err := h.orderService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, o)
}

// Update implements OrderHandler.
func (h *orderHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req order.UpdateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	outcome, err := h.orderService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order updated successfully", outcome)
}
