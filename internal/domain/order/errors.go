package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNumberExists = errors.New("order number already exists")
	ErrInvalidType       = errors.New("invalid order type")
)
