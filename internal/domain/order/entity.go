package order

import (
	"time"
)

type Type string

const (
	TypeVacation  Type = "vacation"
	TypeHire      Type = "hire"
	TypeFire      Type = "fire"
	TypePromotion Type = "promotion"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeVacation, TypeHire, TypeFire, TypePromotion:
		return true
	}
	return false
}

// Label is the human-readable order title used in notifications.
func (t Type) Label() string {
	switch t {
	case TypeVacation:
		return "vacation order"
	case TypeHire:
		return "hiring order"
	case TypeFire:
		return "dismissal order"
	case TypePromotion:
		return "promotion order"
	}
	return "order"
}

// Order is an official HR order issued about one employee.
type Order struct {
	ID          string
	Type        Type
	EmployeeID  string
	OrderNumber string
	OrderDate   time.Time
	Content     string
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	EmployeeName *string
}
