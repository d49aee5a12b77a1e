package salary

import "errors"

var (
	ErrSalaryRuleNotFound = errors.New("salary rule not found")
	ErrInvalidKind        = errors.New("invalid salary rule kind")
)
