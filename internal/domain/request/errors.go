package request

import "errors"

var (
	ErrRequestNotFound         = errors.New("request not found")
	ErrRequestAlreadyProcessed = errors.New("request already processed")
	ErrInvalidType             = errors.New("invalid request type")
	ErrInvalidPeriod           = errors.New("end date must not be before start date")
)
