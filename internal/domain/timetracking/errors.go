package timetracking

import "errors"

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("no open time entry for today")
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrInvalidPeriod     = errors.New("period end must not be before start")
)
