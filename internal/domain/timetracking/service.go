package timetracking

import (
	"context"
	"time"
)

type TimeTrackingService interface {
	ClockIn(ctx context.Context, employeeID string) (TimeEntry, error)
	ClockOut(ctx context.Context, employeeID string) (TimeEntry, error)

	// HoursWorkedOn sums closed entries of one work date.
	HoursWorkedOn(ctx context.Context, employeeID string, date time.Time) (float64, error)

	// Today includes the live projection of an open entry.
	Today(ctx context.Context, employeeID string) (TodaySummary, error)
	WeekHours(ctx context.Context, employeeID string) (float64, error)

	History(ctx context.Context, filter TimeEntryFilter) (HistoryResponse, error)

	// Now is the service clock in the configured location.
	Now() time.Time
}
