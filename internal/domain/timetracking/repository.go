package timetracking

import (
	"context"
	"time"
)

type TimeEntryRepository interface {
	// Create fails with ErrAlreadyClockedIn when an open entry exists for the same work date.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// GetLatestOpen returns the open entry with the latest clock-in on workDate.
	GetLatestOpen(ctx context.Context, employeeID string, workDate time.Time) (TimeEntry, error)

	// Close sets clock_out on an entry that is still open.
	Close(ctx context.Context, id string, clockOut time.Time) (TimeEntry, error)

	List(ctx context.Context, filter TimeEntryFilter) ([]TimeEntry, error)
}
