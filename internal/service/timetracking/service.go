package timetracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/timetracking"
)

// TimeTrackingServiceImpl holds no per-employee state; every call reads the ledger.
type TimeTrackingServiceImpl struct {
	timetracking.TimeEntryRepository
	clock    func() time.Time
	location *time.Location
}

func NewTimeTrackingService(timeEntryRepository timetracking.TimeEntryRepository, clock func() time.Time, location *time.Location) timetracking.TimeTrackingService {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &TimeTrackingServiceImpl{
		TimeEntryRepository: timeEntryRepository,
		clock:               clock,
		location:            location,
	}
}

// Now implements timetracking.TimeTrackingService.
func (s *TimeTrackingServiceImpl) Now() time.Time {
	return s.clock().In(s.location)
}

// ClockIn implements timetracking.TimeTrackingService.
func (s *TimeTrackingServiceImpl) ClockIn(ctx context.Context, employeeID string) (timetracking.TimeEntry, error) {
	now := s.Now()
	today := timetracking.DateOf(now)

	_, err := s.TimeEntryRepository.GetLatestOpen(ctx, employeeID, today)
	if err == nil {
		return timetracking.TimeEntry{}, timetracking.ErrAlreadyClockedIn
	}
	if !errors.Is(err, timetracking.ErrTimeEntryNotFound) {
		return timetracking.TimeEntry{}, fmt.Errorf("failed to check open time entry: %w", err)
	}

	// A concurrent clock-in loses on the open-entry unique index and maps to ErrAlreadyClockedIn.
	entry, err := s.TimeEntryRepository.Create(ctx, timetracking.TimeEntry{
		EmployeeID: employeeID,
		ClockIn:    now,
		WorkDate:   today,
	})
	if err != nil {
		if errors.Is(err, timetracking.ErrAlreadyClockedIn) {
			return timetracking.TimeEntry{}, err
		}
		return timetracking.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// ClockOut implements timetracking.TimeTrackingService.
func (s *TimeTrackingServiceImpl) ClockOut(ctx context.Context, employeeID string) (timetracking.TimeEntry, error) {
	now := s.Now()

	open, err := s.TimeEntryRepository.GetLatestOpen(ctx, employeeID, timetracking.DateOf(now))
	if err != nil {
		if errors.Is(err, timetracking.ErrTimeEntryNotFound) {
			return timetracking.TimeEntry{}, timetracking.ErrNotClockedIn
		}
		return timetracking.TimeEntry{}, fmt.Errorf("failed to get open time entry: %w", err)
	}

	closed, err := s.TimeEntryRepository.Close(ctx, open.ID, now)
	if err != nil {
		if errors.Is(err, timetracking.ErrTimeEntryNotFound) {
			return timetracking.TimeEntry{}, timetracking.ErrNotClockedIn
		}
		return timetracking.TimeEntry{}, fmt.Errorf("failed to close time entry: %w", err)
	}

	return closed, nil
}

// HoursWorkedOn implements timetracking.TimeTrackingService.
func (s *TimeTrackingServiceImpl) HoursWorkedOn(ctx context.Context, employeeID string, date time.Time) (float64, error) {
	day := timetracking.DateOf(date)
	entries, err := s.TimeEntryRepository.List(ctx, timetracking.TimeEntryFilter{
		EmployeeID: &employeeID,
		From:       &day,
		To:         &day,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	return timetracking.SumHours(entries), nil
}

// Today implements timetracking.TimeTrackingService.
func (s *TimeTrackingServiceImpl) Today(ctx context.Context, employeeID string) (timetracking.TodaySummary, error) {
	now := s.Now()
	today := timetracking.DateOf(now)

	entries, err := s.TimeEntryRepository.List(ctx, timetracking.TimeEntryFilter{
		EmployeeID: &employeeID,
		From:       &today,
		To:         &today,
	})
	if err != nil {
		return timetracking.TodaySummary{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	summary := timetracking.TodaySummary{
		Date:        today.Format("2006-01-02"),
		ClosedHours: timetracking.SumHours(entries),
	}

	// Entries are ordered by clock_in, so the last open one is the active session.
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].IsOpen() {
			open := timetracking.NewTimeEntryResponse(entries[i])
			summary.ClockedIn = true
			summary.OpenEntry = &open
			summary.ProjectedHours = timetracking.ProjectedHours(entries[i], now)
			break
		}
	}
	summary.TotalHours = timetracking.RoundHours(summary.ClosedHours+summary.ProjectedHours, 2)

	return summary, nil
}

// WeekHours implements timetracking.TimeTrackingService.
func (s *TimeTrackingServiceImpl) WeekHours(ctx context.Context, employeeID string) (float64, error) {
	now := s.Now()
	from := timetracking.WeekStart(now)
	to := timetracking.DateOf(now)

	entries, err := s.TimeEntryRepository.List(ctx, timetracking.TimeEntryFilter{
		EmployeeID: &employeeID,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	return timetracking.SumHours(entries), nil
}

// History implements timetracking.TimeTrackingService.
func (s *TimeTrackingServiceImpl) History(ctx context.Context, filter timetracking.TimeEntryFilter) (timetracking.HistoryResponse, error) {
	entries, err := s.TimeEntryRepository.List(ctx, filter)
	if err != nil {
		return timetracking.HistoryResponse{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	resp := timetracking.HistoryResponse{
		Entries:    make([]timetracking.TimeEntryResponse, 0, len(entries)),
		TotalHours: timetracking.SumHours(entries),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, timetracking.NewTimeEntryResponse(e))
	}
	return resp, nil
}
