package timetracking

import (
	"math"
	"time"
)

// TimeEntry is one work session. ClockOut is nil while the session is open.
type TimeEntry struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	WorkDate   time.Time
	CreatedAt  time.Time

	// Join
	EmployeeName *string
}

func (e TimeEntry) IsOpen() bool {
	return e.ClockOut == nil
}

// HoursWorked returns the closed duration of an entry in hours, rounded to
// two decimals. Open entries count as zero.
func HoursWorked(e TimeEntry) float64 {
	if e.ClockOut == nil {
		return 0
	}
	return RoundHours(e.ClockOut.UTC().Sub(e.ClockIn.UTC()).Hours(), 2)
}

// ProjectedHours is the running duration of an open entry at now. It is never persisted.
func ProjectedHours(e TimeEntry, now time.Time) float64 {
	if e.ClockOut != nil || now.Before(e.ClockIn) {
		return 0
	}
	return RoundHours(now.UTC().Sub(e.ClockIn.UTC()).Hours(), 2)
}

// SumHours adds HoursWorked over entries.
func SumHours(entries []TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += HoursWorked(e)
	}
	return RoundHours(total, 2)
}

func RoundHours(h float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(h*p) / p
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	day := DateOf(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
