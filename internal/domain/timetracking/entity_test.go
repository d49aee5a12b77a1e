package timetracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoursWorked(t *testing.T) {
	in := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	open := TimeEntry{ClockIn: in}
	assert.Equal(t, 0.0, HoursWorked(open))

	out := in.Add(8*time.Hour + 20*time.Minute)
	assert.Equal(t, 8.33, HoursWorked(TimeEntry{ClockIn: in, ClockOut: &out}))
}

func TestHoursWorked_MixedLocations(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	in := time.Date(2024, 3, 4, 12, 0, 0, 0, moscow) // 09:00 UTC
	out := time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC)

	assert.Equal(t, 8.5, HoursWorked(TimeEntry{ClockIn: in, ClockOut: &out}))
}

func TestProjectedHours(t *testing.T) {
	in := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	now := in.Add(90 * time.Minute)

	assert.Equal(t, 1.5, ProjectedHours(TimeEntry{ClockIn: in}, now))
	assert.Equal(t, 0.0, ProjectedHours(TimeEntry{ClockIn: in, ClockOut: &now}, now))
	assert.Equal(t, 0.0, ProjectedHours(TimeEntry{ClockIn: now}, in))
}

func TestSumHours(t *testing.T) {
	in := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	out1 := in.Add(3 * time.Hour)
	in2 := in.Add(4 * time.Hour)
	out2 := in2.Add(150 * time.Minute)

	entries := []TimeEntry{
		{ClockIn: in, ClockOut: &out1},
		{ClockIn: in2, ClockOut: &out2},
		{ClockIn: out2},
	}
	assert.Equal(t, 5.5, SumHours(entries))
}

func TestWeekStart(t *testing.T) {
	sunday := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, WeekStart(sunday))
	assert.Equal(t, monday, WeekStart(monday.Add(5*time.Hour)))
}
