package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysCount(t *testing.T) {
	day := func(d int) *time.Time {
		v := time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name       string
		start, end *time.Time
		want       int
	}{
		{name: "three day period", start: day(10), end: day(12), want: 3},
		{name: "single day", start: day(10), end: day(10), want: 1},
		{name: "start only", start: day(10), want: 0},
		{name: "end only", end: day(12), want: 0},
		{name: "no dates", want: 0},
		{name: "across month end", start: day(30), end: func() *time.Time {
			v := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
			return &v
		}(), want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Request{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, r.DaysCount())
			assert.Equal(t, tt.start != nil && tt.end != nil, r.HasPeriod())
		})
	}
}
