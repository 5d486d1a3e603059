package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayNumberAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("timezone data unavailable")
	}

	// clocks spring forward on March 10, 2024
	before := time.Date(2024, time.March, 9, 23, 30, 0, 0, loc)
	after := time.Date(2024, time.March, 10, 23, 30, 0, 0, loc)

	assert.Equal(t, DayNumber(before)+1, DayNumber(after))
}

func TestDayNumberUsesLocalDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)

	utc := time.Date(2024, time.May, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, DayNumber(utc)+1, DayNumber(utc.In(loc)))
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2024, time.May, 10, 15, 4, 5, 0, time.UTC)

	testCases := []struct {
		Period Period
		Want   time.Time
	}{
		{PeriodAllTime, time.Time{}},
		{PeriodToday, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)},
		{PeriodYesterday, time.Date(2024, time.May, 9, 0, 0, 0, 0, time.UTC)},
		{Period7Days, time.Date(2024, time.May, 4, 0, 0, 0, 0, time.UTC)},
		{Period("fortnight"), time.Time{}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.Period), func(t *testing.T) {
			assert.Equal(t, tc.Want, tc.Period.Start(now))
		})
	}
}

func TestMinsToHoursAndMins(t *testing.T) {
	hrs, mins := MinsToHoursAndMins(135)

	assert.Equal(t, 2, hrs)
	assert.Equal(t, 15, mins)
}

func TestSecsToMinsAndSecs(t *testing.T) {
	m, s := SecsToMinsAndSecs(1500)
	assert.Equal(t, 25, m)
	assert.Equal(t, 0, s)

	m, s = SecsToMinsAndSecs(59)
	assert.Equal(t, 0, m)
	assert.Equal(t, 59, s)
}
