// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"math"
	"time"
)

const minutesInAnHour = 60

const secondsInADay = 24 * 60 * 60

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
)

// Range maps a period to the day offset of its first day.
var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
}

// Start returns the first instant of the period relative to now. The zero
// time is returned for all-time and unknown periods.
func (p Period) Start(now time.Time) time.Time {
	offset, ok := Range[p]
	if !ok || p == PeriodAllTime {
		return time.Time{}
	}

	return RoundToStart(now.AddDate(0, 0, offset))
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = val / minutesInAnHour
	mins = val % minutesInAnHour

	return
}

// SecsToMinsAndSecs splits a countdown in seconds into whole minutes and the
// leftover seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	mins = val / 60
	secs = val % 60

	return
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// DayNumber returns the index of the calendar day of t in its location.
// Consecutive calendar days have consecutive numbers regardless of DST.
func DayNumber(t time.Time) int64 {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return d.Unix() / secondsInADay
}
