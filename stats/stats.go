// Package stats aggregates the session history into productivity statistics
package stats

import (
	"slices"
	"time"

	"github.com/ayoisaiah/ecofocus/internal/models"
	"github.com/ayoisaiah/ecofocus/internal/timeutil"
)

const hoursInADay = 24

// Stats is a summary of the session history.
type Stats struct {
	TotalSessions int              `json:"total_sessions"`
	Recorded      int              `json:"recorded_sessions"`
	MinutesLogged int              `json:"minutes_logged"`
	BestStreak    int              `json:"best_streak"`
	CurrentStreak int              `json:"current_streak"`
	BusiestHour   int              `json:"busiest_hour"`
	Hourly        [hoursInADay]int `json:"hourly"`
}

// Compute summarises history. totalSessions is the lifetime session counter
// which outlives history pruning and clearing. BusiestHour is -1 when no
// work sessions are recorded.
func Compute(
	history []models.SessionRecord,
	totalSessions int,
	now time.Time,
	loc *time.Location,
) Stats {
	s := Stats{
		TotalSessions: totalSessions,
		Hourly:        HourlyDistribution(history, loc),
		BestStreak:    BestStreak(history, loc),
		CurrentStreak: CurrentStreak(history, now, loc),
		BusiestHour:   -1,
	}

	for _, rec := range history {
		if rec.Type != models.Work {
			continue
		}

		s.Recorded++
		s.MinutesLogged += rec.Duration
	}

	busiest := 0

	for hour, n := range s.Hourly {
		if n > busiest {
			busiest = n
			s.BusiestHour = hour
		}
	}

	return s
}

// HourlyDistribution counts work sessions by the local hour they completed
// in.
func HourlyDistribution(
	history []models.SessionRecord,
	loc *time.Location,
) [hoursInADay]int {
	var hours [hoursInADay]int

	for _, rec := range history {
		if rec.Type != models.Work {
			continue
		}

		hours[rec.Time().In(loc).Hour()]++
	}

	return hours
}

// activeDays returns the sorted, distinct local calendar days with at least
// one work session.
func activeDays(history []models.SessionRecord, loc *time.Location) []int64 {
	days := make([]int64, 0, len(history))

	for _, rec := range history {
		if rec.Type != models.Work {
			continue
		}

		days = append(days, timeutil.DayNumber(rec.Time().In(loc)))
	}

	slices.Sort(days)

	return slices.Compact(days)
}

// BestStreak returns the length of the longest run of consecutive calendar
// days with at least one session.
func BestStreak(history []models.SessionRecord, loc *time.Location) int {
	days := activeDays(history, loc)
	if len(days) == 0 {
		return 0
	}

	best, run := 1, 1

	for i := 1; i < len(days); i++ {
		if days[i] == days[i-1]+1 {
			run++
		} else {
			run = 1
		}

		best = max(best, run)
	}

	return best
}

// CurrentStreak returns the length of the run of consecutive active days
// ending today. A run ending yesterday still counts since today may not
// have a session yet.
func CurrentStreak(
	history []models.SessionRecord,
	now time.Time,
	loc *time.Location,
) int {
	days := activeDays(history, loc)
	if len(days) == 0 {
		return 0
	}

	today := timeutil.DayNumber(now.In(loc))

	last := len(days) - 1
	if days[last] != today && days[last] != today-1 {
		return 0
	}

	run := 1

	for i := last; i > 0 && days[i-1] == days[i]-1; i-- {
		run++
	}

	return run
}

// Since returns the records completed at or after t.
func Since(history []models.SessionRecord, t time.Time) []models.SessionRecord {
	if t.IsZero() {
		return history
	}

	filtered := make([]models.SessionRecord, 0, len(history))

	for _, rec := range history {
		if !rec.Time().Before(t) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}
