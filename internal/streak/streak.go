// Package streak computes consecutive-day workout streaks for the calendar
// view. The computation only sees the dates the caller fetched (one month in
// practice), so a run crossing into the previous month restarts at 1 on the
// first visible day. That matches the calendar UI and is a documented
// limitation, not something to fix here.
package streak

import "time"

const dateLayout = "2006-01-02"

// Lengths maps each workout date to the length of the consecutive-day run
// ending on that date. Input dates may arrive in any order and contain
// duplicates (several workouts on one day count once); keys are YYYY-MM-DD.
// Empty input yields an empty map.
func Lengths(dates []time.Time) map[string]int {
	out := make(map[string]int, len(dates))
	if len(dates) == 0 {
		return out
	}

	days := normalize(dates)
	var prev time.Time
	for i, d := range days {
		if i > 0 && d.Sub(prev) == 24*time.Hour {
			out[d.Format(dateLayout)] = out[prev.Format(dateLayout)] + 1
		} else {
			out[d.Format(dateLayout)] = 1
		}
		prev = d
	}
	return out
}

// normalize truncates to midnight UTC, sorts ascending and drops duplicates.
// The subsequent scan relies on strictly increasing whole days so that the
// 24h difference test is exact.
func normalize(dates []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		key := day.Format(dateLayout)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}
	// insertion sort; the window is at most one month of dates
	for i := 1; i < len(days); i++ {
		for j := i; j > 0 && days[j].Before(days[j-1]); j-- {
			days[j], days[j-1] = days[j-1], days[j]
		}
	}
	return days
}
