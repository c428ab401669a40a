// Package streak computes current and longest success streaks over the
// daily entries of a single habit.
package streak

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultLookback is the maximum number of days the current-streak scan
// walks back from today.
const DefaultLookback = 365

const dayLayout = "2006-01-02"

// ErrInvalidEntryDate wraps every date that cannot be read as a calendar day.
var ErrInvalidEntryDate = errors.New("invalid entry date")

// Entry is one logged outcome for a calendar day. Date is "YYYY-MM-DD",
// optionally followed by a time component which is ignored.
type Entry struct {
	Date    string
	Success bool
}

// Result holds the current and longest streak lengths in days.
type Result struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

// Calculator computes streaks with a configurable lookback bound.
// The zero value uses DefaultLookback.
type Calculator struct {
	Lookback int
}

// Compute is shorthand for a Calculator with the default lookback.
func Compute(entries []Entry, today time.Time) (Result, error) {
	return Calculator{}.Compute(entries, today)
}

// ParseDay converts a stored date string into a UTC midnight time.
// Anything after the first space or 'T' is treated as a time of day and dropped.
func ParseDay(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, " T"); i >= 0 {
		s = s[:i]
	}
	d, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidEntryDate, raw)
	}
	return d, nil
}

// Day truncates t to its calendar date in t's own location, returned as UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDay renders a calendar date as "YYYY-MM-DD".
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

func (c Calculator) lookback() int {
	if c.Lookback <= 0 {
		return DefaultLookback
	}
	return c.Lookback
}

// Compute returns the streaks for entries as of the calendar day of today.
func (c Calculator) Compute(entries []Entry, today time.Time) (Result, error) {
	if len(entries) == 0 {
		return Result{}, nil
	}

	days, status, err := foldStatus(entries)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Current: currentStreak(status, days[0], Day(today), c.lookback()),
		Longest: longestStreak(days, status),
	}, nil
}

// foldStatus returns the distinct days in ascending order and the status of
// each day. A day is a success only if every entry on it is a success.
func foldStatus(entries []Entry) ([]time.Time, map[time.Time]bool, error) {
	parsed := make([]time.Time, len(entries))
	distinct := make(map[time.Time]struct{}, len(entries))
	for i, e := range entries {
		d, err := ParseDay(e.Date)
		if err != nil {
			return nil, nil, err
		}
		parsed[i] = d
		distinct[d] = struct{}{}
	}

	status := make(map[time.Time]bool, len(distinct))
	for d := range distinct {
		status[d] = true
	}
	for i, e := range entries {
		if !e.Success {
			status[parsed[i]] = false
		}
	}

	days := make([]time.Time, 0, len(distinct))
	for d := range distinct {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	return days, status, nil
}

func longestStreak(days []time.Time, status map[time.Time]bool) int {
	longest, run := 0, 0
	var prev time.Time

	for i, d := range days {
		if !status[d] {
			run = 0
		} else {
			if i > 0 && prev.AddDate(0, 0, 1).Equal(d) {
				run++
			} else {
				run = 1
			}
			longest = max(longest, run)
		}
		prev = d
	}

	return longest
}

// currentStreak walks back from today. A missing entry for today is a grace
// day; a missing entry for any earlier day ends the streak, as does a failure.
func currentStreak(status map[time.Time]bool, earliest, today time.Time, lookback int) int {
	current := 0
	day := today

	for i := 0; i < lookback; i++ {
		success, logged := status[day]
		switch {
		case logged && !success:
			return current
		case logged:
			current++
		case day.Before(today):
			return current
		}

		if !day.After(earliest) {
			break
		}
		day = day.AddDate(0, 0, -1)
	}

	return current
}
