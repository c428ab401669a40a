package domain

import (
	"time"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

// Clock yields the current calendar day in the configured timezone.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Now: time.Now, Location: loc}
}

// FixedClock always reports the calendar day of t.
func FixedClock(t time.Time) Clock {
	return Clock{Now: func() time.Time { return t }, Location: t.Location()}
}

// Today returns today's date as UTC midnight.
func (c Clock) Today() time.Time {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return streak.Day(now().In(loc))
}
