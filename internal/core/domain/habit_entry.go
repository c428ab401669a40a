package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

var (
	ErrInvalidEntry       = errors.New("invalid habit entry data")
	ErrInvalidMood        = errors.New("invalid mood (must be happy, sad, neutral, anxious or calm)")
	ErrJournalEmpty       = errors.New("journal cannot be empty")
	ErrJournalTooLong     = errors.New("journal is too long (max 2000 chars)")
	ErrEntryInFuture      = errors.New("entry date cannot be in the future")
	ErrEntryBeforeStart   = errors.New("entry date cannot be before the habit start date")
	ErrEntryAlreadyLogged = errors.New("an entry for this day has already been logged")
)

const (
	MoodHappy   = "happy"
	MoodSad     = "sad"
	MoodNeutral = "neutral"
	MoodAnxious = "anxious"
	MoodCalm    = "calm"

	MaxJournalLen = 2000
)

// Moods lists the accepted moods in the order they are reported.
var Moods = []string{MoodHappy, MoodSad, MoodNeutral, MoodAnxious, MoodCalm}

type HabitEntry struct {
	ID      string `json:"id" db:"id"`
	HabitID string `json:"habit_id" db:"habit_id"`
	UserID  string `json:"user_id" db:"user_id"`

	EntryDate string `json:"date" db:"entry_date"`
	Success   bool   `json:"success" db:"success"`
	Mood      string `json:"mood" db:"mood"`
	Journal   string `json:"journal" db:"journal"`

	Version   int        `json:"version" db:"version"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

func NewHabitEntry(habitID, userID string, date time.Time, success bool, mood, journal string) *HabitEntry {
	now := time.Now().UTC()

	return &HabitEntry{
		HabitID:   habitID,
		UserID:    userID,
		EntryDate: streak.FormatDay(streak.Day(date)),
		Success:   success,
		Mood:      strings.ToLower(strings.TrimSpace(mood)),
		Journal:   strings.TrimSpace(journal),

		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func IsValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

func (e *HabitEntry) Validate() error {
	if strings.TrimSpace(e.HabitID) == "" {
		return fmt.Errorf("%w: habit_id is required", ErrInvalidEntry)
	}
	if strings.TrimSpace(e.UserID) == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidEntry)
	}
	if _, err := streak.ParseDay(e.EntryDate); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	if !IsValidMood(e.Mood) {
		return ErrInvalidMood
	}
	if e.Journal == "" {
		return ErrJournalEmpty
	}
	if utf8.RuneCountInString(e.Journal) > MaxJournalLen {
		return ErrJournalTooLong
	}
	return nil
}

// Day returns the normalized "YYYY-MM-DD" form of the entry date.
func (e *HabitEntry) Day() (string, error) {
	d, err := streak.ParseDay(e.EntryDate)
	if err != nil {
		return "", err
	}
	return streak.FormatDay(d), nil
}

func (e *HabitEntry) StreakEntry() streak.Entry {
	return streak.Entry{Date: e.EntryDate, Success: e.Success}
}

// StreakEntries adapts stored entries to the streak calculator input.
func StreakEntries(entries []*HabitEntry) []streak.Entry {
	out := make([]streak.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.StreakEntry())
	}
	return out
}
