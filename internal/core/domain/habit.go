package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

var (
	ErrHabitNameEmpty     = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong   = errors.New("habit name is too long (max 50 chars)")
	ErrHabitNameTaken     = errors.New("a habit with this name already exists")
	ErrHabitInvalidUserID = errors.New("invalid user id")
)

const MaxHabitNameLen = 50

type Habit struct {
	ID            string     `json:"id" db:"id"`
	UserID        string     `json:"user_id" db:"user_id"`
	Name          string     `json:"name" db:"name"`
	StartDate     string     `json:"start_date" db:"start_date"`
	CurrentStreak int        `json:"current_streak" db:"current_streak"`
	LongestStreak int        `json:"longest_streak" db:"longest_streak"`
	Version       int        `json:"version" db:"version"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrHabitNameEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxHabitNameLen {
		return "", ErrHabitNameTooLong
	}
	return trimmed, nil
}

// NewHabit creates a habit starting on the calendar day of today.
func NewHabit(userID, name string, today time.Time) (*Habit, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrHabitInvalidUserID
	}

	cleanName, err := validateName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Habit{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      cleanName,
		StartDate: streak.FormatDay(streak.Day(today)),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (h *Habit) Rename(name string) error {
	cleanName, err := validateName(name)
	if err != nil {
		return err
	}

	h.Name = cleanName
	h.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateStreak reports whether the cached streak values changed.
func (h *Habit) UpdateStreak(current, longest int) bool {
	if h.CurrentStreak == current && h.LongestStreak == longest {
		return false
	}
	h.CurrentStreak = current
	h.LongestStreak = longest
	return true
}

// SameName compares habit names the way uniqueness is enforced: trimmed and case-insensitive.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
