package domain

import (
	"context"
	"errors"
)

var (
	ErrEntryNotFound = errors.New("habit entry not found")
	ErrEntryConflict = errors.New("habit entry version conflict")
)

// Date range arguments are inclusive calendar days in "YYYY-MM-DD" form.
type HabitEntryRepository interface {
	// Create persists a new entry.
	// A second active entry for the same habit and day yields ErrEntryAlreadyLogged.
	Create(ctx context.Context, entry *HabitEntry) error

	// Update modifies an existing entry.
	// Implementations must handle Optimistic Locking (version check) to prevent data races.
	Update(ctx context.Context, entry *HabitEntry) error

	// Delete performs a Soft Delete on the entry.
	// It requires userID to ensure the user actually owns the entry being deleted.
	Delete(ctx context.Context, id string, userID string) error

	// GetByID retrieves a single active (non-deleted) entry by its ID.
	GetByID(ctx context.Context, id string) (*HabitEntry, error)

	// ListByHabitID retrieves the complete active history of a habit, newest first.
	ListByHabitID(ctx context.Context, habitID string) ([]*HabitEntry, error)

	// ListByHabitIDWithRange retrieves the active entries of a habit between from and to, newest first.
	ListByHabitIDWithRange(ctx context.Context, habitID string, from, to string) ([]*HabitEntry, error)

	// ListDates returns the distinct days on which the habit has active entries.
	ListDates(ctx context.Context, habitID string) ([]string, error)

	// ListByUserIDAndDateRange retrieves the active entries of all of a user's habits between from and to.
	ListByUserIDAndDateRange(ctx context.Context, userID string, from, to string) ([]HabitEntry, error)
}
