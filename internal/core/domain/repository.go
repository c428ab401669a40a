package domain

import (
	"context"
	"errors"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrHabitConflict = errors.New("habit version conflict")
	ErrUnauthorized  = errors.New("unauthorized access to resource")
)

type HabitRepository interface {
	// Create persists a new habit. A duplicate name for the same user yields ErrHabitNameTaken.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves an active (non-deleted) habit by its unique identifier.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// ListByUserID retrieves all active habits of a user, oldest first.
	ListByUserID(ctx context.Context, userID string) ([]*Habit, error)

	// ListActiveIDs returns the ids of every active habit. Used by the nightly streak refresh.
	ListActiveIDs(ctx context.Context) ([]string, error)

	// Update modifies an existing habit.
	// Implementations must check habit.Version and return ErrHabitConflict on mismatch.
	Update(ctx context.Context, habit *Habit) error

	// Delete soft-deletes the habit and every entry logged for it.
	Delete(ctx context.Context, id string) error

	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}
