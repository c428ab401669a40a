package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

var _ domain.HabitRepository = (*SQLHabitRepository)(nil)

type SQLHabitRepository struct {
	db *sqlx.DB
}

func NewSQLHabitRepository(db *sqlx.DB) *SQLHabitRepository {
	return &SQLHabitRepository{db: db}
}

const habitColumns = `id, user_id, name, start_date, current_streak, longest_streak,
	version, created_at, updated_at, deleted_at`

// normalizeHabit strips the time part some drivers add to DATE columns.
func normalizeHabit(h *domain.Habit) error {
	d, err := streak.ParseDay(h.StartDate)
	if err != nil {
		return fmt.Errorf("habit %s: %w", h.ID, err)
	}
	h.StartDate = streak.FormatDay(d)
	return nil
}

func (r *SQLHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
		INSERT INTO habits (
			id, user_id, name, start_date, current_streak, longest_streak,
			version, created_at, updated_at
		) VALUES (
			:id, :user_id, :name, :start_date, :current_streak, :longest_streak,
			1, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, h); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrHabitNameTaken
		}
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	h.Version = 1
	return nil
}

func (r *SQLHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	query := r.db.Rebind(`SELECT ` + habitColumns + ` FROM habits WHERE id = ? AND deleted_at IS NULL`)

	var h domain.Habit
	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	if err := normalizeHabit(&h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *SQLHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	query := r.db.Rebind(`
		SELECT ` + habitColumns + ` FROM habits
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY created_at ASC, id ASC`)

	habits := []*domain.Habit{}
	if err := r.db.SelectContext(ctx, &habits, query, userID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	for _, h := range habits {
		if err := normalizeHabit(h); err != nil {
			return nil, err
		}
	}
	return habits, nil
}

func (r *SQLHabitRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM habits WHERE deleted_at IS NULL ORDER BY created_at ASC`); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return ids, nil
}

// Update renames the habit if its version still matches and bumps the version.
func (r *SQLHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	now := time.Now().UTC()

	query := r.db.Rebind(`
		UPDATE habits SET
			name = ?, updated_at = ?, version = version + 1
		WHERE id = ? AND version = ? AND deleted_at IS NULL`)

	res, err := r.db.ExecContext(ctx, query, h.Name, now, h.ID, h.Version)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrHabitNameTaken
		}
		return fmt.Errorf("update query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		exists, err := r.exists(ctx, h.ID)
		if err != nil {
			return fmt.Errorf("existence check failed: %w", err)
		}
		if !exists {
			return domain.ErrHabitNotFound
		}
		return domain.ErrHabitConflict
	}

	h.Version++
	h.UpdatedAt = now
	return nil
}

// Delete soft-deletes the habit together with all of its entries.
func (r *SQLHabitRepository) Delete(ctx context.Context, id string) error {
	now := time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, tx.Rebind(`
		UPDATE habits
		SET deleted_at = ?, updated_at = ?, version = version + 1
		WHERE id = ? AND deleted_at IS NULL`), now, now, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(`
		UPDATE habit_entries
		SET deleted_at = ?, updated_at = ?, version = version + 1
		WHERE habit_id = ? AND deleted_at IS NULL`), now, now, id); err != nil {
		return fmt.Errorf("delete entries query failed: %w", err)
	}

	return tx.Commit()
}

// UpdateStreaks stores recomputed streaks without touching the version.
func (r *SQLHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	query := r.db.Rebind(`
		UPDATE habits SET current_streak = ?, longest_streak = ?
		WHERE id = ? AND deleted_at IS NULL`)

	res, err := r.db.ExecContext(ctx, query, current, longest, id)
	if err != nil {
		return fmt.Errorf("update streaks failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func (r *SQLHabitRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, r.db.Rebind(`SELECT count(*) FROM habits WHERE id = ? AND deleted_at IS NULL`), id)
	return count > 0, err
}
