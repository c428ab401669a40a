package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
)

var _ domain.HabitEntryRepository = (*SQLEntryRepository)(nil)

type SQLEntryRepository struct {
	db *sqlx.DB
}

func NewSQLEntryRepository(db *sqlx.DB) *SQLEntryRepository {
	return &SQLEntryRepository{db: db}
}

const entryColumns = `id, habit_id, user_id, entry_date, success, mood, journal,
	version, created_at, updated_at, deleted_at`

func normalizeEntry(e *domain.HabitEntry) error {
	day, err := e.Day()
	if err != nil {
		return fmt.Errorf("entry %s: %w", e.ID, err)
	}
	e.EntryDate = day
	return nil
}

func (r *SQLEntryRepository) selectEntries(ctx context.Context, query string, args ...interface{}) ([]*domain.HabitEntry, error) {
	entries := []*domain.HabitEntry{}
	if err := r.db.SelectContext(ctx, &entries, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := normalizeEntry(e); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (r *SQLEntryRepository) Create(ctx context.Context, entry *domain.HabitEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO habit_entries (
			id, habit_id, user_id,
			entry_date, success, mood, journal,
			version, created_at, updated_at
		) VALUES (
			:id, :habit_id, :user_id,
			:entry_date, :success, :mood, :journal,
			:version, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEntryAlreadyLogged
		}
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (r *SQLEntryRepository) GetByID(ctx context.Context, id string) (*domain.HabitEntry, error) {
	var entry domain.HabitEntry
	query := r.db.Rebind(`SELECT ` + entryColumns + ` FROM habit_entries WHERE id = ? AND deleted_at IS NULL`)

	if err := r.db.GetContext(ctx, &entry, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	if err := normalizeEntry(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *SQLEntryRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.HabitEntry, error) {
	return r.selectEntries(ctx, `
		SELECT `+entryColumns+` FROM habit_entries
		WHERE habit_id = ? AND deleted_at IS NULL
		ORDER BY entry_date DESC, created_at DESC`, habitID)
}

func (r *SQLEntryRepository) ListByHabitIDWithRange(ctx context.Context, habitID string, from, to string) ([]*domain.HabitEntry, error) {
	return r.selectEntries(ctx, `
		SELECT `+entryColumns+` FROM habit_entries
		WHERE habit_id = ?
		  AND entry_date >= ?
		  AND entry_date <= ?
		  AND deleted_at IS NULL
		ORDER BY entry_date DESC, created_at DESC`, habitID, from, to)
}

func (r *SQLEntryRepository) ListDates(ctx context.Context, habitID string) ([]string, error) {
	raw := []string{}
	query := r.db.Rebind(`
		SELECT DISTINCT entry_date FROM habit_entries
		WHERE habit_id = ? AND deleted_at IS NULL
		ORDER BY entry_date ASC`)

	if err := r.db.SelectContext(ctx, &raw, query, habitID); err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(raw))
	for _, d := range raw {
		e := domain.HabitEntry{EntryDate: d}
		day, err := e.Day()
		if err != nil {
			return nil, err
		}
		dates = append(dates, day)
	}
	return dates, nil
}

// ListByUserIDAndDateRange only returns entries of habits that are still active.
func (r *SQLEntryRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to string) ([]domain.HabitEntry, error) {
	entries := []domain.HabitEntry{}
	query := r.db.Rebind(`
		SELECT e.id, e.habit_id, e.user_id, e.entry_date, e.success, e.mood, e.journal,
		       e.version, e.created_at, e.updated_at, e.deleted_at
		FROM habit_entries e
		JOIN habits h ON h.id = e.habit_id
		WHERE e.user_id = ?
		  AND e.entry_date >= ?
		  AND e.entry_date <= ?
		  AND e.deleted_at IS NULL
		  AND h.deleted_at IS NULL
		ORDER BY e.entry_date ASC`)

	if err := r.db.SelectContext(ctx, &entries, query, userID, from, to); err != nil {
		return nil, err
	}
	for i := range entries {
		if err := normalizeEntry(&entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// Update applies the edit only if the stored version still matches, then bumps it.
func (r *SQLEntryRepository) Update(ctx context.Context, entry *domain.HabitEntry) error {
	now := time.Now().UTC()

	query := r.db.Rebind(`
		UPDATE habit_entries
		SET success = ?,
		    mood = ?,
		    journal = ?,
		    version = version + 1,
		    updated_at = ?
		WHERE id = ?
		  AND version = ?
		  AND deleted_at IS NULL`)

	result, err := r.db.ExecContext(ctx, query, entry.Success, entry.Mood, entry.Journal, now, entry.ID, entry.Version)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		exists, err := r.exists(ctx, entry.ID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrEntryNotFound
		}
		return domain.ErrEntryConflict
	}

	entry.Version++
	entry.UpdatedAt = now
	return nil
}

func (r *SQLEntryRepository) Delete(ctx context.Context, id string, userID string) error {
	now := time.Now().UTC()

	query := r.db.Rebind(`
		UPDATE habit_entries
		SET deleted_at = ?,
		    updated_at = ?,
		    version = version + 1
		WHERE id = ?
		  AND user_id = ?
		  AND deleted_at IS NULL`)

	result, err := r.db.ExecContext(ctx, query, now, now, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func (r *SQLEntryRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, r.db.Rebind("SELECT count(*) FROM habit_entries WHERE id = ? AND deleted_at IS NULL"), id)
	return count > 0, err
}
