package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/config"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
)

var fixtureDay = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "breakfree_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db))
	return db
}

func createUser(t *testing.T, db *sqlx.DB, username string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(uuid.NewString(), username)
	require.NoError(t, err)
	user.PasswordHash = "hash"
	require.NoError(t, NewSQLUserRepository(db).Create(context.Background(), user))
	return user
}

func createHabit(t *testing.T, db *sqlx.DB, userID, name string) *domain.Habit {
	t.Helper()

	h, err := domain.NewHabit(userID, name, fixtureDay.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.NoError(t, NewSQLHabitRepository(db).Create(context.Background(), h))
	return h
}

func createEntry(t *testing.T, db *sqlx.DB, h *domain.Habit, day time.Time, success bool) *domain.HabitEntry {
	t.Helper()

	e := domain.NewHabitEntry(h.ID, h.UserID, day, success, domain.MoodCalm, "logged")
	require.NoError(t, NewSQLEntryRepository(db).Create(context.Background(), e))
	return e
}
