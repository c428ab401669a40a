package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/services"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

const (
	uid = "user-123"
	hid = "habit-abc"
)

type entryFixture struct {
	entryRepo *MockHabitEntryRepo
	habitRepo *MockHabitRepo
	worker    *MockEnqueuer
	svc       *services.EntryService
}

func newEntryFixture() *entryFixture {
	f := &entryFixture{
		entryRepo: new(MockHabitEntryRepo),
		habitRepo: new(MockHabitRepo),
		worker:    new(MockEnqueuer),
	}
	f.svc = services.NewEntryService(f.entryRepo, f.habitRepo, f.worker, domain.FixedClock(testToday))
	return f
}

func ownedHabit() *domain.Habit {
	return &domain.Habit{ID: hid, UserID: uid, Name: "No Smoking", StartDate: "2025-01-01", Version: 1}
}

func TestEntryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Defaults to today, creates entry AND enqueues worker", func(t *testing.T) {
		f := newEntryFixture()

		f.habitRepo.On("GetByID", ctx, hid).Return(ownedHabit(), nil)
		f.entryRepo.On("ListByHabitIDWithRange", ctx, hid, "2025-01-10", "2025-01-10").Return([]*domain.HabitEntry{}, nil)
		f.entryRepo.On("Create", ctx, mock.MatchedBy(func(e *domain.HabitEntry) bool {
			return e.HabitID == hid && e.EntryDate == "2025-01-10" && e.Success && e.Mood == domain.MoodCalm
		})).Return(nil)
		f.worker.On("Enqueue", hid).Return()

		created, err := f.svc.Create(ctx, services.CreateEntryInput{
			HabitID: hid,
			UserID:  uid,
			Success: true,
			Mood:    " Calm ",
			Journal: "Held on all day.",
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-01-10", created.EntryDate)
		assert.Equal(t, 1, created.Version)

		f.entryRepo.AssertExpectations(t)
		f.worker.AssertExpectations(t)
	})

	t.Run("Success: Explicit past date", func(t *testing.T) {
		f := newEntryFixture()

		f.habitRepo.On("GetByID", ctx, hid).Return(ownedHabit(), nil)
		f.entryRepo.On("ListByHabitIDWithRange", ctx, hid, "2025-01-05", "2025-01-05").Return([]*domain.HabitEntry{}, nil)
		f.entryRepo.On("Create", ctx, mock.Anything).Return(nil)
		f.worker.On("Enqueue", hid).Return()

		created, err := f.svc.Create(ctx, services.CreateEntryInput{
			HabitID: hid, UserID: uid, Date: "2025-01-05", Success: false, Mood: "sad", Journal: "Slipped.",
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-01-05", created.EntryDate)
		assert.False(t, created.Success)
	})

	validationTests := []struct {
		name    string
		input   services.CreateEntryInput
		wantErr error
	}{
		{
			name:    "Future date",
			input:   services.CreateEntryInput{HabitID: hid, UserID: uid, Date: "2025-01-11", Mood: "happy", Journal: "Tomorrow"},
			wantErr: domain.ErrEntryInFuture,
		},
		{
			name:    "Unparseable date",
			input:   services.CreateEntryInput{HabitID: hid, UserID: uid, Date: "05/01/2025", Mood: "happy", Journal: "x"},
			wantErr: streak.ErrInvalidEntryDate,
		},
		{
			name:    "Unknown mood",
			input:   services.CreateEntryInput{HabitID: hid, UserID: uid, Mood: "ecstatic", Journal: "x"},
			wantErr: domain.ErrInvalidMood,
		},
		{
			name:    "Empty journal",
			input:   services.CreateEntryInput{HabitID: hid, UserID: uid, Mood: "happy", Journal: "   "},
			wantErr: domain.ErrJournalEmpty,
		},
	}

	for _, tt := range validationTests {
		t.Run("Fail: "+tt.name, func(t *testing.T) {
			f := newEntryFixture()

			created, err := f.svc.Create(ctx, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, created)
			f.habitRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			f.entryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("Fail: Date before the habit started", func(t *testing.T) {
		f := newEntryFixture()
		f.habitRepo.On("GetByID", ctx, hid).Return(ownedHabit(), nil)

		_, err := f.svc.Create(ctx, services.CreateEntryInput{
			HabitID: hid, UserID: uid, Date: "2024-12-31", Mood: "happy", Journal: "Before",
		})

		assert.ErrorIs(t, err, domain.ErrEntryBeforeStart)
		f.entryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Day already logged", func(t *testing.T) {
		f := newEntryFixture()
		f.habitRepo.On("GetByID", ctx, hid).Return(ownedHabit(), nil)
		f.entryRepo.On("ListByHabitIDWithRange", ctx, hid, "2025-01-10", "2025-01-10").
			Return([]*domain.HabitEntry{{ID: "e1", HabitID: hid, EntryDate: "2025-01-10"}}, nil)

		_, err := f.svc.Create(ctx, services.CreateEntryInput{HabitID: hid, UserID: uid, Mood: "happy", Journal: "Again"})

		assert.ErrorIs(t, err, domain.ErrEntryAlreadyLogged)
		f.entryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.worker.AssertNotCalled(t, "Enqueue", mock.Anything)
	})

	t.Run("Security: Should fail if Habit belongs to another user (IDOR)", func(t *testing.T) {
		f := newEntryFixture()
		f.habitRepo.On("GetByID", ctx, hid).Return(&domain.Habit{ID: hid, UserID: "victim"}, nil)

		created, err := f.svc.Create(ctx, services.CreateEntryInput{HabitID: hid, UserID: "attacker", Mood: "happy", Journal: "x"})

		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
		assert.Nil(t, created)
		f.entryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Should fail if Habit does not exist", func(t *testing.T) {
		f := newEntryFixture()
		f.habitRepo.On("GetByID", ctx, hid).Return(nil, domain.ErrHabitNotFound)

		_, err := f.svc.Create(ctx, services.CreateEntryInput{HabitID: hid, UserID: uid, Mood: "happy", Journal: "x"})

		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}

func TestEntryService_Update(t *testing.T) {
	ctx := context.Background()
	entryID := "entry-xyz"

	existing := func() *domain.HabitEntry {
		return &domain.HabitEntry{
			ID: entryID, HabitID: hid, UserID: uid, EntryDate: "2025-01-09",
			Success: true, Mood: "happy", Journal: "Fine", Version: 3,
		}
	}

	t.Run("Success: Should update valid entry and enqueue", func(t *testing.T) {
		f := newEntryFixture()
		f.entryRepo.On("GetByID", ctx, entryID).Return(existing(), nil)
		f.entryRepo.On("Update", ctx, mock.MatchedBy(func(e *domain.HabitEntry) bool {
			return !e.Success && e.Mood == "anxious" && e.Journal == "Rough evening" && e.Version == 3
		})).Return(nil)
		f.worker.On("Enqueue", hid).Return()

		updated, err := f.svc.Update(ctx, services.UpdateEntryInput{
			ID: entryID, UserID: uid, Success: false, Mood: "Anxious", Journal: " Rough evening ", Version: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-01-09", updated.EntryDate, "the date of an entry is immutable")
		f.entryRepo.AssertExpectations(t)
		f.worker.AssertExpectations(t)
	})

	t.Run("Optimistic Locking: Stale version is rejected", func(t *testing.T) {
		f := newEntryFixture()
		f.entryRepo.On("GetByID", ctx, entryID).Return(existing(), nil)

		_, err := f.svc.Update(ctx, services.UpdateEntryInput{ID: entryID, UserID: uid, Mood: "happy", Journal: "x", Version: 2})

		assert.ErrorIs(t, err, domain.ErrEntryConflict)
		f.entryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Security: Cannot update other user's entry", func(t *testing.T) {
		f := newEntryFixture()
		f.entryRepo.On("GetByID", ctx, entryID).Return(existing(), nil)

		_, err := f.svc.Update(ctx, services.UpdateEntryInput{ID: entryID, UserID: "attacker", Mood: "happy", Journal: "x"})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Fail: Invalid mood", func(t *testing.T) {
		f := newEntryFixture()
		f.entryRepo.On("GetByID", ctx, entryID).Return(existing(), nil)

		_, err := f.svc.Update(ctx, services.UpdateEntryInput{ID: entryID, UserID: uid, Mood: "furious", Journal: "x"})

		assert.ErrorIs(t, err, domain.ErrInvalidMood)
		f.worker.AssertNotCalled(t, "Enqueue", mock.Anything)
	})
}

func TestEntryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Soft delete triggers recompute", func(t *testing.T) {
		f := newEntryFixture()
		f.entryRepo.On("GetByID", ctx, "e1").Return(&domain.HabitEntry{ID: "e1", HabitID: hid, UserID: uid}, nil)
		f.entryRepo.On("Delete", ctx, "e1", uid).Return(nil)
		f.worker.On("Enqueue", hid).Return()

		require.NoError(t, f.svc.Delete(ctx, "e1", uid))

		f.entryRepo.AssertExpectations(t)
		f.worker.AssertExpectations(t)
	})

	t.Run("Fail: Entry not found", func(t *testing.T) {
		f := newEntryFixture()
		f.entryRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrEntryNotFound)

		err := f.svc.Delete(ctx, "ghost", uid)

		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
		f.entryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEntryService_GetAndList(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByID hides other users' entries", func(t *testing.T) {
		f := newEntryFixture()
		f.entryRepo.On("GetByID", ctx, "e1").Return(&domain.HabitEntry{ID: "e1", UserID: "other"}, nil)

		_, err := f.svc.GetByID(ctx, "e1", uid)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("ListByHabitID checks habit ownership", func(t *testing.T) {
		f := newEntryFixture()
		entries := []*domain.HabitEntry{{ID: "e2", EntryDate: "2025-01-09"}, {ID: "e1", EntryDate: "2025-01-08"}}
		f.habitRepo.On("GetByID", ctx, hid).Return(ownedHabit(), nil)
		f.entryRepo.On("ListByHabitID", ctx, hid).Return(entries, nil)

		got, err := f.svc.ListByHabitID(ctx, hid, uid)

		require.NoError(t, err)
		assert.Equal(t, entries, got)

		_, err = f.svc.ListByHabitID(ctx, hid, "attacker")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}

func TestEntryService_History(t *testing.T) {
	ctx := context.Background()
	dates := []string{"2024-12-31", "2025-02-01", "2026-01-03", "2025-01-15"}

	t.Run("Unfiltered history lists every entry and the filter options", func(t *testing.T) {
		f := newEntryFixture()
		all := []*domain.HabitEntry{{ID: "e1"}, {ID: "e2"}}
		f.habitRepo.On("GetByID", ctx, hid).Return(ownedHabit(), nil)
		f.entryRepo.On("ListByHabitID", ctx, hid).Return(all, nil)
		f.entryRepo.On("ListDates", ctx, hid).Return(dates, nil)

		history, err := f.svc.History(ctx, services.HistoryInput{HabitID: hid, UserID: uid})

		require.NoError(t, err)
		assert.Equal(t, all, history.Entries)
		assert.Equal(t, []int{2026, 2025}, history.Years, "years before 2025 are hidden, newest first")
		assert.Equal(t, []int{1, 2, 12}, history.Months)
		assert.Equal(t, domain.MonthNames, history.MonthNames)
		assert.Zero(t, history.Year)
	})

	t.Run("Month filter narrows to the calendar month", func(t *testing.T) {
		f := newEntryFixture()
		f.habitRepo.On("GetByID", ctx, hid).Return(ownedHabit(), nil)
		f.entryRepo.On("ListByHabitIDWithRange", ctx, hid, "2024-02-01", "2024-02-29").Return([]*domain.HabitEntry{}, nil)
		f.entryRepo.On("ListDates", ctx, hid).Return(dates, nil)

		history, err := f.svc.History(ctx, services.HistoryInput{HabitID: hid, UserID: uid, Year: 2024, Month: 2})

		require.NoError(t, err)
		assert.Equal(t, 2024, history.Year)
		assert.Equal(t, 2, history.Month)
		f.entryRepo.AssertExpectations(t)
	})

	for _, in := range []services.HistoryInput{
		{HabitID: hid, UserID: uid, Year: 2025, Month: 13},
		{HabitID: hid, UserID: uid, Year: -1, Month: 3},
	} {
		t.Run("Fail: Invalid filter", func(t *testing.T) {
			f := newEntryFixture()

			_, err := f.svc.History(ctx, in)

			assert.ErrorIs(t, err, services.ErrInvalidHistoryFilter)
		})
	}

	for _, in := range []services.HistoryInput{
		{HabitID: hid, UserID: uid, Year: 2025},
		{HabitID: hid, UserID: uid, Month: 3},
	} {
		t.Run("Half-supplied filter lists everything", func(t *testing.T) {
			f := newEntryFixture()
			all := []*domain.HabitEntry{{ID: "e1"}}
			f.habitRepo.On("GetByID", ctx, hid).Return(ownedHabit(), nil)
			f.entryRepo.On("ListByHabitID", ctx, hid).Return(all, nil)
			f.entryRepo.On("ListDates", ctx, hid).Return(dates, nil)

			history, err := f.svc.History(ctx, in)

			require.NoError(t, err)
			assert.Equal(t, all, history.Entries)
			assert.Zero(t, history.Year)
			assert.Zero(t, history.Month)
			f.entryRepo.AssertNotCalled(t, "ListByHabitIDWithRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("Another user's habit is not found", func(t *testing.T) {
		f := newEntryFixture()
		f.habitRepo.On("GetByID", ctx, hid).Return(&domain.Habit{ID: hid, UserID: "victim"}, nil)

		_, err := f.svc.History(ctx, services.HistoryInput{HabitID: hid, UserID: uid})

		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
		f.entryRepo.AssertNotCalled(t, "ListByHabitID", mock.Anything, mock.Anything)
	})
}
