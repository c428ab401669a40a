package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

var ErrInvalidHistoryFilter = errors.New("invalid history filter (year must be positive, month 1-12)")

// StreakEnqueuer schedules an asynchronous streak recomputation for a habit.
type StreakEnqueuer interface {
	Enqueue(habitID string)
}

type EntryService struct {
	repo      domain.HabitEntryRepository
	habitRepo domain.HabitRepository
	worker    StreakEnqueuer
	clock     domain.Clock
}

func NewEntryService(repo domain.HabitEntryRepository, habitRepo domain.HabitRepository, worker StreakEnqueuer, clock domain.Clock) *EntryService {
	return &EntryService{
		repo:      repo,
		habitRepo: habitRepo,
		worker:    worker,
		clock:     clock,
	}
}

type CreateEntryInput struct {
	HabitID string
	UserID  string
	// Date is "YYYY-MM-DD"; empty means today.
	Date    string
	Success bool
	Mood    string
	Journal string
}

type UpdateEntryInput struct {
	ID      string
	UserID  string
	Success bool
	Mood    string
	Journal string
	Version int
}

type HistoryInput struct {
	HabitID string
	UserID  string
	Year    int
	Month   int
}

// ownedHabit reports another user's habit as domain.ErrHabitNotFound.
func (s *EntryService) ownedHabit(ctx context.Context, habitID, userID string) (*domain.Habit, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrHabitNotFound
	}
	return habit, nil
}

func (s *EntryService) Create(ctx context.Context, input CreateEntryInput) (*domain.HabitEntry, error) {
	today := s.clock.Today()

	day := today
	if strings.TrimSpace(input.Date) != "" {
		parsed, err := streak.ParseDay(input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidEntry, err)
		}
		day = parsed
	}

	entry := domain.NewHabitEntry(input.HabitID, input.UserID, day, input.Success, input.Mood, input.Journal)
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if day.After(today) {
		return nil, domain.ErrEntryInFuture
	}

	habit, err := s.ownedHabit(ctx, entry.HabitID, entry.UserID)
	if err != nil {
		return nil, err
	}

	if start, err := streak.ParseDay(habit.StartDate); err == nil && day.Before(start) {
		return nil, domain.ErrEntryBeforeStart
	}

	existing, err := s.repo.ListByHabitIDWithRange(ctx, habit.ID, entry.EntryDate, entry.EntryDate)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, domain.ErrEntryAlreadyLogged
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.worker.Enqueue(entry.HabitID)

	return entry, nil
}

func (s *EntryService) Update(ctx context.Context, input UpdateEntryInput) (*domain.HabitEntry, error) {
	existing, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Version > 0 && existing.Version != input.Version {
		return nil, domain.ErrEntryConflict
	}

	existing.Success = input.Success
	existing.Mood = strings.ToLower(strings.TrimSpace(input.Mood))
	existing.Journal = strings.TrimSpace(input.Journal)

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.worker.Enqueue(existing.HabitID)

	return existing, nil
}

func (s *EntryService) GetByID(ctx context.Context, id string, userID string) (*domain.HabitEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return entry, nil
}

func (s *EntryService) ListByHabitID(ctx context.Context, habitID string, userID string) ([]*domain.HabitEntry, error) {
	if _, err := s.ownedHabit(ctx, habitID, userID); err != nil {
		return nil, err
	}

	return s.repo.ListByHabitID(ctx, habitID)
}

func (s *EntryService) Delete(ctx context.Context, id string, userID string) error {
	entry, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.worker.Enqueue(entry.HabitID)

	return nil
}

// History lists a habit's entries, optionally narrowed to one month, along
// with the years and months that have entries.
func (s *EntryService) History(ctx context.Context, input HistoryInput) (*domain.HabitHistory, error) {
	// A half-supplied filter is ignored.
	filtered := input.Year != 0 && input.Month != 0
	if filtered && (input.Year < 0 || input.Month < 1 || input.Month > 12) {
		return nil, ErrInvalidHistoryFilter
	}

	habit, err := s.ownedHabit(ctx, input.HabitID, input.UserID)
	if err != nil {
		return nil, err
	}

	var entries []*domain.HabitEntry
	if filtered {
		first := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		entries, err = s.repo.ListByHabitIDWithRange(ctx, habit.ID, streak.FormatDay(first), streak.FormatDay(last))
	} else {
		entries, err = s.repo.ListByHabitID(ctx, habit.ID)
	}
	if err != nil {
		return nil, err
	}

	dates, err := s.repo.ListDates(ctx, habit.ID)
	if err != nil {
		return nil, err
	}

	years, months, err := yearsAndMonths(dates)
	if err != nil {
		return nil, err
	}

	history := &domain.HabitHistory{
		Habit:      habit,
		Entries:    entries,
		Years:      years,
		Months:     months,
		MonthNames: domain.MonthNames,
	}
	if filtered {
		history.Year = input.Year
		history.Month = input.Month
	}

	return history, nil
}

// yearsAndMonths returns distinct years (newest first, placeholder years
// dropped) and distinct months (January first) across all dates.
func yearsAndMonths(dates []string) ([]int, []int, error) {
	yearSet := make(map[int]struct{})
	monthSet := make(map[int]struct{})

	for _, raw := range dates {
		d, err := streak.ParseDay(raw)
		if err != nil {
			return nil, nil, err
		}
		if d.Year() >= domain.MinHistoryYear {
			yearSet[d.Year()] = struct{}{}
		}
		monthSet[int(d.Month())] = struct{}{}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	months := make([]int, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Ints(months)

	return years, months, nil
}
