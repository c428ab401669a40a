package services

import (
	"context"
	"fmt"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

type DashboardService struct {
	habitRepo  domain.HabitRepository
	entryRepo  domain.HabitEntryRepository
	calculator streak.Calculator
	clock      domain.Clock
}

func NewDashboardService(habitRepo domain.HabitRepository, entryRepo domain.HabitEntryRepository, calculator streak.Calculator, clock domain.Clock) *DashboardService {
	return &DashboardService{
		habitRepo:  habitRepo,
		entryRepo:  entryRepo,
		calculator: calculator,
		clock:      clock,
	}
}

// Build assembles the dashboard of a user. Streaks are computed live against
// today rather than read from the cached habit columns.
func (s *DashboardService) Build(ctx context.Context, userID string) (*domain.Dashboard, error) {
	today := s.clock.Today()

	habits, err := s.habitRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		Today:  streak.FormatDay(today),
		Habits: make([]domain.HabitOverview, 0, len(habits)),
	}

	for _, h := range habits {
		entries, err := s.entryRepo.ListByHabitID(ctx, h.ID)
		if err != nil {
			return nil, err
		}

		result, err := s.calculator.Compute(domain.StreakEntries(entries), today)
		if err != nil {
			return nil, fmt.Errorf("dashboard: habit %s: %w", h.ID, err)
		}

		overview := domain.HabitOverview{
			Habit:         h,
			Entries:       entries,
			CurrentStreak: result.Current,
			LongestStreak: result.Longest,
			MoodCounts:    moodCounts(entries),
		}
		if len(entries) > 0 {
			overview.RecentEntry = entries[0]
		}

		dashboard.Habits = append(dashboard.Habits, overview)
	}

	return dashboard, nil
}

func moodCounts(entries []*domain.HabitEntry) map[string]int {
	counts := make(map[string]int, len(domain.Moods))
	for _, m := range domain.Moods {
		counts[m] = 0
	}
	for _, e := range entries {
		if _, ok := counts[e.Mood]; ok {
			counts[e.Mood]++
		}
	}
	return counts
}
