package services

import (
	"context"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

type StatsService struct {
	habitRepo domain.HabitRepository
	entryRepo domain.HabitEntryRepository
}

func NewStatsService(habitRepo domain.HabitRepository, entryRepo domain.HabitEntryRepository) *StatsService {
	return &StatsService{
		habitRepo: habitRepo,
		entryRepo: entryRepo,
	}
}

func (s *StatsService) GetPeriodStats(ctx context.Context, input domain.StatsInput) (*domain.PeriodStats, error) {
	startDate := streak.Day(input.StartDate)
	endDate := streak.Day(input.EndDate)
	from, to := streak.FormatDay(startDate), streak.FormatDay(endDate)

	habits, err := s.habitRepo.ListByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByUserIDAndDateRange(ctx, input.UserID, from, to)
	if err != nil {
		return nil, err
	}

	// habit id -> day -> success; a failure on a day wins over a success.
	outcomes := make(map[string]map[string]bool)
	for _, e := range entries {
		day, err := e.Day()
		if err != nil {
			return nil, err
		}
		if _, exists := outcomes[e.HabitID]; !exists {
			outcomes[e.HabitID] = make(map[string]bool)
		}
		prev, seen := outcomes[e.HabitID][day]
		outcomes[e.HabitID][day] = e.Success && (!seen || prev)
	}

	stats := &domain.PeriodStats{
		StartDate:   from,
		EndDate:     to,
		TotalHabits: len(habits),
		HabitStats:  make([]domain.HabitStat, 0, len(habits)),
	}

	totalDaysPossible := 0
	totalDaysSucceeded := 0

	for _, h := range habits {
		hStat := domain.HabitStat{
			HabitID:       h.ID,
			HabitName:     h.Name,
			DailyProgress: make([]int, 0),
		}

		daysInPeriod := 0

		for currentDate := startDate; !currentDate.After(endDate); currentDate = currentDate.AddDate(0, 0, 1) {
			success, logged := outcomes[h.ID][streak.FormatDay(currentDate)]

			switch {
			case !logged:
				hStat.DailyProgress = append(hStat.DailyProgress, domain.DayNotLogged)
			case success:
				hStat.DaysLogged++
				hStat.DaysSucceeded++
				hStat.DailyProgress = append(hStat.DailyProgress, domain.DaySuccess)
			default:
				hStat.DaysLogged++
				hStat.DailyProgress = append(hStat.DailyProgress, domain.DayFailure)
			}

			daysInPeriod++
		}

		totalDaysPossible += daysInPeriod
		totalDaysSucceeded += hStat.DaysSucceeded

		if daysInPeriod > 0 {
			hStat.CompletionRate = float64(hStat.DaysSucceeded) / float64(daysInPeriod) * 100
		}

		stats.HabitStats = append(stats.HabitStats, hStat)
	}

	if totalDaysPossible > 0 {
		stats.OverallRate = float64(totalDaysSucceeded) / float64(totalDaysPossible) * 100
	}

	return stats, nil
}
