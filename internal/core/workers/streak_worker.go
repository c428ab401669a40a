package workers

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

const queueSize = 100

type HabitRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type EntryRepository interface {
	ListByHabitID(ctx context.Context, habitID string) ([]*domain.HabitEntry, error)
}

type StreakJob struct {
	HabitID string
}

// StreakWorker recomputes the cached streak columns of habits in the background.
type StreakWorker struct {
	habitRepo  HabitRepository
	entryRepo  EntryRepository
	calculator streak.Calculator
	clock      domain.Clock
	log        logrus.FieldLogger
	jobs       chan StreakJob
}

func NewStreakWorker(hRepo HabitRepository, eRepo EntryRepository, calculator streak.Calculator, clock domain.Clock, log logrus.FieldLogger) *StreakWorker {
	return &StreakWorker{
		habitRepo:  hRepo,
		entryRepo:  eRepo,
		calculator: calculator,
		clock:      clock,
		log:        log,
		jobs:       make(chan StreakJob, queueSize),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		w.log.Info("Streak worker started in background")
		for {
			select {
			case job := <-w.jobs:
				if err := w.Recompute(ctx, job.HabitID); err != nil {
					w.log.WithError(err).WithField("habit_id", job.HabitID).Error("Streak recompute failed")
				}
			case <-ctx.Done():
				w.log.Info("Streak worker shutting down")
				return
			}
		}
	}()
}

// Enqueue never blocks; jobs are dropped when the queue is full.
func (w *StreakWorker) Enqueue(habitID string) {
	select {
	case w.jobs <- StreakJob{HabitID: habitID}:
	default:
		w.log.WithField("habit_id", habitID).Warn("Streak worker queue full, dropping job")
	}
}

// Recompute loads the full history of a habit and persists its streaks if they changed.
func (w *StreakWorker) Recompute(ctx context.Context, habitID string) error {
	habit, err := w.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return fmt.Errorf("fetching habit: %w", err)
	}

	entries, err := w.entryRepo.ListByHabitID(ctx, habitID)
	if err != nil {
		return fmt.Errorf("fetching entries: %w", err)
	}

	result, err := w.calculator.Compute(domain.StreakEntries(entries), w.clock.Today())
	if err != nil {
		return fmt.Errorf("computing streaks: %w", err)
	}

	if !habit.UpdateStreak(result.Current, result.Longest) {
		return nil
	}

	if err := w.habitRepo.UpdateStreaks(ctx, habitID, result.Current, result.Longest); err != nil {
		return fmt.Errorf("updating streaks: %w", err)
	}

	w.log.WithFields(logrus.Fields{
		"habit_id": habitID,
		"current":  result.Current,
		"longest":  result.Longest,
	}).Debug("Streak updated")

	return nil
}
