package services

import (
	"context"
	"fmt"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
)

type HabitService struct {
	repo  domain.HabitRepository
	clock domain.Clock
}

func NewHabitService(repo domain.HabitRepository, clock domain.Clock) *HabitService {
	return &HabitService{
		repo:  repo,
		clock: clock,
	}
}

type CreateHabitInput struct {
	UserID string
	Name   string
}

type UpdateHabitInput struct {
	ID      string
	UserID  string
	Name    string
	Version int
}

func (s *HabitService) ensureUniqueName(ctx context.Context, userID, name, exceptID string) error {
	habits, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, h := range habits {
		if h.ID != exceptID && domain.SameName(h.Name, name) {
			return domain.ErrHabitNameTaken
		}
	}
	return nil
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.UserID, input.Name, s.clock.Today())
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueName(ctx, habit.UserID, habit.Name, ""); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Get hides habits owned by other users behind ErrHabitNotFound.
func (s *HabitService) Get(ctx context.Context, id string, userID string) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if habit.UserID != userID {
		return nil, domain.ErrHabitNotFound
	}

	return habit, nil
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.Get(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Version > 0 && habit.Version != input.Version {
		return nil, fmt.Errorf("%w: client v%d vs server v%d", domain.ErrHabitConflict, input.Version, habit.Version)
	}

	if err := habit.Rename(input.Name); err != nil {
		return nil, err
	}

	if err := s.ensureUniqueName(ctx, habit.UserID, habit.Name, habit.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, id string, userID string) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
