package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
)

type MockHabitEntryRepo struct {
	mock.Mock
}

func (m *MockHabitEntryRepo) Create(ctx context.Context, entry *domain.HabitEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHabitEntryRepo) Update(ctx context.Context, entry *domain.HabitEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHabitEntryRepo) Delete(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockHabitEntryRepo) GetByID(ctx context.Context, id string) (*domain.HabitEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HabitEntry), args.Error(1)
}

func (m *MockHabitEntryRepo) ListByHabitID(ctx context.Context, habitID string) ([]*domain.HabitEntry, error) {
	args := m.Called(ctx, habitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HabitEntry), args.Error(1)
}

func (m *MockHabitEntryRepo) ListByHabitIDWithRange(ctx context.Context, habitID string, from, to string) ([]*domain.HabitEntry, error) {
	args := m.Called(ctx, habitID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HabitEntry), args.Error(1)
}

func (m *MockHabitEntryRepo) ListDates(ctx context.Context, habitID string) ([]string, error) {
	args := m.Called(ctx, habitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHabitEntryRepo) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to string) ([]domain.HabitEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HabitEntry), args.Error(1)
}

type MockHabitRepo struct {
	mock.Mock
}

func (m *MockHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockHabitRepo) ListByUserID(ctx context.Context, u string) ([]*domain.Habit, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) ListActiveIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockHabitRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockHabitRepo) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	return m.Called(ctx, id, current, longest).Error(0)
}

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) Enqueue(habitID string) {
	m.Called(habitID)
}
