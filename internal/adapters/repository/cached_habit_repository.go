package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const habitListTTL = 30 * time.Minute

// CachedHabitRepository keeps each user's habit list in Redis. Redis
// failures are logged and the call falls through to the wrapped repository.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
	log   logrus.FieldLogger
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client, log logrus.FieldLogger) *CachedHabitRepository {
	return &CachedHabitRepository{
		next:  next,
		cache: cache,
		log:   log.WithField("component", "habit_cache"),
	}
}

func habitListKey(userID string) string {
	return "habits:" + userID
}

func (r *CachedHabitRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, habitListKey(userID)).Err(); err != nil {
		r.log.WithError(err).WithField("user_id", userID).Warn("Failed to invalidate habit list")
	}
}

// invalidateOwner looks up the owner of a habit so its cached list can be dropped.
func (r *CachedHabitRepository) invalidateOwner(ctx context.Context, habitID string) func() {
	habit, err := r.next.GetByID(ctx, habitID)
	if err != nil || habit == nil {
		return func() {}
	}
	return func() { r.invalidate(ctx, habit.UserID) }
}

func (r *CachedHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	key := habitListKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	switch {
	case err == nil:
		var habits []*domain.Habit
		if err := json.Unmarshal([]byte(val), &habits); err == nil {
			return habits, nil
		}
		r.log.WithField("user_id", userID).Warn("Corrupted habit list in cache, cleaning up key")
		if delErr := r.cache.Del(ctx, key).Err(); delErr != nil {
			r.log.WithError(delErr).WithField("key", key).Warn("Redis delete error")
		}
	case !errors.Is(err, redis.Nil):
		r.log.WithError(err).Warn("Redis read error")
	}

	habits, err := r.next.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(habits); err == nil {
		if setErr := r.cache.Set(ctx, key, data, habitListTTL).Err(); setErr != nil {
			r.log.WithError(setErr).Warn("Redis set error")
		}
	}

	return habits, nil
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedHabitRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	return r.next.ListActiveIDs(ctx)
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Create(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx, habit.UserID)
	return nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Update(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx, habit.UserID)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, id string) error {
	defer r.invalidateOwner(ctx, id)()
	return r.next.Delete(ctx, id)
}

func (r *CachedHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	defer r.invalidateOwner(ctx, id)()
	return r.next.UpdateStreaks(ctx, id, current, longest)
}
