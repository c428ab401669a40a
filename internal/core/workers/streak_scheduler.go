package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultRefreshSpec runs shortly after midnight so streaks reflect the new day.
const DefaultRefreshSpec = "5 0 * * *"

type HabitLister interface {
	ListActiveIDs(ctx context.Context) ([]string, error)
}

type Recomputer interface {
	Recompute(ctx context.Context, habitID string) error
}

// StreakScheduler periodically recomputes the streaks of every active habit.
type StreakScheduler struct {
	cronEngine *cron.Cron
	lister     HabitLister
	recomputer Recomputer
	spec       string
	log        logrus.FieldLogger
}

func NewStreakScheduler(lister HabitLister, recomputer Recomputer, spec string, loc *time.Location, log logrus.FieldLogger) *StreakScheduler {
	if spec == "" {
		spec = DefaultRefreshSpec
	}
	if loc == nil {
		loc = time.UTC
	}
	return &StreakScheduler{
		cronEngine: cron.New(cron.WithLocation(loc)),
		lister:     lister,
		recomputer: recomputer,
		spec:       spec,
		log:        log,
	}
}

func (s *StreakScheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.spec, s.refresh); err != nil {
		return fmt.Errorf("scheduler: invalid cron spec %q: %w", s.spec, err)
	}

	s.cronEngine.Start()
	s.log.WithField("spec", s.spec).Info("Streak refresh scheduler started")
	return nil
}

func (s *StreakScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	n, err := s.RefreshAll(ctx)
	if err != nil {
		s.log.WithError(err).Error("Streak refresh failed")
		return
	}
	s.log.WithField("habits", n).Info("Streak refresh completed")
}

// RefreshAll recomputes every active habit sequentially and returns how many
// succeeded. A failing habit is logged and skipped.
func (s *StreakScheduler) RefreshAll(ctx context.Context) (int, error) {
	ids, err := s.lister.ListActiveIDs(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		if err := s.recomputer.Recompute(ctx, id); err != nil {
			s.log.WithError(err).WithField("habit_id", id).Error("Streak recompute failed")
			continue
		}
		refreshed++
	}
	return refreshed, nil
}

func (s *StreakScheduler) Stop() {
	s.log.Info("Stopping streak refresh scheduler")
	<-s.cronEngine.Stop().Done()
}
