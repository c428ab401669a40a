package http_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/adriangarcia-real/breakfree-habit-tracker/internal/adapters/handler/http"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/adapters/repository"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/config"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/services"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

var testToday = time.Date(2025, 1, 10, 14, 0, 0, 0, time.UTC)

// stubValidator accepts tokens of the form "user:<id>".
type stubValidator struct{}

func (stubValidator) ValidateToken(_ context.Context, token string) (string, error) {
	if !strings.HasPrefix(token, "user:") {
		return "", errors.New("bad token")
	}
	return strings.TrimPrefix(token, "user:"), nil
}

type recordingEnqueuer struct {
	mu  sync.Mutex
	ids []string
}

func (r *recordingEnqueuer) Enqueue(habitID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, habitID)
}

func (r *recordingEnqueuer) Enqueued() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

type testEnv struct {
	router   *gin.Engine
	db       *sqlx.DB
	users    *repository.SQLUserRepository
	habits   *repository.SQLHabitRepository
	entries  *repository.SQLEntryRepository
	tokens   *services.TokenService
	enqueuer *recordingEnqueuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	db, err := repository.Open(ctx, config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "handlers_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repository.Migrate(ctx, db))

	env := &testEnv{
		db:       db,
		users:    repository.NewSQLUserRepository(db),
		habits:   repository.NewSQLHabitRepository(db),
		entries:  repository.NewSQLEntryRepository(db),
		enqueuer: &recordingEnqueuer{},
	}

	clock := domain.FixedClock(testToday)
	env.tokens = services.NewTokenService("handler-test-secret", "breakfree-test", time.Hour, env.users)

	authSvc := services.NewAuthService(env.users)
	habitSvc := services.NewHabitService(env.habits, clock)
	entrySvc := services.NewEntryService(env.entries, env.habits, env.enqueuer, clock)
	dashboardSvc := services.NewDashboardService(env.habits, env.entries, streak.Calculator{}, clock)
	statsSvc := services.NewStatsService(env.habits, env.entries)

	log, _ := test.NewNullLogger()

	env.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authSvc, env.tokens),
		HabitHandler:     adapterHTTP.NewHabitHandler(habitSvc, entrySvc),
		EntryHandler:     adapterHTTP.NewEntryHandler(entrySvc),
		DashboardHandler: adapterHTTP.NewDashboardHandler(dashboardSvc),
		StatsHandler:     adapterHTTP.NewStatsHandler(statsSvc, clock),
		TokenValidator:   stubValidator{},
		DB:               db,
		Logger:           log,
		StartTime:        time.Now(),
	})

	return env
}

// seedUser stores a user directly, skipping the bcrypt cost of registration.
func (e *testEnv) seedUser(t *testing.T, username string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(uuid.NewString(), username)
	require.NoError(t, err)
	user.PasswordHash = "unused"
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

// seedHabit stores a habit that started daysAgo days before today.
func (e *testEnv) seedHabit(t *testing.T, userID, name string, daysAgo int) *domain.Habit {
	t.Helper()

	h, err := domain.NewHabit(userID, name, testToday.AddDate(0, 0, -daysAgo))
	require.NoError(t, err)
	require.NoError(t, e.habits.Create(context.Background(), h))
	return h
}

func (e *testEnv) seedEntry(t *testing.T, h *domain.Habit, day string, success bool, mood string) *domain.HabitEntry {
	t.Helper()

	d, err := streak.ParseDay(day)
	require.NoError(t, err)
	entry := domain.NewHabitEntry(h.ID, h.UserID, d, success, mood, "seeded")
	require.NoError(t, e.entries.Create(context.Background(), entry))
	return entry
}

// do sends a request as userID; an empty userID sends no credentials.
func (e *testEnv) do(method, path, body, userID string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer user:"+userID)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"database":"connected"`)
	require.Contains(t, w.Body.String(), `"redis":"disabled"`)
}

func TestSwaggerDoc(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/swagger/doc.json", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "/habits/{id}/history")
}
