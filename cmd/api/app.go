package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/adapters/cache"
	adapterHTTP "github.com/adriangarcia-real/breakfree-habit-tracker/internal/adapters/handler/http"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/adapters/repository"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/config"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/services"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/workers"
)

// app holds the long-lived dependencies shared by every command.
type app struct {
	cfg        *config.Config
	log        *logrus.Logger
	db         *sqlx.DB
	rdb        *redis.Client
	clock      domain.Clock
	calculator streak.Calculator

	users   domain.UserRepository
	habits  domain.HabitRepository
	entries domain.HabitEntryRepository

	worker    *workers.StreakWorker
	scheduler *workers.StreakScheduler
}

func newApp(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*app, error) {
	log.WithField("driver", cfg.DB.Driver).Info("Connecting to database...")

	db, err := repository.Open(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("Database connected successfully.")

	a := &app{
		cfg:        cfg,
		log:        log,
		db:         db,
		clock:      domain.NewClock(cfg.Location),
		calculator: streak.Calculator{Lookback: cfg.Streak.LookbackDays},
		users:      repository.NewSQLUserRepository(db),
		entries:    repository.NewSQLEntryRepository(db),
	}

	var habits domain.HabitRepository = repository.NewSQLHabitRepository(db)
	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, running without habit cache and rate limiting")
		} else {
			log.WithField("addr", cfg.Redis.Addr()).Info("Redis connected")
			a.rdb = rdb
			habits = repository.NewCachedHabitRepository(habits, rdb, log)
		}
	}
	a.habits = habits

	a.worker = workers.NewStreakWorker(a.habits, a.entries, a.calculator, a.clock, log)
	a.scheduler = workers.NewStreakScheduler(a.habits, a.worker, cfg.Streak.RefreshCron, cfg.Location, log)

	return a, nil
}

func (a *app) Close() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.WithError(err).Warn("Closing redis client")
		}
	}
	if err := a.db.Close(); err != nil {
		a.log.WithError(err).Warn("Closing database")
	}
}

func (a *app) router(startTime time.Time) *gin.Engine {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokenService := services.NewTokenService(a.cfg.JWT.Secret, a.cfg.JWT.Issuer, a.cfg.JWT.TTL, a.users)
	authService := services.NewAuthService(a.users)
	habitService := services.NewHabitService(a.habits, a.clock)
	entryService := services.NewEntryService(a.entries, a.habits, a.worker, a.clock)
	dashboardService := services.NewDashboardService(a.habits, a.entries, a.calculator, a.clock)
	statsService := services.NewStatsService(a.habits, a.entries)

	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService, tokenService),
		HabitHandler:     adapterHTTP.NewHabitHandler(habitService, entryService),
		EntryHandler:     adapterHTTP.NewEntryHandler(entryService),
		DashboardHandler: adapterHTTP.NewDashboardHandler(dashboardService),
		StatsHandler:     adapterHTTP.NewStatsHandler(statsService, a.clock),
		TokenValidator:   tokenService,
		DB:               a.db,
		Redis:            a.rdb,
		RateLimit:        a.cfg.RateLimit,
		Logger:           a.log,
		StartTime:        startTime,
	})
}
