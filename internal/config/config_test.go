package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := Load(viper.New())

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, DriverPgx, cfg.DB.Driver)
		assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
		assert.Equal(t, 365, cfg.Streak.LookbackDays)
		assert.Equal(t, "5 0 * * *", cfg.Streak.RefreshCron)
		assert.Equal(t, time.UTC, cfg.Location)
		assert.False(t, cfg.Redis.Enabled)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("ENVIRONMENT", "Production")
		t.Setenv("DB_DRIVER", "SQLite")
		t.Setenv("SQLITE_PATH", "/tmp/bf.db")
		t.Setenv("REDIS_ENABLED", "true")
		t.Setenv("REDIS_PORT", "6380")
		t.Setenv("JWT_TTL", "90m")
		t.Setenv("STREAK_LOOKBACK_DAYS", "30")
		t.Setenv("RATE_LIMIT_WINDOW", "10s")

		cfg, err := Load(viper.New())

		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, DriverSQLite, cfg.DB.Driver)
		assert.Equal(t, "/tmp/bf.db", cfg.DB.DSN())
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost:6380", cfg.Redis.Addr())
		assert.Equal(t, 90*time.Minute, cfg.JWT.TTL)
		assert.Equal(t, 30, cfg.Streak.LookbackDays)
		assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
	})

	t.Run("Postgres DSN", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("DB_USER", "bf")
		t.Setenv("DB_PASSWORD", "pw")
		t.Setenv("DB_NAME", "habits")

		cfg, err := Load(viper.New())

		require.NoError(t, err)
		assert.Equal(t, "postgres://bf:pw@localhost:5432/habits?sslmode=disable", cfg.DB.DSN())
	})

	t.Run("Postgres DSN escapes credentials", func(t *testing.T) {
		cfg := DBConfig{
			Driver:   DriverPgx,
			User:     "bf",
			Password: "p@ss:w/rd?",
			Host:     "db.internal",
			Port:     "5432",
			Name:     "habits",
			SSLMode:  "require",
		}

		u, err := url.Parse(cfg.DSN())

		require.NoError(t, err)
		pw, ok := u.User.Password()
		assert.True(t, ok)
		assert.Equal(t, "p@ss:w/rd?", pw)
		assert.Equal(t, "bf", u.User.Username())
		assert.Equal(t, "db.internal:5432", u.Host)
		assert.Equal(t, "/habits", u.Path)
		assert.Equal(t, "require", u.Query().Get("sslmode"))
	})

	failures := []struct {
		name string
		env  map[string]string
	}{
		{"Missing secret", map[string]string{"JWT_SECRET": ""}},
		{"Unknown driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"Non-positive lookback", map[string]string{"STREAK_LOOKBACK_DAYS": "0"}},
		{"Unknown timezone", map[string]string{"TIMEZONE": "Mars/Olympus_Mons"}},
		{"Zero rate limit", map[string]string{"RATE_LIMIT_REQUESTS": "0"}},
	}

	for _, tt := range failures {
		t.Run("Fail: "+tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(viper.New())
			assert.Error(t, err)
		})
	}

	t.Run("Fail: Missing secret is reported by name", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := Load(viper.New())
		assert.ErrorIs(t, err, ErrMissingJWTSecret)
	})
}
