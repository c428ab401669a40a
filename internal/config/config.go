package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

type Config struct {
	Environment string
	LogLevel    string
	Port        string

	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Streak    StreakConfig

	Timezone string
	Location *time.Location
}

type DBConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type StreakConfig struct {
	LookbackDays int
	RefreshCron  string
}

// SetDefaults registers every known key so AutomaticEnv can resolve it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("port", "8080")

	v.SetDefault("db_driver", DriverPgx)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "breakfree")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "breakfree")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("sqlite_path", "breakfree.db")

	v.SetDefault("redis_enabled", false)
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)

	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_issuer", "breakfree")
	v.SetDefault("jwt_ttl", "24h")

	v.SetDefault("rate_limit_requests", 100)
	v.SetDefault("rate_limit_window", "1m")

	v.SetDefault("timezone", "UTC")
	v.SetDefault("streak_lookback_days", 365)
	v.SetDefault("streak_refresh_cron", "5 0 * * *")
}

// Load reads configuration from the environment, an optional .env file and,
// when set on v, a config file. Real environment variables win over .env.
func Load(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load()

	SetDefaults(v)
	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{
		Environment: strings.ToLower(v.GetString("environment")),
		LogLevel:    strings.ToLower(v.GetString("log_level")),
		Port:        v.GetString("port"),
		DB: DBConfig{
			Driver:     strings.ToLower(v.GetString("db_driver")),
			Host:       v.GetString("db_host"),
			Port:       v.GetString("db_port"),
			User:       v.GetString("db_user"),
			Password:   v.GetString("db_password"),
			Name:       v.GetString("db_name"),
			SSLMode:    v.GetString("db_sslmode"),
			SQLitePath: v.GetString("sqlite_path"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis_enabled"),
			Host:     v.GetString("redis_host"),
			Port:     v.GetString("redis_port"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("jwt_secret"),
			Issuer: v.GetString("jwt_issuer"),
			TTL:    v.GetDuration("jwt_ttl"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("rate_limit_requests"),
			Window:   v.GetDuration("rate_limit_window"),
		},
		Streak: StreakConfig{
			LookbackDays: v.GetInt("streak_lookback_days"),
			RefreshCron:  v.GetString("streak_refresh_cron"),
		},
		Timezone: v.GetString("timezone"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("invalid JWT_TTL %s", c.JWT.TTL)
	}

	switch c.DB.Driver {
	case DriverPgx, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want pgx, postgres or sqlite)", c.DB.Driver)
	}

	if c.Streak.LookbackDays <= 0 {
		return fmt.Errorf("STREAK_LOOKBACK_DAYS must be positive, got %d", c.Streak.LookbackDays)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid rate limit %d per %s", c.RateLimit.Requests, c.RateLimit.Window)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	c.Location = loc

	return nil
}

// DSN returns the connection string for the configured driver.
func (c DBConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "staging"
}
