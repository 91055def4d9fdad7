package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Business BusinessRules
}

type AppConfig struct {
	Name    string
	Version string
	Env     string
}

type ServerConfig struct {
	Port           int
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	BodyLimitBytes int64
	MetricsEnabled bool
	Location       *time.Location
}

type DatabaseConfig struct {
	Driver                 string
	DSN                    string
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeMinutes int
	AutoMigrate            bool
	Seed                   bool
}

type LogConfig struct {
	Level  string
	Format string
}

// IsDevelopment reports whether internal error details may reach clients.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", EnvDevelopment)

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Restaurant Reservation System"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Env:     env,
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			DSN:         os.Getenv("DATABASE_URL"),
			AutoMigrate: true,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	defaultFormat := "json"
	if env == EnvDevelopment {
		defaultFormat = "text"
	}
	cfg.Log.Format = getEnv("LOG_FORMAT", defaultFormat)

	var err error
	if cfg.Server.Port, err = getInt("PORT", 5001); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 20); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 40); err != nil {
		return nil, err
	}
	bodyLimit, err := getInt("BODY_LIMIT_BYTES", 10<<20)
	if err != nil {
		return nil, err
	}
	cfg.Server.BodyLimitBytes = int64(bodyLimit)
	cfg.Server.CORSOrigins = splitList(getEnv("CORS_ORIGIN", "*"))
	if cfg.Server.MetricsEnabled, err = getBool("METRICS_ENABLED", true); err != nil {
		return nil, err
	}

	cfg.Server.Location, err = time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	if cfg.Database.MaxOpenConns, err = getInt("DB_MAX_OPEN_CONNS", 25); err != nil {
		return nil, err
	}
	if cfg.Database.MaxIdleConns, err = getInt("DB_MAX_IDLE_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.Database.ConnMaxLifetimeMinutes, err = getInt("DB_CONN_MAX_LIFETIME_MINUTES", 60); err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate, err = getBool("DB_AUTO_MIGRATE", true); err != nil {
		return nil, err
	}
	if cfg.Database.Seed, err = getBool("DB_SEED", false); err != nil {
		return nil, err
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		cfg.Database.DSN = "file:reservations.db?cache=shared"
	}

	cfg.Business, err = LoadBusinessRules(os.Getenv("BUSINESS_RULES_FILE"))
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the process cannot start without.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres, mysql or sqlite)", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("DATABASE_URL is required for driver %s", c.Database.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.App.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("unsupported APP_ENV %q", c.App.Env)
	}
	return c.Business.Validate()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
