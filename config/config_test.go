package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("BUSINESS_RULES_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.App.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, "file:reservations.db?cache=shared", cfg.Database.DSN)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, DefaultBusinessRules(), cfg.Business)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/reservations")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ORIGIN", "http://localhost:3000, https://example.com")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("BUSINESS_RULES_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.Server.CORSOrigins)
	assert.Zero(t, cfg.Server.RateLimitRPS)
	assert.Equal(t, time.UTC, cfg.Server.Location)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("BUSINESS_RULES_FILE", "")

	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	_, err = Load()
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/reservations")
	t.Setenv("PORT", "abc")
	_, err = Load()
	assert.ErrorContains(t, err, "PORT")
}

func TestLoadBusinessRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("closing_time: \"22:00\"\nclosed_days: [1, 2]\nmax_party_size: 12\n"), 0o600))

	rules, err := LoadBusinessRules(path)
	require.NoError(t, err)
	assert.Equal(t, "10:30", rules.OpeningTime, "unset keys keep their defaults")
	assert.Equal(t, "22:00", rules.ClosingTime)
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday}, rules.ClosedWeekdays())
	assert.Equal(t, 12, rules.MaxPartySize)
	assert.NoError(t, rules.Validate())

	_, err = LoadBusinessRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBusinessRulesValidate(t *testing.T) {
	rules := DefaultBusinessRules()
	rules.LastSeatingTime = "22:00"
	assert.Error(t, rules.Validate())

	rules = DefaultBusinessRules()
	rules.OpeningTime = "10:30am"
	assert.Error(t, rules.Validate())

	rules = DefaultBusinessRules()
	rules.ClosedDays = []int{7}
	assert.Error(t, rules.Validate())
}
