package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ZarinPOS Core", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "zarinpos", cfg.Database.Name)
	assert.Equal(t, "Asia/Tehran", cfg.Calendar.Timezone)
	assert.Equal(t, 9.0, cfg.Pricing.TaxPercent)
	assert.Equal(t, 7.0, cfg.Pricing.DefaultWagePercent)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_NAME", "zarinpos_test")
	t.Setenv("PRICING_TAX_PERCENT", "10")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CALENDAR_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "zarinpos_test", cfg.Database.Name)
	assert.Equal(t, 10.0, cfg.Pricing.TaxPercent)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "UTC", cfg.Calendar.Timezone)
}

func TestLoadRejectsDefaultSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "change-me")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadTaxPercent(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PRICING_TAX_PERCENT", "150")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Name:     "zarinpos",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=zarinpos sslmode=disable",
		cfg.GetDSN())
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", cfg.GetAddr())
}

func TestEnvironmentHelpers(t *testing.T) {
	dev := AppConfig{Environment: "development"}
	prod := AppConfig{Environment: "production"}

	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())
	assert.True(t, prod.IsProduction())
}
