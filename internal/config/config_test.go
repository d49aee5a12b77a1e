package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://hr.example.com,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, []string{"http://localhost:3000", "https://hr.example.com"}, cfg.App.AllowedOrigins)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port", key: "DB_PORT", val: "abc"},
		{name: "expiration", key: "JWT_ACCESS_EXPIRATION_TIME", val: "soon"},
		{name: "timezone", key: "APP_TIMEZONE", val: "Mars/Olympus"},
		{name: "migrate flag", key: "MIGRATE_ON_START", val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := &Config{
		JWT: JWTConfig{Secret: "s", AccessExpiration: time.Hour},
		App: AppConfig{Timezone: "UTC"},
	}
	assert.EqualError(t, cfg.Validate(), "DB_PASSWORD is required")

	cfg.Database.Password = "p"
	assert.NoError(t, cfg.Validate())

	cfg.Bootstrap.HREmail = "hr@example.com"
	assert.Error(t, cfg.Validate())
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "hrm", Password: "pw", Name: "hrm", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://hrm:pw@db:5433/hrm?sslmode=disable", cfg.DatabaseURL())
}
