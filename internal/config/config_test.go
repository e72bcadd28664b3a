package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 60, cfg.RateLimitPerMin)
	assert.Equal(t, 10, cfg.AuthRateLimitPerMin)
}

func TestLoadMySQL(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "monjez")

	cfg := Load()

	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "root:secret@tcp(db:3306)/monjez?charset=utf8mb4&parseTime=True&loc=UTC", cfg.DSN())
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBDriver:   DriverPostgres,
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "pw",
		DBName:     "monjez",
		DBSSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost user=postgres password=pw dbname=monjez port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "forever")
	t.Setenv("RATE_LIMIT_PER_MIN", "-3")

	cfg := Load()

	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 60, cfg.RateLimitPerMin)
}
