package config

import (
	"testing"
	"time"

	assert "gopkg.in/go-playground/assert.v1"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("TOKEN_EXPIRY", "")

	cfg, err := Load()
	assert.Equal(t, err, nil)
	assert.Equal(t, cfg.Port, "8000")
	assert.Equal(t, cfg.DatabaseName, "food_ordering")
	assert.Equal(t, cfg.TokenExpiry, time.Hour)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.NotEqual(t, err, nil)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_EXPIRY", "30m")

	cfg, err := Load()
	assert.Equal(t, err, nil)
	assert.Equal(t, cfg.Port, "9090")
	assert.Equal(t, cfg.TokenExpiry, 30*time.Minute)
}

func TestLoadRejectsBadExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_EXPIRY", "soon")

	_, err := Load()
	assert.NotEqual(t, err, nil)
}
