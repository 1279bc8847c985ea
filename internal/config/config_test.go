package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 30*time.Second, cfg.JWTLeeway)
	assert.Equal(t, 120, cfg.RatePerMinute)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RATE_PER_MINUTE", "10")
	t.Setenv("ALLOWED_ORIGINS", "https://portal.example.edu, https://admin.example.edu")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 10, cfg.RatePerMinute)
	assert.Equal(t, []string{"https://portal.example.edu", "https://admin.example.edu"}, cfg.AllowedOrigins)
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t, []string{"a"}, parseOrigins(" a "))
	assert.Equal(t, []string{"a", "b"}, parseOrigins("a,,b"))
}

func TestRevocationKeys(t *testing.T) {
	assert.Equal(t, "auth:revoked:abc", CacheKey.RevokedTokenKey("abc"))
	assert.Equal(t, "auth:session:7", CacheKey.UserSessionKey(7))
}
