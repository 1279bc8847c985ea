package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterEnforcesBudget(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	r := gin.New()
	r.GET("/limited", rl.Middleware(), okHandler)

	for i := 0; i < 2; i++ {
		w := performRequest(r, http.MethodGet, "/limited")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := performRequest(r, http.MethodGet, "/limited")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiterStopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	rl.Stop() // second call must not panic
}

func TestRateLimiterCleanupDropsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, time.Millisecond)
	defer rl.Stop()

	rl.mu.Lock()
	rl.visitors["192.0.2.99"] = &visitor{
		tokens:   1,
		lastSeen: time.Now().Add(-time.Hour),
	}
	rl.mu.Unlock()

	rl.cleanup()

	rl.mu.Lock()
	_, exists := rl.visitors["192.0.2.99"]
	rl.mu.Unlock()
	assert.False(t, exists)
}
