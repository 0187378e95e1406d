package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(capacity int, window time.Duration) (*RateLimiter, *time.Time) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(capacity, window)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_AllowsUpToCapacity(t *testing.T) {
	rl, _ := newTestLimiter(3, time.Minute)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok, "request %d", i)
	}

	ok, wait := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 20*time.Second, wait)
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter(1, time.Minute)
	defer rl.Stop()

	ok, _ := rl.Allow("a")
	assert.True(t, ok)
	ok, _ = rl.Allow("b")
	assert.True(t, ok)
	ok, _ = rl.Allow("a")
	assert.False(t, ok)
}

func TestRateLimiter_Refills(t *testing.T) {
	rl, now := newTestLimiter(2, time.Minute)
	defer rl.Stop()

	rl.Allow("a")
	rl.Allow("a")
	ok, _ := rl.Allow("a")
	assert.False(t, ok)

	*now = now.Add(30 * time.Second)
	ok, _ = rl.Allow("a")
	assert.True(t, ok)
	ok, _ = rl.Allow("a")
	assert.False(t, ok)
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl, now := newTestLimiter(2, time.Minute)
	defer rl.Stop()

	rl.Allow("a")
	*now = now.Add(2 * time.Hour)
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.clients)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl, _ := newTestLimiter(1, time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
