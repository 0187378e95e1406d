package http

import (
	"math"
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket. A bucket holds up to capacity tokens
// and regains capacity tokens evenly over window.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    float64
	window      time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    float64(capacity),
		window:      window,
		clients:     make(map[string]*clientBucket),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > bucketCleanupThreshold {
			delete(r.clients, key)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow takes a token for key. When none is left it reports how long until one is.
func (r *RateLimiter) Allow(key string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, ok := r.clients[key]
	if !ok {
		bucket = &clientBucket{tokens: r.capacity, lastSeen: now}
		r.clients[key] = bucket
	}

	perToken := r.window / time.Duration(math.Max(r.capacity, 1))
	elapsed := now.Sub(bucket.lastSeen)
	if elapsed > 0 && perToken > 0 {
		bucket.tokens = math.Min(r.capacity, bucket.tokens+float64(elapsed)/float64(perToken))
	}
	bucket.lastSeen = now

	if bucket.tokens < 1 {
		wait := time.Duration((1 - bucket.tokens) * float64(perToken))
		return false, wait
	}

	bucket.tokens--
	return true, 0
}
