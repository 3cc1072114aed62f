// Package ratelimit throttles API clients with per-endpoint token
// buckets. Document parsing is the expensive operation in this service,
// so uploads carry a much tighter budget than the CPU-only text-parse and
// score endpoints; reads fall through to a lenient default.
package ratelimit

import (
	"sync"
	"time"
)

// bucketIdleTimeout is how long a client's bucket may go unused before
// the cleanup pass drops it.
const bucketIdleTimeout = time.Hour

// bucket is a token bucket. Tokens refill continuously at rate per
// second up to capacity; each allowed request consumes one.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	tokens   float64
	refilled time.Time // last refill
	used     time.Time // last request, for idle cleanup
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		refilled: now,
		used:     now,
	}
}

// take consumes one token when available. It also reports the tokens
// left and when the bucket will be full again.
func (b *bucket) take() (ok bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.refilled).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.refilled = now
	b.used = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	reset = now
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.rate
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return ok, int(b.tokens), reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used.Before(cutoff)
}

// Info is the rate limit state reported back to the client in the
// X-RateLimit response headers. Limit 0 means no limit applied.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter applies per-client, per-endpoint rate limits. Buckets are
// keyed by client+endpoint+method and dropped after an hour idle.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter for the given configuration. A nil config
// enables limiting with the global defaults only.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether a request from clientID to the given endpoint
// and method may proceed, along with header state for the response.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Unlimited endpoint (health checks)
	if endpointConfig.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + endpoint + ":" + method
	allowed, remaining, reset := l.getBucket(key, endpointConfig).take()

	info := Info{
		Allowed:   allowed,
		Limit:     endpointConfig.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return allowed, info
}

// getBucket returns the bucket for key, creating it from the endpoint's
// limit, window and burst on first use.
func (l *Limiter) getBucket(key string, ec *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	b := newBucket(capacity, float64(ec.Limit)/ec.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeIdle()
		case <-l.cleanupStop:
			return
		}
	}
}

// removeIdle drops buckets whose client has not been seen for
// bucketIdleTimeout, bounding memory across many one-shot clients.
func (l *Limiter) removeIdle() {
	cutoff := time.Now().Add(-bucketIdleTimeout)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
