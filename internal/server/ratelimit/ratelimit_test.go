package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_BurstThenDeny(t *testing.T) {
	b := newBucket(5, 1.0) // 5-token burst, 1 token/s

	for i := 0; i < 5; i++ {
		ok, _, _ := b.take()
		assert.True(t, ok, "burst request %d", i+1)
	}

	ok, remaining, reset := b.take()
	assert.False(t, ok)
	assert.Equal(t, 0, remaining)
	assert.True(t, reset.After(time.Now()), "reset should be in the future")
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(2, 10.0) // refills fast enough to test without long sleeps

	for i := 0; i < 2; i++ {
		ok, _, _ := b.take()
		require.True(t, ok)
	}
	ok, _, _ := b.take()
	require.False(t, ok)

	time.Sleep(150 * time.Millisecond) // ~1.5 tokens back

	ok, _, _ = b.take()
	assert.True(t, ok, "expected a token after refill")
}

func TestLimiter_UploadTierBurst(t *testing.T) {
	// The upload tier allows a burst of 5, then denies until the hourly
	// window refills.
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/parse", "POST")
		assert.True(t, allowed, "upload %d", i+1)
		assert.Equal(t, 60, info.Limit)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/parse", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_TextAndScoreTiersAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	// Exhaust the upload burst; text parsing and scoring keep their own
	// buckets and budgets.
	for i := 0; i < 6; i++ {
		limiter.Allow("127.0.0.1", "/parse", "POST")
	}

	allowed, info := limiter.Allow("127.0.0.1", "/parse/text", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 300, info.Limit)

	allowed, info = limiter.Allow("127.0.0.1", "/score", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 300, info.Limit)
}

func TestLimiter_ReadsFallThroughToDefault(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    50,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/resumes", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 50, info.Limit)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1,
		DefaultWindow:   time.Hour,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/health", "GET")
		assert.True(t, allowed, "health check %d", i+1)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_ClientsDoNotShareBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	for i := 0; i < 6; i++ {
		limiter.Allow("10.0.0.1", "/parse", "POST")
	}

	allowed, _ := limiter.Allow("10.0.0.2", "/parse", "POST")
	assert.True(t, allowed, "a second client gets its own upload budget")
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1,
		DefaultWindow:   time.Minute,
		Whitelist:       map[string]bool{"127.0.0.1": true},
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/parse", "POST")
		assert.True(t, allowed, "whitelisted request %d", i+1)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.168.1.1", "/score", "POST")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/parse", "POST")
		assert.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := limiter.Allow("127.0.0.1", "/score", "POST")
			if allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_CleanupKeepsActiveBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   time.Minute,
		CleanupInterval: 50 * time.Millisecond,
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		clientID := fmt.Sprintf("10.0.0.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/score", "POST")
		require.True(t, allowed)
	}

	time.Sleep(120 * time.Millisecond)

	// Recently used buckets survive cleanup passes.
	for i := 0; i < 5; i++ {
		clientID := fmt.Sprintf("10.0.0.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/score", "POST")
		assert.True(t, allowed, "client %s after cleanup", clientID)
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/resumes", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestMatchEndpoint_PrefixCoversPathParams(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/resumes/", Method: "GET", Limit: 100, Window: time.Minute},
	}

	match := MatchEndpoint("/resumes/3f1c9a22-0000-0000-0000-000000000000", "GET", configs)
	require.NotNil(t, match)
	assert.Equal(t, 100, match.Limit)

	assert.Nil(t, MatchEndpoint("/resumes/x", "POST", configs))
}
