package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(configs []EndpointConfig) *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		EndpointConfigs: configs,
	}
}

func TestLimiter_BurstExhaustion(t *testing.T) {
	l := NewLimiter(testConfig([]EndpointConfig{
		{Path: "/files", Method: "POST", Limit: 30, Window: time.Hour, Burst: 3},
	}))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/files", "POST")
		require.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 30, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/files", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_PerClientBuckets(t *testing.T) {
	l := NewLimiter(testConfig([]EndpointConfig{
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 1},
	}))
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/auth/login", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.1.1.1", "/auth/login", "POST")
	assert.False(t, allowed)

	// A different client has its own bucket
	allowed, _ = l.Allow("2.2.2.2", "/auth/login", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Lists(t *testing.T) {
	cfg := testConfig([]EndpointConfig{
		{Path: "/auth/login", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1},
	})
	cfg.Whitelist["10.0.0.1"] = true
	cfg.Blacklist["10.0.0.2"] = true

	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/auth/login", "POST")
		assert.True(t, allowed, "whitelisted client is never limited")
	}

	allowed, _ := l.Allow("10.0.0.2", "/health", "GET")
	assert.False(t, allowed, "blacklisted client is always rejected")
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/files", "POST")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/files", Method: "POST", Limit: 30},
		{Path: "/files/", Method: "POST", Limit: 30},
		{Path: "/skills/", Method: "DELETE", Limit: 100},
	}

	t.Run("health is unlimited", func(t *testing.T) {
		ec := MatchEndpoint("/health", "GET", configs)
		require.NotNil(t, ec)
		assert.Equal(t, 0, ec.Limit)
	})

	t.Run("exact match", func(t *testing.T) {
		ec := MatchEndpoint("/files", "POST", configs)
		require.NotNil(t, ec)
		assert.Equal(t, "/files", ec.Path)
	})

	t.Run("prefix match", func(t *testing.T) {
		ec := MatchEndpoint("/files/123/parse-resume", "POST", configs)
		require.NotNil(t, ec)
		assert.Equal(t, "/files/", ec.Path)

		ec = MatchEndpoint("/skills/abc", "DELETE", configs)
		require.NotNil(t, ec)
		assert.Equal(t, "/skills/", ec.Path)
	})

	t.Run("method must match", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/files", "GET", configs))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/goals", "GET", configs))
	})
}

func TestBucketRefill(t *testing.T) {
	// 10 tokens per second, capacity 2
	b := newBucket(2, 10)

	allowed, _, _ := b.take()
	require.True(t, allowed)
	allowed, _, _ = b.take()
	require.True(t, allowed)
	allowed, _, _ = b.take()
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)

	allowed, _, _ = b.take()
	assert.True(t, allowed, "bucket should refill over time")
}
