package ratelimit

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(10, 1.0, now)

	for i := 0; i < 10; i++ {
		allowed, _, _ := bucket.take(now)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
	allowed, remaining, _ := bucket.take(now)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestTokenBucket_Refill(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(2, 1.0, now)
	bucket.take(now)
	bucket.take(now)

	allowed, _, _ := bucket.take(now.Add(1100 * time.Millisecond))
	assert.True(t, allowed, "one token refills after a second")

	allowed, _, resetAt := bucket.take(now.Add(1100 * time.Millisecond))
	assert.False(t, allowed)
	assert.True(t, resetAt.After(now.Add(1100*time.Millisecond)))
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		name     string
		path     string
		method   string
		wantPath string
		wantNil  bool
	}{
		{"login exact", "/admin/auth/login", http.MethodPost, "/admin/auth/login", false},
		{"company toggle by prefix", "/admin/job-providers/abc/toggle-status", http.MethodPatch, "/admin/job-providers/", false},
		{"package create exact", "/admin/packages", http.MethodPost, "/admin/packages", false},
		{"package update prefix", "/admin/packages/123", http.MethodPut, "/admin/packages/", false},
		{"reads use the default", "/admin/job-providers", http.MethodGet, "", true},
		{"health is unlimited", "/health", http.MethodGet, "/health", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}

	assert.Equal(t, 0, MatchEndpoint("/metrics", http.MethodGet, configs).Limit)
}

func TestMatchEndpoint_LongestPrefixWins(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/admin/", Method: "", Limit: 1, Window: time.Minute},
		{Path: "/admin/job-posts/", Method: "", Limit: 2, Window: time.Minute},
	}
	got := MatchEndpoint("/admin/job-posts/1", http.MethodDelete, configs)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Limit)
}

func TestLimiter_LoginLimit(t *testing.T) {
	clock := newClock()
	l := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}, WithClock(clock.Now))
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("10.0.0.1", "/admin/auth/login", http.MethodPost)
		require.True(t, allowed, "attempt %d", i+1)
		assert.Equal(t, 10, info.Limit)
	}

	allowed, info := l.Allow("10.0.0.1", "/admin/auth/login", http.MethodPost)
	assert.False(t, allowed)
	assert.Equal(t, 6*time.Second, info.RetryAfter)
	assert.Equal(t, "/admin/auth/login", info.Route)

	allowed, _ = l.Allow("10.0.0.2", "/admin/auth/login", http.MethodPost)
	assert.True(t, allowed, "other clients have their own bucket")

	clock.Advance(7 * time.Second)
	allowed, _ = l.Allow("10.0.0.1", "/admin/auth/login", http.MethodPost)
	assert.True(t, allowed, "a token refills after window/limit")
}

func TestLimiter_PrefixSharesBucket(t *testing.T) {
	clock := newClock()
	l := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/admin/job-posts/", Method: http.MethodDelete, Limit: 2, Window: time.Minute},
		},
	}, WithClock(clock.Now))
	defer l.Stop()

	allowed, _ := l.Allow("c", "/admin/job-posts/1", http.MethodDelete)
	assert.True(t, allowed)
	allowed, _ = l.Allow("c", "/admin/job-posts/2", http.MethodDelete)
	assert.True(t, allowed)
	allowed, _ = l.Allow("c", "/admin/job-posts/3", http.MethodDelete)
	assert.False(t, allowed)
}

func TestLimiter_Lists(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:      true,
		DefaultLimit: 1, DefaultWindow: time.Hour,
		Whitelist: map[string]bool{"127.0.0.1": true},
		Blacklist: map[string]bool{"6.6.6.6": true},
	})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("127.0.0.1", "/admin/job-seekers", http.MethodGet)
		assert.True(t, allowed)
	}
	allowed, _ := l.Allow("6.6.6.6", "/admin/job-seekers", http.MethodGet)
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()
	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("c", "/admin/auth/login", http.MethodPost)
		assert.True(t, allowed)
	}
}

func TestLimiter_EvictIdle(t *testing.T) {
	clock := newClock()
	l := NewLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute}, WithClock(clock.Now))
	defer l.Stop()

	l.Allow("a", "/admin/job-seekers", http.MethodGet)
	clock.Advance(2 * time.Hour)
	l.Allow("b", "/admin/job-seekers", http.MethodGet)

	assert.Equal(t, 1, l.evictIdle(clock.Now().Add(-time.Hour)))
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(nil)
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_WHITELIST", "127.0.0.1, ::1")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.True(t, cfg.Whitelist["::1"])
	assert.NotEmpty(t, cfg.EndpointConfigs)

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
