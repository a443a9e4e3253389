package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_RetryAfter(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(0.5, 1, time.Minute)
	rl.now = func() time.Time { return now }

	ok, _ := rl.allow("a")
	assert.True(t, ok)

	ok, wait := rl.allow("a")
	assert.False(t, ok)
	assert.Equal(t, 2*time.Second, wait)

	now = now.Add(2 * time.Second)
	ok, _ = rl.allow("a")
	assert.True(t, ok)
}

func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(1, 1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	rl.allow("b")
	assert.Equal(t, 2, rl.size())

	now = now.Add(2 * time.Minute)
	rl.allow("c")
	assert.Equal(t, 1, rl.size())
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(300*time.Millisecond))
	assert.Equal(t, 3, retryAfterSeconds(2100*time.Millisecond))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:5555"
	assert.Equal(t, "192.0.2.7", clientIP(req))

	req.RemoteAddr = "192.0.2.8"
	assert.Equal(t, "192.0.2.8", clientIP(req))
}

func TestIsPublicPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/health", true},
		{"/health/", true},
		{"/static/css/app.css", true},
		{"/metrics", false},
		{"/ask", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, isPublicPath(tc.path), tc.path)
	}
}
