package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"household-finance/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func throttledHandler(limits config.RateLimitConfig) echo.HandlerFunc {
	return RateLimiter(limits)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func suggestionsRequest(e *echo.Echo, remoteAddr string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/households/4b1e/suggestions", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRateLimiterAllowsBurstThenThrottles(t *testing.T) {
	e := echo.New()
	handler := throttledHandler(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 3})

	for i := 0; i < 3; i++ {
		c, rec := suggestionsRequest(e, "10.0.0.7:40000")
		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst should pass", i)
	}

	// Burst exhausted: the next request is throttled via SendError, so the
	// handler returns nil and the response carries the 429
	c, rec := suggestionsRequest(e, "10.0.0.7:40000")
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_004")
}

func TestRateLimiterTracksClientsIndependently(t *testing.T) {
	e := echo.New()
	handler := throttledHandler(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 2})

	// Exhaust one household's client
	for i := 0; i < 3; i++ {
		c, _ := suggestionsRequest(e, "10.0.0.1:40000")
		assert.NoError(t, handler(c))
	}

	// A different client still has its full burst
	c, rec := suggestionsRequest(e, "10.0.0.2:40000")
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	e := echo.New()
	handler := throttledHandler(config.RateLimitConfig{RequestsPerSecond: 100, Burst: 1})

	c, rec := suggestionsRequest(e, "10.0.0.3:40000")
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = suggestionsRequest(e, "10.0.0.3:40000")
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// At 100 rps a token is back within 10ms
	time.Sleep(50 * time.Millisecond)

	c, rec = suggestionsRequest(e, "10.0.0.3:40000")
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterConcurrentClients(t *testing.T) {
	e := echo.New()
	handler := throttledHandler(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 5})

	var wg sync.WaitGroup
	var mu sync.Mutex
	okCount := 0
	throttledCount := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			c, rec := suggestionsRequest(e, "10.0.0.9:40000")
			if err := handler(c); err != nil {
				return
			}

			mu.Lock()
			defer mu.Unlock()
			switch rec.Code {
			case http.StatusOK:
				okCount++
			case http.StatusTooManyRequests:
				throttledCount++
			}
		}()
	}
	wg.Wait()

	assert.Greater(t, okCount, 0, "some requests should pass")
	assert.Greater(t, throttledCount, 0, "some requests should be throttled")
	assert.Equal(t, 20, okCount+throttledCount)
}

func TestIPRateLimiterEvictsIdleClients(t *testing.T) {
	rl := newIPRateLimiter(5, 10)

	assert.True(t, rl.allow("10.0.0.4"))
	assert.True(t, rl.allow("10.0.0.5"))

	rl.mu.Lock()
	rl.clients["10.0.0.4"].lastSeen = time.Now().Add(-2 * clientIdleTimeout)
	rl.mu.Unlock()

	rl.evictIdle()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.clients, "10.0.0.4", "idle client should be evicted")
	assert.Contains(t, rl.clients, "10.0.0.5", "recently seen client should survive")
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For header",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.7",
		},
		{
			name:       "X-Real-IP header",
			headers:    map[string]string{"X-Real-IP": "203.0.113.8"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.8",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.7",
				"X-Real-IP":       "203.0.113.8",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.7",
		},
		{
			name:       "Falls back to the peer address",
			headers:    map[string]string{},
			remoteAddr: "203.0.113.9:12345",
			expected:   "203.0.113.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}
