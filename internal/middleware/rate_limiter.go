package middleware

import (
	"log/slog"
	"sync"
	"time"

	"household-finance/internal/config"
	"household-finance/internal/errors"
	"household-finance/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	clientIdleTimeout = 3 * time.Minute
	evictionInterval  = time.Minute
)

// clientBucket is one caller's token bucket plus its eviction timestamp
type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter hands out one token bucket per client IP and evicts buckets
// that have been idle longer than clientIdleTimeout
type ipRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	rps     rate.Limit
	burst   int
}

func newIPRateLimiter(requestsPerSecond, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		clients: make(map[string]*clientBucket),
		rps:     rate.Limit(requestsPerSecond),
		burst:   burst,
	}
}

func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, exists := rl.clients[ip]
	if !exists {
		client = &clientBucket{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

func (rl *ipRateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, client := range rl.clients {
		if time.Since(client.lastSeen) > clientIdleTimeout {
			delete(rl.clients, ip)
		}
	}
}

func (rl *ipRateLimiter) evictLoop() {
	for {
		time.Sleep(evictionInterval)
		rl.evictIdle()
	}
}

// RateLimiter throttles requests per client IP with the configured
// requests-per-second rate and burst allowance. Throttled requests get a
// SYSTEM_004 response and are logged with their trace ID.
func RateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	rl := newIPRateLimiter(cfg.RequestsPerSecond, cfg.Burst)
	go rl.evictLoop()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := getIP(c)

			if !rl.allow(ip) {
				slog.Warn("Rate limit exceeded",
					"trace_id", GetTraceID(c),
					"ip", ip,
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// getIP resolves the client address, preferring proxy headers so households
// behind a reverse proxy are not throttled as one caller
func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
