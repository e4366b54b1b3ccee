package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cofipei/chart-api/internal/constants"
	"github.com/cofipei/chart-api/internal/logger"
	"github.com/cofipei/chart-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultCleanupInterval = 5 * time.Minute
	defaultIdleTimeout     = 10 * time.Minute
	apiKeyPrefixLen        = 8
)

// RateLimiter keeps one token bucket per client
type RateLimiter struct {
	limiters sync.Map
	rate     int
	burst    int

	cleanupInterval time.Duration
	idleTimeout     time.Duration
	now             func() time.Time
	authenticated   func(*gin.Context) bool

	stopOnce sync.Once
	stop     chan struct{}
}

type limiterEntry struct {
	limiter *rate.Limiter

	mu         sync.Mutex
	lastAccess time.Time
}

func (e *limiterEntry) touch(now time.Time) {
	e.mu.Lock()
	e.lastAccess = now
	e.mu.Unlock()
}

func (e *limiterEntry) idleSince(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Sub(e.lastAccess)
}

// RateLimiterOption customises a RateLimiter
type RateLimiterOption func(*RateLimiter)

// WithAuthCheck lets requests for which check returns true be keyed by their
// API key instead of their IP. check must only accept verified keys.
func WithAuthCheck(check func(*gin.Context) bool) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.authenticated = check
	}
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with the given
// burst per client and starts its cleanup goroutine. Call Stop to end it.
func NewRateLimiter(requestsPerSecond, burst int, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		rate:            requestsPerSecond,
		burst:           burst,
		cleanupInterval: defaultCleanupInterval,
		idleTimeout:     defaultIdleTimeout,
		now:             time.Now,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}

	go rl.cleanupLoop()

	return rl
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

// cleanup removes limiters that have been idle longer than idleTimeout
func (rl *RateLimiter) cleanup() {
	now := rl.now()
	rl.limiters.Range(func(key, value interface{}) bool {
		if entry, ok := value.(*limiterEntry); ok && entry.idleSince(now) > rl.idleTimeout {
			rl.limiters.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := rl.now()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(rl.rate), rl.burst),
		lastAccess: now,
	}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// clientIdentifier keys verified callers by API key prefix and everyone else
// by IP. An unverified header never picks the bucket.
func (rl *RateLimiter) clientIdentifier(c *gin.Context) string {
	apiKey := c.GetHeader(constants.APIKeyHeader)
	if apiKey != "" && rl.authenticated != nil && rl.authenticated(c) {
		if len(apiKey) > apiKeyPrefixLen {
			apiKey = apiKey[:apiKeyPrefixLen]
		}
		return "api:" + apiKey
	}

	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return "ip:" + clientIP
}

// Middleware returns a Gin middleware handler for rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		clientID := rl.clientIdentifier(c)
		limiter := rl.getLimiter(clientID)
		reset := fmt.Sprintf("%d", rl.now().Add(time.Second).Unix())

		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded",
				zap.String("correlation_id", GetCorrelationID(c)),
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.rate))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", reset)
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, responses.ErrorResponse{
				Error:         "Too many requests. Please try again later.",
				CorrelationID: GetCorrelationID(c),
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.rate))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", reset)

		c.Next()
	}
}
