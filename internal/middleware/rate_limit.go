package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"trackfit-companion/pkg/response"
)

// RateLimit rejects clients that exceed the configured request rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.limiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client, evicting idle clients.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxClients int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 120
	}
	if maxClients <= 0 {
		maxClients = 1000
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
