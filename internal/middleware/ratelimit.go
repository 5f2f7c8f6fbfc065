package middleware

import (
	"net/http"
	"sync"

	"findmygym/internal/config"
	"findmygym/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}
	return &RateLimiter{rps: rate.Limit(cfg.RPS), burst: burst}
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	lim := rate.NewLimiter(l.rps, l.burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}

// Limit rejects requests over the per-IP budget with 429.
func (l *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.limiter(c.ClientIP()).Allow() {
			response.Abort(c, http.StatusTooManyRequests, response.CodeRateLimited, "Too many requests")
			return
		}
		c.Next()
	}
}

// LimitMutations applies Limit to everything except safe methods.
func (l *RateLimiter) LimitMutations() gin.HandlerFunc {
	limit := l.Limit()
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			limit(c)
		}
	}
}
