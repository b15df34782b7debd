package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rmaulana/llama-chat/internal/api/response"
	"github.com/rmaulana/llama-chat/internal/repository/redis"
)

// RateLimitMiddleware throttles requests per client address
type RateLimitMiddleware struct {
	rateLimiter *redis.RateLimiter
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(rateLimiter *redis.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{rateLimiter: rateLimiter}
}

// Limit applies rate limiting keyed by the client address. RealIP must run
// earlier in the chain for the key to be meaningful behind a proxy.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining, resetTime, err := m.rateLimiter.Allow(r.Context(), r.RemoteAddr)
		if err != nil {
			// If rate limiting is unavailable the request goes through;
			// dropping traffic on a Redis hiccup is worse than not
			// throttling it.
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", resetTime.Format(time.RFC3339))

		if !allowed {
			response.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
