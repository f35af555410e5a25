package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/Kenford20/wedding-approuter/internal/security"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	limiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(limiter *security.RateLimiter) *Middleware {
	return &Middleware{limiter: limiter}
}

// RateLimit rejects clients that exceed the limiter's budget. It guards the
// password submission endpoint against brute forcing.
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.GetClientIP(r)) {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
