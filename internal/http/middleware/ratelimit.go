package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/cedarbrook-wellness/content-service/internal/ratelimit"
	"github.com/cedarbrook-wellness/content-service/internal/utils/response"
)

type RateLimitConfig struct {
	redisClient *redis.Client
	limiters    map[string]*ratelimit.TokenBucket
}

func NewRateLimitConfig(redisClient *redis.Client) *RateLimitConfig {
	config := &RateLimitConfig{
		redisClient: redisClient,
		limiters:    make(map[string]*ratelimit.TokenBucket),
	}

	// Configure rate limits for the expensive operations.
	// Video uploads: 5/min per client
	config.limiters["video-upload"] = ratelimit.NewTokenBucket(redisClient, 5, 5)

	// Image uploads: 30/min per client
	config.limiters["image-upload"] = ratelimit.NewTokenBucket(redisClient, 30, 30)

	// CSV imports (each chunk counts): 120/min per client
	config.limiters["csv-import"] = ratelimit.NewTokenBucket(redisClient, 120, 120)

	return config
}

// subjectForRequest identifies the caller: the authenticated admin when
// present, otherwise the client address.
func subjectForRequest(r *http.Request) string {
	if adminID, ok := GetAdminIDFromContext(r.Context()); ok {
		return "admin:" + adminID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rlc *RateLimitConfig) RateLimitMiddleware(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject := subjectForRequest(r)

			// Get the appropriate rate limiter
			limiter, exists := rlc.limiters[action]
			if !exists {
				// If no rate limiter configured for this action, allow the request
				next.ServeHTTP(w, r)
				return
			}

			// Check if the caller is allowed to perform this action
			allowed, err := limiter.Allow(r.Context(), subject, action)
			if err != nil {
				response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(
					fmt.Errorf("rate limit check failed: %w", err)))
				return
			}

			remaining, _ := limiter.GetRemaining(r.Context(), subject, action)

			// Set rate limit headers
			w.Header().Set("X-RateLimit-Limit", getLimitForAction(action))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			w.Header().Set("X-RateLimit-Reset", "60") // Reset in 60 seconds (1 minute window)

			if !allowed {
				response.WriteJSON(w, http.StatusTooManyRequests, response.GeneralError(
					fmt.Errorf("rate limit exceeded for %s", action)))
				return
			}

			// Allow the request to proceed
			next.ServeHTTP(w, r)
		})
	}
}

// Helper function to get the limit for display in headers
func getLimitForAction(action string) string {
	switch action {
	case "video-upload":
		return "5"
	case "image-upload":
		return "30"
	case "csv-import":
		return "120"
	default:
		return "100" // default fallback
	}
}

// RateLimitedHandler wraps a handler with rate limiting for a specific action
func (rlc *RateLimitConfig) RateLimitedHandler(action string, handler http.HandlerFunc) http.Handler {
	return rlc.RateLimitMiddleware(action)(http.HandlerFunc(handler))
}
