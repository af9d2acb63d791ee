package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"courseplanner/internal/delivery/http/helpers"
)

// RateLimitConfig holds configuration for rate limiting middleware.
type RateLimitConfig struct {
	// RequestLimit is the maximum number of requests allowed in the window.
	RequestLimit int
	WindowSize   time.Duration
	// KeyFuncs extract the rate limit key from the request. Defaults to the client IP.
	KeyFuncs []httprate.KeyFunc
}

// KeyByCourse keys requests by the courseID path value.
func KeyByCourse(r *http.Request) (string, error) {
	return "course:" + r.PathValue("courseID"), nil
}

// RateLimit wraps next in a sliding-window limiter. Rejected requests get 429 with the JSON error envelope.
// A non-positive RequestLimit disables limiting.
func RateLimit(cfg RateLimitConfig, next http.Handler) http.Handler {
	if cfg.RequestLimit <= 0 {
		return next
	}
	keyFuncs := cfg.KeyFuncs
	if len(keyFuncs) == 0 {
		keyFuncs = []httprate.KeyFunc{httprate.KeyByIP}
	}
	limiter := httprate.Limit(
		cfg.RequestLimit,
		cfg.WindowSize,
		httprate.WithKeyFuncs(keyFuncs...),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(int(cfg.WindowSize.Seconds())))
			helpers.WriteJSONError(w, http.StatusTooManyRequests, helpers.ErrCodeTooManyRequests, "too many requests, try again later")
		}),
	)
	return limiter(next)
}
