package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/baggage-tracking/special-baggage-service/internal/adapter/http/response"
)

// RateLimitConfig holds per-client token bucket settings.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int

	// ExpiresIn is how long an idle client's bucket is kept
	ExpiresIn time.Duration

	// OnLimited, when set, is called for every rejected request
	OnLimited func()
}

// newRateLimiterStore builds the in-memory visitor store. Buckets idle for
// longer than ExpiresIn are swept on a later Allow call.
func newRateLimiterStore(config RateLimitConfig) *echomw.RateLimiterMemoryStore {
	return echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(config.RequestsPerSecond),
		Burst:     config.BurstSize,
		ExpiresIn: config.ExpiresIn,
	})
}

// RateLimit returns middleware that rejects requests above the per-client
// rate with 429 Too Many Requests. Clients are keyed by their real IP.
func RateLimit(config RateLimitConfig) echo.MiddlewareFunc {
	return RateLimitWithStore(newRateLimiterStore(config), config.OnLimited)
}

// RateLimitWithStore is RateLimit over a caller-owned store.
func RateLimitWithStore(store echomw.RateLimiterStore, onLimited func()) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.InternalServerError(c)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if err != nil {
				return response.InternalServerError(c)
			}
			if onLimited != nil {
				onLimited()
			}
			return response.TooManyRequests(c)
		},
	})
}
