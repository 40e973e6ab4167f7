package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Options holds the optional middleware of the chain.
type Options struct {
	Recovery RecoveryConfig

	// Observer enables request metrics when set
	Observer RequestObserver
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID
//  3. Metrics - Third, when an observer is configured
//  4. Recover - Last, catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithOptions(e, log, Options{Recovery: DefaultRecoveryConfig()})
}

// SetupWithOptions registers middleware with custom options.
func SetupWithOptions(e *echo.Echo, log zerolog.Logger, opts Options) {
	e.Use(Chain(log, opts)...)
}

// Chain returns all middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, opts Options) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
	}
	if opts.Observer != nil {
		chain = append(chain, Metrics(opts.Observer))
	}
	return append(chain, RecoverWithConfig(log, opts.Recovery))
}
