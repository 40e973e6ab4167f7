package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/logger"
)

// quietPaths are health and scrape routes logged at debug level only.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/ready":   {},
	"/metrics": {},
}

// RequestLogger returns middleware that logs HTTP requests.
// It logs on request completion with method, path, status, duration, and client info.
// A logger carrying the request ID is attached to the request context, so
// downstream code can reach it through zerolog.Ctx. RequestID must run first.
func RequestLogger(base zerolog.Logger) echo.MiddlewareFunc {
	root := &logger.Logger{Logger: base}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			log := root.WithRequestID(GetRequestID(c)).Logger
			c.SetRequest(c.Request().WithContext(log.WithContext(c.Request().Context())))

			err := next(c)
			if err != nil {
				// Let Echo's error handler process the error
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				if _, quiet := quietPaths[req.URL.Path]; quiet {
					event = log.Debug()
				} else {
					event = log.Info()
				}
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// The error was already handled via c.Error()
			return nil
		}
	}
}
