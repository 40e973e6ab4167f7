package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver records served HTTP requests.
type RequestObserver interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// Metrics returns middleware that reports every request to observer.
// Requests are labelled by route pattern, not raw path, to keep label
// cardinality bounded.
func Metrics(observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			observer.ObserveRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

			return nil
		}
	}
}
