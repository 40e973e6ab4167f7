package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all special baggage API routes. The middleware is
// applied to the /api group only; health and readiness stay outside it.
func RegisterRoutes(e *echo.Echo, h *BaggageHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)

	api := e.Group("/api", middleware...)
	api.GET("/get-special-baggage", h.GetSpecialBaggage)
	api.GET("/loading-records", h.GetLoadingRecords)
}
