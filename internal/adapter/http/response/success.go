// Package response provides standardized HTTP response builders for the special baggage API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
)

// Health status values.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: StatusOK,
	})
}

// Ready writes a readiness response. The status is 200 when every check
// passed and 503 otherwise.
func Ready(c echo.Context, checks map[string]error) error {
	resp := &ReadyResponse{
		Status: StatusOK,
		Checks: make(map[string]string, len(checks)),
	}
	for name, err := range checks {
		if err != nil {
			resp.Status = StatusUnavailable
			resp.Checks[name] = StatusUnavailable
			continue
		}
		resp.Checks[name] = StatusOK
	}

	if resp.Status != StatusOK {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// Records writes a 200 OK response with loading records. A nil slice is
// written as an empty JSON array.
func Records(c echo.Context, records []domain.LoadingRecord) error {
	if records == nil {
		records = []domain.LoadingRecord{}
	}
	return OK(c, records)
}
