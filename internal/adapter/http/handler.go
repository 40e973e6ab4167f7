// Package http provides the HTTP handler layer for the special baggage API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/baggage-tracking/special-baggage-service/internal/adapter/http/response"
	"github.com/baggage-tracking/special-baggage-service/internal/domain"
	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/timeutil"
	"github.com/baggage-tracking/special-baggage-service/internal/usecase"
)

// Endpoint names used for record metrics.
const (
	EndpointSpecialBaggage = "get_special_baggage"
	EndpointLoadingRecords = "loading_records"
)

// DefaultReadyTimeout bounds the readiness ping.
const DefaultReadyTimeout = 2 * time.Second

// RecordObserver is notified about the number of records returned.
type RecordObserver interface {
	ObserveRecords(endpoint string, n int)
}

// HandlerConfig contains optional handler dependencies.
type HandlerConfig struct {
	// HealthChecker backs /ready; readiness always passes when nil
	HealthChecker domain.HealthChecker

	// Clock is used for the default lookup window
	Clock timeutil.Clock

	// LookupPast and LookupFuture define the default window around now
	LookupPast   time.Duration
	LookupFuture time.Duration

	ReadyTimeout time.Duration
	Observer     RecordObserver
	Logger       *zerolog.Logger
}

// BaggageHandler handles HTTP requests for special baggage endpoints.
type BaggageHandler struct {
	useCase       usecase.SpecialBaggageUseCase
	healthChecker domain.HealthChecker
	clock         timeutil.Clock
	lookupPast    time.Duration
	lookupFuture  time.Duration
	readyTimeout  time.Duration
	observer      RecordObserver
	log           zerolog.Logger
}

// NewBaggageHandler creates a new BaggageHandler. If config is nil, a real
// clock and a 24h lookup window on both sides are used.
func NewBaggageHandler(uc usecase.SpecialBaggageUseCase, config *HandlerConfig) *BaggageHandler {
	h := &BaggageHandler{
		useCase:      uc,
		clock:        timeutil.NewRealClock(),
		lookupPast:   24 * time.Hour,
		lookupFuture: 24 * time.Hour,
		readyTimeout: DefaultReadyTimeout,
		log:          zerolog.Nop(),
	}

	if config == nil {
		return h
	}

	h.healthChecker = config.HealthChecker
	h.observer = config.Observer
	if config.Clock != nil {
		h.clock = config.Clock
	}
	if config.LookupPast > 0 {
		h.lookupPast = config.LookupPast
	}
	if config.LookupFuture > 0 {
		h.lookupFuture = config.LookupFuture
	}
	if config.ReadyTimeout > 0 {
		h.readyTimeout = config.ReadyTimeout
	}
	if config.Logger != nil {
		h.log = *config.Logger
	}
	return h
}

// GetSpecialBaggage handles GET /api/get-special-baggage
//
// @Summary Get special baggage
// @Description Returns pet, wheelchair and weapon bags whose flight departs inside the given window
// @Tags baggage
// @Produce json
// @Param from query string true "Window start (ISO-8601)" example(2023-06-15T00:00:00)
// @Param to query string true "Window end (ISO-8601)" example(2023-06-16T00:00:00)
// @Param flightStatus query string false "All, Boarded or Not Boarded"
// @Param passengerType query string false "All, Pet, Wheelchair or Weapon"
// @Param baggageStatus query string false "All, Loaded or Not Loaded"
// @Success 200 {array} domain.LoadingRecord
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Data store unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/get-special-baggage [get]
func (h *BaggageHandler) GetSpecialBaggage(c echo.Context) error {
	return h.serveRecords(c, EndpointSpecialBaggage, true)
}

// GetLoadingRecords handles GET /api/loading-records
//
// @Summary Get dashboard loading records
// @Description Same as get-special-baggage, but the window defaults to the configured lookup range around now
// @Tags baggage
// @Produce json
// @Param from query string false "Window start (ISO-8601)"
// @Param to query string false "Window end (ISO-8601)"
// @Param flightStatus query string false "All, Boarded or Not Boarded"
// @Param passengerType query string false "All, Pet, Wheelchair or Weapon"
// @Param baggageStatus query string false "All, Loaded or Not Loaded"
// @Success 200 {array} domain.LoadingRecord
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Data store unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/loading-records [get]
func (h *BaggageHandler) GetLoadingRecords(c echo.Context) error {
	return h.serveRecords(c, EndpointLoadingRecords, false)
}

func (h *BaggageHandler) serveRecords(c echo.Context, endpoint string, requireWindow bool) error {
	var req SpecialBaggageRequest

	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid query parameters")
	}

	if err := req.Validate(requireWindow); err != nil {
		return h.handleValidationError(c, err)
	}

	from, to := timeutil.LookupWindow(h.clock, h.lookupPast, h.lookupFuture)
	query := ToUseCaseQuery(&req, domain.DateRange{From: from, To: to})

	records, err := h.useCase.GetSpecialBaggage(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err)
	}

	if h.observer != nil {
		h.observer.ObserveRecords(endpoint, len(records))
	}
	return response.Records(c, records)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *BaggageHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *BaggageHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case domain.IsStoreUnavailable(err):
		return response.ServiceUnavailable(c)
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	h.log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return response.InternalServerError(c)
}

// Health handles GET /health
//
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *BaggageHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// Ready handles GET /ready
//
// @Summary Readiness probe
// @Description Pings the baggage database
// @Tags ops
// @Produce json
// @Success 200 {object} response.ReadyResponse
// @Failure 503 {object} response.ReadyResponse
// @Router /ready [get]
func (h *BaggageHandler) Ready(c echo.Context) error {
	checks := map[string]error{}
	if h.healthChecker != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.readyTimeout)
		defer cancel()

		err := h.healthChecker.Ping(ctx)
		if err != nil {
			h.log.Warn().Err(err).Msg("Readiness check failed")
		}
		checks["database"] = err
	}
	return response.Ready(c, checks)
}
