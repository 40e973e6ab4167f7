// Package integration provides helpers and integration tests for the special baggage service.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, the use case, and mock stores.
package integration

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/baggage-tracking/special-baggage-service/internal/adapter/http"
	"github.com/baggage-tracking/special-baggage-service/internal/adapter/http/middleware"
	"github.com/baggage-tracking/special-baggage-service/internal/domain"
	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/timeutil"
	"github.com/baggage-tracking/special-baggage-service/internal/usecase"
	"github.com/baggage-tracking/special-baggage-service/test/mock"
)

// Now is the fixed clock reading used by test servers.
var Now = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.BaggageHandler
}

// ServerOptions configures a TestServer.
type ServerOptions struct {
	HealthChecker domain.HealthChecker
	QueryTimeout  time.Duration
	Middleware    []echo.MiddlewareFunc
}

// NewTestServer creates a test server over the given stores with the
// production middleware chain.
func NewTestServer(bags *mock.BagStore, flights *mock.FlightStore, opts ServerOptions) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = httpAdapter.JSONSerializer{}

	middleware.SetupWithOptions(e, zerolog.Nop(), middleware.Options{
		Recovery: middleware.RecoveryConfig{DisablePrintStack: true},
	})

	uc := usecase.NewSpecialBaggageUseCase(bags, flights, &usecase.Config{QueryTimeout: opts.QueryTimeout})
	handler := httpAdapter.NewBaggageHandler(uc, &httpAdapter.HandlerConfig{
		HealthChecker: opts.HealthChecker,
		Clock:         timeutil.NewMockClock(Now),
	})
	httpAdapter.RegisterRoutes(e, handler, opts.Middleware...)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request and returns the response.
func (ts *TestServer) Get(path string) Response {
	return ts.GetFrom(path, "")
}

// GetFrom executes a GET request with the given X-Real-IP.
func (ts *TestServer) GetFrom(path, clientIP string) Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if clientIP != "" {
		req.Header.Set(echo.HeaderXRealIP, clientIP)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SpecialBaggage requests /api/get-special-baggage with the given raw query.
func (ts *TestServer) SpecialBaggage(query string) Response {
	return ts.Get("/api/get-special-baggage?" + query)
}

// ParseRecords parses the response body as loading records.
func (r *Response) ParseRecords() ([]domain.LoadingRecord, error) {
	var records []domain.LoadingRecord
	if err := json.Unmarshal(r.Body, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DayWindow is the query for the whole of mock.SampleDate.
const DayWindow = "from=2023-06-15T00:00&to=2023-06-16T00:00"
