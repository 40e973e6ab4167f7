package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baggage-tracking/special-baggage-service/internal/adapter/http/response"
	"github.com/baggage-tracking/special-baggage-service/internal/domain"
	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/timeutil"
	"github.com/baggage-tracking/special-baggage-service/internal/usecase"
)

// mockUseCase is a mock implementation of SpecialBaggageUseCase for testing.
type mockUseCase struct {
	getFunc   func(ctx context.Context, query usecase.Query) ([]domain.LoadingRecord, error)
	lastQuery *usecase.Query
}

func (m *mockUseCase) GetSpecialBaggage(ctx context.Context, query usecase.Query) ([]domain.LoadingRecord, error) {
	m.lastQuery = &query
	if m.getFunc != nil {
		return m.getFunc(ctx, query)
	}
	return []domain.LoadingRecord{}, nil
}

type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) Ping(ctx context.Context) error {
	return m.err
}

type recordCounter struct {
	counts map[string]int
}

func (r *recordCounter) ObserveRecords(endpoint string, n int) {
	if r.counts == nil {
		r.counts = map[string]int{}
	}
	r.counts[endpoint] += n
}

var testNow = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

// setupTestHandler creates a test Echo instance and BaggageHandler.
func setupTestHandler(uc usecase.SpecialBaggageUseCase, cfg *HandlerConfig) *echo.Echo {
	if cfg == nil {
		cfg = &HandlerConfig{}
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewMockClock(testNow)
	}

	e := echo.New()
	e.JSONSerializer = JSONSerializer{}
	RegisterRoutes(e, NewBaggageHandler(uc, cfg))
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var body response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sampleRecord() domain.LoadingRecord {
	seat := "12C"
	bt := domain.BaggageTypeWheelchair
	dep := "15/Jun 08:00"
	stand := "A23B5"
	return domain.LoadingRecord{
		FlightNumber:      "1234",
		Seat:              &seat,
		BaggageType:       &bt,
		Status:            domain.LoadStatusLoaded,
		HasBoarded:        true,
		DepartureDateTime: &dep,
		FlightStand:       &stand,
		Bagtag:            "123456789",
	}
}

const validWindow = "from=2023-06-15T00:00&to=2023-06-16T00:00"

func TestGetSpecialBaggage_Success(t *testing.T) {
	uc := &mockUseCase{
		getFunc: func(ctx context.Context, query usecase.Query) ([]domain.LoadingRecord, error) {
			return []domain.LoadingRecord{sampleRecord()}, nil
		},
	}
	counter := &recordCounter{}
	e := setupTestHandler(uc, &HandlerConfig{Observer: counter})

	rec := makeRequest(e, "/api/get-special-baggage?"+validWindow)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"flightNumber": "1234",
		"seat": "12C",
		"baggageType": "wheelchair",
		"status": "loaded",
		"hasBoarded": true,
		"departureDateTime": "15/Jun 08:00",
		"flightStand": "A23B5",
		"bagtag": "123456789"
	}]`, rec.Body.String())

	require.NotNil(t, uc.lastQuery)
	assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), uc.lastQuery.Window.From)
	assert.Equal(t, time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC), uc.lastQuery.Window.To)
	assert.True(t, uc.lastQuery.Filter.IsEmpty())
	assert.Equal(t, 1, counter.counts[EndpointSpecialBaggage])
}

func TestGetSpecialBaggage_NullFields(t *testing.T) {
	uc := &mockUseCase{
		getFunc: func(ctx context.Context, query usecase.Query) ([]domain.LoadingRecord, error) {
			return []domain.LoadingRecord{{
				FlightNumber: "99",
				Status:       domain.LoadStatusNotLoaded,
				Bagtag:       "1230",
			}}, nil
		},
	}
	e := setupTestHandler(uc, nil)

	rec := makeRequest(e, "/api/get-special-baggage?"+validWindow)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"flightNumber": "99",
		"seat": null,
		"baggageType": null,
		"status": "not_loaded",
		"hasBoarded": false,
		"departureDateTime": null,
		"flightStand": null,
		"bagtag": "1230"
	}]`, rec.Body.String())
}

func TestGetSpecialBaggage_EmptyResultIsArray(t *testing.T) {
	uc := &mockUseCase{
		getFunc: func(ctx context.Context, query usecase.Query) ([]domain.LoadingRecord, error) {
			return nil, nil
		},
	}
	e := setupTestHandler(uc, nil)

	rec := makeRequest(e, "/api/get-special-baggage?"+validWindow)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetSpecialBaggage_PassesFilters(t *testing.T) {
	uc := &mockUseCase{}
	e := setupTestHandler(uc, nil)

	rec := makeRequest(e, "/api/get-special-baggage?"+validWindow+"&flightStatus=Boarded&passengerType=Pet&baggageStatus=Not%20Loaded")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastQuery)
	assert.Equal(t, domain.RecordFilter{
		FlightStatus:  domain.FlightStatusBoarded,
		PassengerType: domain.PassengerTypePet,
		BaggageStatus: domain.BaggageStatusNotLoaded,
	}, uc.lastQuery.Filter)
}

func TestGetSpecialBaggage_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{"missing from", "to=2023-06-16T00:00", "from"},
		{"missing to", "from=2023-06-15T00:00", "to"},
		{"malformed from", "from=15.06.2023&to=2023-06-16T00:00", "from"},
		{"from after to", "from=2023-06-17T00:00&to=2023-06-16T00:00", "to"},
		{"unknown filter", validWindow + "&passengerType=infant", "passengerType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			e := setupTestHandler(uc, nil)

			rec := makeRequest(e, "/api/get-special-baggage?"+tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, response.CodeValidationError, body.Code)
			assert.Contains(t, body.Details, tt.wantField)
			assert.Nil(t, uc.lastQuery, "use case should not be called")
		})
	}
}

func TestGetSpecialBaggage_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "store unavailable",
			err:        domain.NewStoreError(domain.OperationListBags, errors.New("connection refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   response.CodeServiceUnavailable,
		},
		{
			name:       "deadline wins over store failure",
			err:        domain.NewStoreError(domain.OperationListFlights, context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "cancelled",
			err:        fmt.Errorf("list: %w", context.Canceled),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "invalid request from use case",
			err:        domain.NewValidationError("passengerType", "must be one of: All, Pet, Wheelchair, Weapon"),
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeValidationError,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				getFunc: func(ctx context.Context, query usecase.Query) ([]domain.LoadingRecord, error) {
					return nil, tt.err
				},
			}
			e := setupTestHandler(uc, nil)

			rec := makeRequest(e, "/api/get-special-baggage?"+validWindow)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestGetLoadingRecords_DefaultWindow(t *testing.T) {
	uc := &mockUseCase{}
	counter := &recordCounter{}
	e := setupTestHandler(uc, &HandlerConfig{
		LookupPast:   2 * time.Hour,
		LookupFuture: 6 * time.Hour,
		Observer:     counter,
	})

	rec := makeRequest(e, "/api/loading-records?baggageStatus=loaded")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	require.NotNil(t, uc.lastQuery)
	assert.Equal(t, testNow.Add(-2*time.Hour), uc.lastQuery.Window.From)
	assert.Equal(t, testNow.Add(6*time.Hour), uc.lastQuery.Window.To)
	assert.Equal(t, domain.BaggageStatusLoaded, uc.lastQuery.Filter.BaggageStatus)
	assert.Contains(t, counter.counts, EndpointLoadingRecords)
}

func TestGetLoadingRecords_ExplicitWindow(t *testing.T) {
	uc := &mockUseCase{}
	e := setupTestHandler(uc, nil)

	rec := makeRequest(e, "/api/loading-records?"+validWindow)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastQuery)
	assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), uc.lastQuery.Window.From)
}

func TestHealth(t *testing.T) {
	e := setupTestHandler(&mockUseCase{}, nil)

	rec := makeRequest(e, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		checker    domain.HealthChecker
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no checker",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","checks":{}}`,
		},
		{
			name:       "database reachable",
			checker:    &mockHealthChecker{},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","checks":{"database":"ok"}}`,
		},
		{
			name:       "database down",
			checker:    &mockHealthChecker{err: domain.NewStoreError(domain.OperationPing, errors.New("dial tcp"))},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"database":"unavailable"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setupTestHandler(&mockUseCase{}, &HandlerConfig{HealthChecker: tt.checker})

			rec := makeRequest(e, "/ready")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	e := setupTestHandler(&mockUseCase{}, nil)

	rec := makeRequest(e, "/api/v1/flights/search")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
