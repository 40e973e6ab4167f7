// Package http provides the HTTP handler layer for the special baggage API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"errors"
	"time"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/timeutil"
)

// SpecialBaggageRequest holds the query parameters of a special baggage lookup.
type SpecialBaggageRequest struct {
	// From is the start of the departure window, ISO-8601 (e.g., "2023-06-15T00:00:00")
	From string `query:"from"`

	// To is the end of the departure window, ISO-8601 (e.g., "2023-06-16T00:00:00")
	To string `query:"to"`

	// FlightStatus is one of: All, Boarded, Not Boarded (optional)
	FlightStatus string `query:"flightStatus"`

	// PassengerType is one of: All, Pet, Wheelchair, Weapon (optional)
	PassengerType string `query:"passengerType"`

	// BaggageStatus is one of: All, Loaded, Not Loaded (optional)
	BaggageStatus string `query:"baggageStatus"`

	window *domain.DateRange
	filter domain.RecordFilter
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Unwrap lets errors.Is match domain.ErrInvalidRequest.
func (v *ValidationErrors) Unwrap() error {
	return domain.ErrInvalidRequest
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request and caches the parsed window and filters.
// When requireWindow is false, from and to may both be omitted; giving only
// one of them is still an error.
func (r *SpecialBaggageRequest) Validate(requireWindow bool) error {
	errs := &ValidationErrors{}

	r.validateWindow(errs, requireWindow)
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Window returns the parsed departure window, or nil when none was given.
// Only meaningful after a successful Validate.
func (r *SpecialBaggageRequest) Window() *domain.DateRange {
	return r.window
}

// Filter returns the parsed dashboard filters.
// Only meaningful after a successful Validate.
func (r *SpecialBaggageRequest) Filter() domain.RecordFilter {
	return r.filter
}

func (r *SpecialBaggageRequest) validateWindow(errs *ValidationErrors, requireWindow bool) {
	if !requireWindow && r.From == "" && r.To == "" {
		return
	}

	from, fromOK := parseBound(errs, "from", r.From)
	to, toOK := parseBound(errs, "to", r.To)
	if !fromOK || !toOK {
		return
	}

	window := domain.DateRange{From: from, To: to}
	if !window.IsValid() {
		errs.Add("to", "to must not be before from")
		return
	}

	r.window = &window
}

func parseBound(errs *ValidationErrors, field, value string) (time.Time, bool) {
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}, false
	}

	t, err := timeutil.ParseWallClock(value)
	if err != nil {
		errs.Add(field, field+" must be an ISO-8601 date-time such as 2023-06-15T08:00:00")
		return time.Time{}, false
	}
	return t, true
}

func (r *SpecialBaggageRequest) validateFilters(errs *ValidationErrors) {
	if v, err := domain.ParseFlightStatusFilter(r.FlightStatus); err != nil {
		errs.addDomain(err)
	} else {
		r.filter.FlightStatus = v
	}

	if v, err := domain.ParsePassengerTypeFilter(r.PassengerType); err != nil {
		errs.addDomain(err)
	} else {
		r.filter.PassengerType = v
	}

	if v, err := domain.ParseBaggageStatusFilter(r.BaggageStatus); err != nil {
		errs.addDomain(err)
	} else {
		r.filter.BaggageStatus = v
	}
}

// addDomain records a field error raised by the domain parsers.
func (v *ValidationErrors) addDomain(err error) {
	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		v.Add(fieldErr.Field, fieldErr.Field+" "+fieldErr.Message)
		return
	}
	v.Add("request", err.Error())
}
