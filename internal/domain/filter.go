package domain

import (
	"strings"
	"time"
)

// DateRange is an inclusive departure time window.
// Bounds and flight times are compared as wall-clock values; no timezone
// normalization is applied.
type DateRange struct {
	// From is the beginning of the window (inclusive)
	From time.Time

	// To is the end of the window (inclusive)
	To time.Time
}

// Contains reports whether t lies within the window, both ends included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// IsValid reports whether From is not after To. An inverted window is
// rejected at the API edge and simply matches nothing below it.
func (r DateRange) IsValid() bool {
	return !r.From.After(r.To)
}

// FilterAll is the value that disables a dashboard filter.
const FilterAll = "all"

// FlightStatusFilter filters records by boarding state.
type FlightStatusFilter string

// Flight status filter values.
const (
	FlightStatusAll        FlightStatusFilter = FilterAll
	FlightStatusBoarded    FlightStatusFilter = "boarded"
	FlightStatusNotBoarded FlightStatusFilter = "not boarded"
)

// PassengerTypeFilter filters records by baggage type.
type PassengerTypeFilter string

// Passenger type filter values.
const (
	PassengerTypeAll        PassengerTypeFilter = FilterAll
	PassengerTypePet        PassengerTypeFilter = PassengerTypeFilter(BaggageTypePet)
	PassengerTypeWheelchair PassengerTypeFilter = PassengerTypeFilter(BaggageTypeWheelchair)
	PassengerTypeWeapon     PassengerTypeFilter = PassengerTypeFilter(BaggageTypeWeapon)
)

// BaggageStatusFilter filters records by load status.
type BaggageStatusFilter string

// Baggage status filter values.
const (
	BaggageStatusAll       BaggageStatusFilter = FilterAll
	BaggageStatusLoaded    BaggageStatusFilter = "loaded"
	BaggageStatusNotLoaded BaggageStatusFilter = "not loaded"
)

// RecordFilter holds the optional dashboard filters. The zero value matches everything.
type RecordFilter struct {
	FlightStatus  FlightStatusFilter
	PassengerType PassengerTypeFilter
	BaggageStatus BaggageStatusFilter
}

// normalizeFilterValue lowercases and collapses "_" and "-" to spaces so that
// "Not Boarded", "not_boarded" and "not-boarded" are equivalent.
func normalizeFilterValue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	if s == "" {
		return FilterAll
	}
	return s
}

// ParseFlightStatusFilter parses a flightStatus query value.
func ParseFlightStatusFilter(s string) (FlightStatusFilter, error) {
	switch v := FlightStatusFilter(normalizeFilterValue(s)); v {
	case FlightStatusAll, FlightStatusBoarded, FlightStatusNotBoarded:
		return v, nil
	default:
		return "", NewValidationError("flightStatus", "must be one of: All, Boarded, Not Boarded")
	}
}

// ParsePassengerTypeFilter parses a passengerType query value.
func ParsePassengerTypeFilter(s string) (PassengerTypeFilter, error) {
	switch v := PassengerTypeFilter(normalizeFilterValue(s)); v {
	case PassengerTypeAll, PassengerTypePet, PassengerTypeWheelchair, PassengerTypeWeapon:
		return v, nil
	default:
		return "", NewValidationError("passengerType", "must be one of: All, Pet, Wheelchair, Weapon")
	}
}

// ParseBaggageStatusFilter parses a baggageStatus query value.
func ParseBaggageStatusFilter(s string) (BaggageStatusFilter, error) {
	switch v := BaggageStatusFilter(normalizeFilterValue(s)); v {
	case BaggageStatusAll, BaggageStatusLoaded, BaggageStatusNotLoaded:
		return v, nil
	default:
		return "", NewValidationError("baggageStatus", "must be one of: All, Loaded, Not Loaded")
	}
}

// Matches reports whether a record passes every active filter.
func (f RecordFilter) Matches(r LoadingRecord) bool {
	switch f.FlightStatus {
	case FlightStatusBoarded:
		if !r.HasBoarded {
			return false
		}
	case FlightStatusNotBoarded:
		if r.HasBoarded {
			return false
		}
	}

	switch f.PassengerType {
	case "", PassengerTypeAll:
	default:
		if r.BaggageType == nil || PassengerTypeFilter(*r.BaggageType) != f.PassengerType {
			return false
		}
	}

	switch f.BaggageStatus {
	case BaggageStatusLoaded:
		if r.Status != LoadStatusLoaded {
			return false
		}
	case BaggageStatusNotLoaded:
		if r.Status != LoadStatusNotLoaded {
			return false
		}
	}

	return true
}

// IsEmpty reports whether no filter is active.
func (f RecordFilter) IsEmpty() bool {
	isAll := func(s string) bool { return s == "" || s == FilterAll }
	return isAll(string(f.FlightStatus)) && isAll(string(f.PassengerType)) && isAll(string(f.BaggageStatus))
}
