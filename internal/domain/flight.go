// Package domain contains the core business entities and rules for the special baggage service.
// These entities are storage-agnostic and form the foundation upon which all other components are built.
package domain

import "time"

// FlightID is the composite identity of a single flight leg.
type FlightID struct {
	// FlightNr is the numeric flight number (e.g., 1234)
	FlightNr int16

	// AirlineCodeNr is the numeric airline code
	AirlineCodeNr int16

	// Suffix is the operational suffix character (often a blank)
	Suffix string

	// FlightDepDate is the calendar date the flight departs
	FlightDepDate time.Time

	// LegNr is the leg sequence number within the flight
	LegNr int16
}

// Flight represents one scheduled flight leg.
type Flight struct {
	ID FlightID

	// ScheduleTime is the published departure time
	ScheduleTime *time.Time

	// EstimatedTime is the latest estimated departure time
	EstimatedTime *time.Time

	// ActualTime is the recorded off-block time
	ActualTime *time.Time

	// Stand is the aircraft parking stand identifier
	Stand *string

	// Gate is the boarding gate
	Gate *string
}

// LegKey returns the key used to correlate bags with this flight.
func (f Flight) LegKey() LegKey {
	return NewLegKey(f.ID.FlightNr, f.ID.AirlineCodeNr, f.ID.Suffix, f.ID.FlightDepDate, f.ID.LegNr)
}

// BestDepartureTime returns the most authoritative departure time known for the flight:
// actual, then estimated, then scheduled. It returns nil when none is set.
func (f Flight) BestDepartureTime() *time.Time {
	switch {
	case f.ActualTime != nil:
		return f.ActualTime
	case f.EstimatedTime != nil:
		return f.EstimatedTime
	default:
		return f.ScheduleTime
	}
}
