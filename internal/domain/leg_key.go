package domain

import (
	"fmt"
	"time"
)

// legDateLayout renders the flight departure date inside a LegKey.
const legDateLayout = "2006-01-02"

// LegKey identifies a flight leg. Bags carry the same fields as a foreign key
// into the flight table, so both sides build their key through NewLegKey.
// LegKey is comparable and is used directly as a map key.
type LegKey struct {
	FlightNr      int16
	AirlineCodeNr int16
	Suffix        string
	FlightDepDate string
	LegNr         int16
}

// NewLegKey builds a LegKey. Only the calendar date of depDate is kept.
func NewLegKey(flightNr, airlineCodeNr int16, suffix string, depDate time.Time, legNr int16) LegKey {
	return LegKey{
		FlightNr:      flightNr,
		AirlineCodeNr: airlineCodeNr,
		Suffix:        suffix,
		FlightDepDate: depDate.Format(legDateLayout),
		LegNr:         legNr,
	}
}

// String renders the key as "flightNr-airlineCodeNr-suffix-date-legNr".
func (k LegKey) String() string {
	return fmt.Sprintf("%d-%d-%s-%s-%d", k.FlightNr, k.AirlineCodeNr, k.Suffix, k.FlightDepDate, k.LegNr)
}
