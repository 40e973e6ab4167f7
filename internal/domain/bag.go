package domain

import (
	"fmt"
	"strings"
	"time"
)

// BagID is the composite identity of a bag on a flight leg.
type BagID struct {
	// BtSerialNr is the serial part of the printed bag tag
	BtSerialNr int32

	// BtAirlineCodeNr is the airline part of the printed bag tag
	BtAirlineCodeNr int16

	// OninterPrefix is the leading digit of the bag tag (online/interline indicator)
	OninterPrefix int16

	// DuplicateNr disambiguates reissued tags
	DuplicateNr int16

	FlightNr      int16
	AirlineCodeNr int16
	Suffix        string
	FlightDepDate time.Time
	LegNr         int16
}

// Bag is one physical item of baggage associated with one flight leg.
type Bag struct {
	ID BagID

	// LegDepDate is the local departure date of the leg
	LegDepDate time.Time

	// Seat is the passenger's seat assignment
	Seat *string

	// ExceptionTypes is a comma-separated list of special handling codes (e.g., "PET,WCHR")
	ExceptionTypes *string

	// LoadedStatus is the loading progress code; values >= LoadedStatusThreshold mean loaded
	LoadedStatus *int

	// PaxStatus is the passenger status code; "B" means boarded
	PaxStatus *string
}

// LegKey returns the key of the flight leg this bag belongs to.
func (b Bag) LegKey() LegKey {
	return NewLegKey(b.ID.FlightNr, b.ID.AirlineCodeNr, b.ID.Suffix, b.ID.FlightDepDate, b.ID.LegNr)
}

// BagTag returns the printed bag tag number: prefix, airline code number and
// serial number concatenated as decimal text.
func (b Bag) BagTag() string {
	return fmt.Sprintf("%d%d%d", b.ID.OninterPrefix, b.ID.BtAirlineCodeNr, b.ID.BtSerialNr)
}

// HasBoarded reports whether the passenger owning the bag has boarded.
func (b Bag) HasBoarded() bool {
	return b.PaxStatus != nil && strings.TrimSpace(*b.PaxStatus) == "B"
}

// IsLoaded reports whether the bag has reached the loaded threshold.
func (b Bag) IsLoaded() bool {
	return b.LoadedStatus != nil && *b.LoadedStatus >= LoadedStatusThreshold
}
