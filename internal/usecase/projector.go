package usecase

import (
	"strconv"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/timeutil"
)

// ProjectLoadingRecord builds the dashboard record for a bag. flight may be
// nil when the bag's leg is unknown; flight-derived fields are then null.
func ProjectLoadingRecord(bag domain.Bag, flight *domain.Flight) domain.LoadingRecord {
	record := domain.LoadingRecord{
		FlightNumber:      strconv.Itoa(int(bag.ID.FlightNr)),
		Seat:              bag.Seat,
		Status:            domain.LoadStatusOf(bag),
		HasBoarded:        bag.HasBoarded(),
		DepartureDateTime: formatDepartureDateTime(bag, flight),
		Bagtag:            bag.BagTag(),
	}

	if bt, ok := domain.ClassifyExceptionTypes(bag.ExceptionTypes); ok {
		record.BaggageType = &bt
	}

	if flight != nil {
		record.FlightStand = flight.Stand
	}

	return record
}

// formatDepartureDateTime joins the bag's flight date with the clock time of
// the flight's best departure time. The date deliberately comes from the bag.
func formatDepartureDateTime(bag domain.Bag, flight *domain.Flight) *string {
	if flight == nil {
		return nil
	}

	best := flight.BestDepartureTime()
	if best == nil {
		return nil
	}

	formatted := timeutil.FormatDeparture(timeutil.CombineDateAndClock(bag.ID.FlightDepDate, *best))
	return &formatted
}
