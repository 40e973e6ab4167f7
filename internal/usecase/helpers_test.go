package usecase

import (
	"time"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
)

var testDepDate = time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

// createTestFlight creates a flight leg departing on testDepDate.
func createTestFlight(flightNr int16, schedule *time.Time) domain.Flight {
	return domain.Flight{
		ID: domain.FlightID{
			FlightNr:      flightNr,
			AirlineCodeNr: 23,
			Suffix:        " ",
			FlightDepDate: testDepDate,
			LegNr:         1,
		},
		ScheduleTime: schedule,
		Stand:        strPtr("A23B5"),
	}
}

// createTestBag creates a bag on the leg of createTestFlight(flightNr, ...).
func createTestBag(flightNr int16, serial int32, exceptionTypes *string) domain.Bag {
	return domain.Bag{
		ID: domain.BagID{
			BtSerialNr:      serial,
			BtAirlineCodeNr: 23,
			OninterPrefix:   1,
			FlightNr:        flightNr,
			AirlineCodeNr:   23,
			Suffix:          " ",
			FlightDepDate:   testDepDate,
			LegNr:           1,
		},
		LegDepDate:     testDepDate,
		Seat:           strPtr("12C"),
		ExceptionTypes: exceptionTypes,
	}
}

// dayWindow returns the window covering testDepDate inclusively.
func dayWindow() domain.DateRange {
	return domain.DateRange{From: testDepDate, To: testDepDate.Add(24 * time.Hour)}
}
