// Package mock provides test doubles for the special baggage service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific rows).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
)

// call holds the shared delay, error and call counting behaviour.
type call struct {
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

func (c *call) do(ctx context.Context) error {
	c.mu.Lock()
	c.callCount++
	delay, err := c.delay, c.err
	c.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (c *call) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// BagStore is a configurable mock implementation of domain.BagRepository.
type BagStore struct {
	call
	bags []domain.Bag
}

// NewBagStore creates a bag store returning the given bags.
func NewBagStore(bags ...domain.Bag) *BagStore {
	return &BagStore{bags: bags}
}

// WithError configures the store to return err.
func (s *BagStore) WithError(err error) *BagStore {
	s.err = err
	return s
}

// WithDelay configures the store to wait d before responding.
func (s *BagStore) WithDelay(d time.Duration) *BagStore {
	s.delay = d
	return s
}

// ListAllBags implements domain.BagRepository.
func (s *BagStore) ListAllBags(ctx context.Context) ([]domain.Bag, error) {
	if err := s.do(ctx); err != nil {
		return nil, err
	}
	return s.bags, nil
}

// CallCount returns the number of times ListAllBags was called.
func (s *BagStore) CallCount() int {
	return s.count()
}

// FlightStore is a configurable mock implementation of domain.FlightRepository.
type FlightStore struct {
	call
	flights []domain.Flight
}

// NewFlightStore creates a flight store returning the given flights.
func NewFlightStore(flights ...domain.Flight) *FlightStore {
	return &FlightStore{flights: flights}
}

// WithError configures the store to return err.
func (s *FlightStore) WithError(err error) *FlightStore {
	s.err = err
	return s
}

// WithDelay configures the store to wait d before responding.
func (s *FlightStore) WithDelay(d time.Duration) *FlightStore {
	s.delay = d
	return s
}

// ListAllFlights implements domain.FlightRepository.
func (s *FlightStore) ListAllFlights(ctx context.Context) ([]domain.Flight, error) {
	if err := s.do(ctx); err != nil {
		return nil, err
	}
	return s.flights, nil
}

// CallCount returns the number of times ListAllFlights was called.
func (s *FlightStore) CallCount() int {
	return s.count()
}

// HealthChecker is a mock domain.HealthChecker.
type HealthChecker struct {
	Err error
}

// Ping implements domain.HealthChecker.
func (h *HealthChecker) Ping(ctx context.Context) error {
	return h.Err
}

// Ensure the mocks implement the domain interfaces at compile time.
var (
	_ domain.BagRepository    = (*BagStore)(nil)
	_ domain.FlightRepository = (*FlightStore)(nil)
	_ domain.HealthChecker    = (*HealthChecker)(nil)
)

// SampleDate is the flight date used by the sample rows.
var SampleDate = time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

// SampleFlight returns a scheduled flight leg on SampleDate at stand A23B5.
func SampleFlight(flightNr int16, scheduled time.Time) domain.Flight {
	stand := "A23B5"
	return domain.Flight{
		ID: domain.FlightID{
			FlightNr:      flightNr,
			AirlineCodeNr: 23,
			Suffix:        " ",
			FlightDepDate: SampleDate,
			LegNr:         1,
		},
		ScheduleTime: &scheduled,
		Stand:        &stand,
	}
}

// SampleBag returns a bag on the SampleFlight leg with the given codes.
// loaded and pax may be nil.
func SampleBag(flightNr int16, serial int32, exceptionTypes string, loaded *int, pax *string) domain.Bag {
	seat := "12C"
	return domain.Bag{
		ID: domain.BagID{
			BtSerialNr:      serial,
			BtAirlineCodeNr: 23,
			OninterPrefix:   1,
			FlightNr:        flightNr,
			AirlineCodeNr:   23,
			Suffix:          " ",
			FlightDepDate:   SampleDate,
			LegNr:           1,
		},
		LegDepDate:     SampleDate,
		Seat:           &seat,
		ExceptionTypes: &exceptionTypes,
		LoadedStatus:   loaded,
		PaxStatus:      pax,
	}
}
