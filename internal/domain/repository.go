package domain

import "context"

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=domain

// BagRepository reads bags from the external store.
type BagRepository interface {
	// ListAllBags returns every bag that belongs to a known flight, ordered by
	// the flight's scheduled, then estimated, then actual departure time.
	ListAllBags(ctx context.Context) ([]Bag, error)
}

// FlightRepository reads flights from the external store.
type FlightRepository interface {
	// ListAllFlights returns every flight leg. No ordering is guaranteed.
	ListAllFlights(ctx context.Context) ([]Flight, error)
}

// HealthChecker reports whether the external store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
