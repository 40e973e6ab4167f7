// Package usecase contains the business logic for special baggage queries.
// It joins bags to flights in memory and projects dashboard loading records.
package usecase

import "github.com/baggage-tracking/special-baggage-service/internal/domain"

// Query contains the parameters of a special baggage lookup.
type Query struct {
	// Window is the inclusive departure time range
	Window domain.DateRange

	// Filter contains optional dashboard filters applied after projection
	Filter domain.RecordFilter
}
