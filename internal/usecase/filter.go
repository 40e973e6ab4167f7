package usecase

import (
	"github.com/baggage-tracking/special-baggage-service/internal/domain"
)

// isWithinDateRange reports whether the bag's flight departs inside window.
// Bags without a matching flight, or whose flight has no departure time at
// all, are rejected.
func isWithinDateRange(bag domain.Bag, index FlightIndex, window domain.DateRange) bool {
	flight, ok := index.Lookup(bag)
	if !ok {
		return false
	}

	best := flight.BestDepartureTime()
	if best == nil {
		return false
	}

	return window.Contains(*best)
}

// selectSpecialBags keeps the bags that carry a special handling code and
// depart inside window, preserving input order.
func selectSpecialBags(bags []domain.Bag, index FlightIndex, window domain.DateRange) []domain.Bag {
	result := make([]domain.Bag, 0, len(bags))
	for _, b := range bags {
		if !domain.HasRelevantExceptionType(b.ExceptionTypes) {
			continue
		}
		if !isWithinDateRange(b, index, window) {
			continue
		}
		result = append(result, b)
	}
	return result
}

// applyRecordFilter applies the dashboard filters to projected records.
func applyRecordFilter(records []domain.LoadingRecord, filter domain.RecordFilter) []domain.LoadingRecord {
	if filter.IsEmpty() {
		return records
	}

	result := make([]domain.LoadingRecord, 0, len(records))
	for _, r := range records {
		if filter.Matches(r) {
			result = append(result, r)
		}
	}
	return result
}
