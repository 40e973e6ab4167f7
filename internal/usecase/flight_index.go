package usecase

import (
	"github.com/rs/zerolog"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
)

// FlightIndex maps leg keys to flights for constant-time bag lookups.
type FlightIndex map[domain.LegKey]domain.Flight

// BuildFlightIndex indexes flights by leg key. When two flights share a key
// the later one wins; the collision is a data-quality issue and is only logged.
func BuildFlightIndex(flights []domain.Flight, log zerolog.Logger) FlightIndex {
	index := make(FlightIndex, len(flights))
	for _, f := range flights {
		key := f.LegKey()
		if _, exists := index[key]; exists {
			log.Debug().Str("leg_key", key.String()).Msg("Duplicate flight leg key, keeping last")
		}
		index[key] = f
	}
	return index
}

// Lookup returns the flight a bag belongs to.
func (idx FlightIndex) Lookup(bag domain.Bag) (*domain.Flight, bool) {
	f, ok := idx[bag.LegKey()]
	if !ok {
		return nil, false
	}
	return &f, true
}
