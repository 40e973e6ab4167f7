package http

import (
	"github.com/baggage-tracking/special-baggage-service/internal/domain"
	"github.com/baggage-tracking/special-baggage-service/internal/usecase"
)

// ToUseCaseQuery converts a validated request to a usecase.Query. fallback is
// used when the request carries no window of its own.
func ToUseCaseQuery(req *SpecialBaggageRequest, fallback domain.DateRange) usecase.Query {
	window := fallback
	if w := req.Window(); w != nil {
		window = *w
	}

	return usecase.Query{
		Window: window,
		Filter: req.Filter(),
	}
}
