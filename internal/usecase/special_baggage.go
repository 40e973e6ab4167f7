package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
)

// DefaultQueryTimeout bounds the two bulk reads of a single lookup.
const DefaultQueryTimeout = 5 * time.Second

// SpecialBaggageUseCase defines the special baggage lookup.
type SpecialBaggageUseCase interface {
	// GetSpecialBaggage returns loading records for relevant bags whose flight
	// departs inside the query window, in bag retrieval order.
	GetSpecialBaggage(ctx context.Context, query Query) ([]domain.LoadingRecord, error)
}

// StoreObserver is notified about failed store reads.
type StoreObserver interface {
	IncStoreError(operation string)
}

// Config contains configuration options for the use case.
type Config struct {
	QueryTimeout time.Duration
	Logger       *zerolog.Logger
	Observer     StoreObserver
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		QueryTimeout: DefaultQueryTimeout,
	}
}

type specialBaggageUseCase struct {
	bags         domain.BagRepository
	flights      domain.FlightRepository
	queryTimeout time.Duration
	log          zerolog.Logger
	observer     StoreObserver
}

// Ensure specialBaggageUseCase implements SpecialBaggageUseCase.
var _ SpecialBaggageUseCase = (*specialBaggageUseCase)(nil)

// NewSpecialBaggageUseCase creates a SpecialBaggageUseCase reading from the
// given repositories. If config is nil, defaults are used.
func NewSpecialBaggageUseCase(bags domain.BagRepository, flights domain.FlightRepository, config *Config) SpecialBaggageUseCase {
	cfg := DefaultConfig()
	log := zerolog.Nop()
	if config != nil {
		if config.QueryTimeout > 0 {
			cfg.QueryTimeout = config.QueryTimeout
		}
		if config.Logger != nil {
			log = *config.Logger
		}
		cfg.Observer = config.Observer
	}

	return &specialBaggageUseCase{
		bags:         bags,
		flights:      flights,
		queryTimeout: cfg.QueryTimeout,
		log:          log,
		observer:     cfg.Observer,
	}
}

// GetSpecialBaggage implements SpecialBaggageUseCase.GetSpecialBaggage.
func (uc *specialBaggageUseCase) GetSpecialBaggage(ctx context.Context, query Query) ([]domain.LoadingRecord, error) {
	bags, flights, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	index := BuildFlightIndex(flights, uc.log)
	selected := selectSpecialBags(bags, index, query.Window)

	records := make([]domain.LoadingRecord, 0, len(selected))
	for _, b := range selected {
		flight, _ := index.Lookup(b)
		records = append(records, ProjectLoadingRecord(b, flight))
	}

	records = applyRecordFilter(records, query.Filter)

	uc.log.Debug().
		Int("bags", len(bags)).
		Int("flights", len(flights)).
		Int("records", len(records)).
		Msg("Special baggage lookup completed")

	return records, nil
}

// load runs both bulk reads concurrently. Either failure fails the lookup.
func (uc *specialBaggageUseCase) load(ctx context.Context) ([]domain.Bag, []domain.Flight, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	var (
		wg         sync.WaitGroup
		bags       []domain.Bag
		flights    []domain.Flight
		bagsErr    error
		flightsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		bags, bagsErr = uc.bags.ListAllBags(ctx)
	}()
	go func() {
		defer wg.Done()
		flights, flightsErr = uc.flights.ListAllFlights(ctx)
	}()
	wg.Wait()

	if bagsErr != nil {
		return nil, nil, uc.storeFailure(domain.OperationListBags, bagsErr)
	}
	if flightsErr != nil {
		return nil, nil, uc.storeFailure(domain.OperationListFlights, flightsErr)
	}

	return bags, flights, nil
}

func (uc *specialBaggageUseCase) storeFailure(operation string, err error) error {
	if uc.observer != nil {
		uc.observer.IncStoreError(operation)
	}

	uc.log.Error().Err(err).Str("operation", operation).Msg("Store read failed")

	if domain.IsStoreUnavailable(err) {
		return err
	}
	return domain.NewStoreError(operation, err)
}
