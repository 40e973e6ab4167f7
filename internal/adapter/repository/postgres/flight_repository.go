package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
)

// GormFlightRepository implements domain.FlightRepository
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) *GormFlightRepository {
	return &GormFlightRepository{db: db}
}

// Ensure GormFlightRepository implements domain.FlightRepository.
var _ domain.FlightRepository = (*GormFlightRepository)(nil)

// ListAllFlights returns every flight leg in storage order.
func (r *GormFlightRepository) ListAllFlights(ctx context.Context) ([]domain.Flight, error) {
	var rows []Flight
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domain.NewStoreError(domain.OperationListFlights, err)
	}

	flights := make([]domain.Flight, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, row.toDomain())
	}
	return flights, nil
}
