package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
)

// legJoin joins every bag to the flight leg it travels on.
const legJoin = "JOIN tflight ON tbag.flight_nr = tflight.flight_nr" +
	" AND tbag.airline_code_nr = tflight.airline_code_nr" +
	" AND tbag.suffix = tflight.suffix" +
	" AND tbag.flight_dep_date = tflight.flight_dep_date" +
	" AND tbag.leg_nr = tflight.leg_nr"

// departureOrder sorts bags by their flight's scheduled, then estimated, then actual time.
const departureOrder = "tflight.schedule_time ASC, tflight.estimated_time ASC, tflight.actual_time ASC"

// GormBagRepository implements domain.BagRepository
type GormBagRepository struct {
	db *gorm.DB
}

// NewGormBagRepository creates a new GORM bag repository
func NewGormBagRepository(db *gorm.DB) *GormBagRepository {
	return &GormBagRepository{db: db}
}

// Ensure GormBagRepository implements domain.BagRepository.
var _ domain.BagRepository = (*GormBagRepository)(nil)

// ListAllBags returns every bag that has a flight leg, ordered by the leg's
// departure times.
func (r *GormBagRepository) ListAllBags(ctx context.Context) ([]domain.Bag, error) {
	var rows []Bag
	result := r.db.WithContext(ctx).
		Model(&Bag{}).
		Select("tbag.*").
		Joins(legJoin).
		Order(departureOrder).
		Find(&rows)

	if result.Error != nil {
		return nil, domain.NewStoreError(domain.OperationListBags, result.Error)
	}

	bags := make([]domain.Bag, 0, len(rows))
	for _, row := range rows {
		bags = append(bags, row.toDomain())
	}
	return bags, nil
}
