package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFlightSearchRepository implements the FlightSearchRepository interface
type GormFlightSearchRepository struct {
	db *gorm.DB
}

// NewGormFlightSearchRepository creates a new GORM flight search repository
func NewGormFlightSearchRepository(db *gorm.DB) repository.FlightSearchRepository {
	return &GormFlightSearchRepository{
		db: db,
	}
}

// Insert creates a new flight search row
func (r *GormFlightSearchRepository) Insert(ctx context.Context, search *entity.FlightSearch) error {
	if search.ID == uuid.Nil {
		search.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(search).Error
}

// GetByID finds a flight search with its itineraries and pricing loaded
func (r *GormFlightSearchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FlightSearch, error) {
	var search entity.FlightSearch
	err := r.db.WithContext(ctx).
		Preload("Itineraries").
		Preload("Itineraries.PricingOptions").
		Preload("Itineraries.PricingOptions.Agents").
		First(&search, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err, "flight search", id)
	}
	return &search, nil
}

// List returns all persisted searches, newest first
func (r *GormFlightSearchRepository) List(ctx context.Context) ([]entity.FlightSearch, error) {
	var searches []entity.FlightSearch
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&searches).Error
	return searches, err
}

// PriceSummary aggregates pricing options grouped by itinerary: the minimum
// per itinerary, reduced to min/max/mean across the search. NULL aggregates
// (no itineraries or pricing) come back as nil pointers.
func (r *GormFlightSearchRepository) PriceSummary(ctx context.Context, id uuid.UUID) (*entity.PriceSummary, error) {
	var row struct {
		MinPrice  *float64
		MaxPrice  *float64
		MeanPrice *float64
	}

	perItinerary := r.db.
		Table("pricing_options").
		Select("pricing_options.itinerary_id, MIN(pricing_options.price) AS min_price").
		Joins("JOIN itineraries ON itineraries.id = pricing_options.itinerary_id").
		Where("itineraries.flight_search_id = ?", id).
		Group("pricing_options.itinerary_id")

	err := r.db.WithContext(ctx).
		Table("(?) AS itinerary_prices", perItinerary).
		Select("MIN(min_price) AS min_price, MAX(min_price) AS max_price, AVG(min_price) AS mean_price").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &entity.PriceSummary{
		MinPrice:  row.MinPrice,
		MaxPrice:  row.MaxPrice,
		MeanPrice: row.MeanPrice,
	}, nil
}
