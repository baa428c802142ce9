package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItineraryRepository implements the ItineraryRepository interface
type GormItineraryRepository struct {
	db *gorm.DB
}

// NewGormItineraryRepository creates a new GORM itinerary repository
func NewGormItineraryRepository(db *gorm.DB) repository.ItineraryRepository {
	return &GormItineraryRepository{
		db: db,
	}
}

// Insert creates a fresh itinerary row
func (r *GormItineraryRepository) Insert(ctx context.Context, itinerary *entity.Itinerary) error {
	if itinerary.ID == uuid.Nil {
		itinerary.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(itinerary).Error
}

// GormPricingOptionRepository implements the PricingOptionRepository interface
type GormPricingOptionRepository struct {
	db *gorm.DB
}

// NewGormPricingOptionRepository creates a new GORM pricing option repository
func NewGormPricingOptionRepository(db *gorm.DB) repository.PricingOptionRepository {
	return &GormPricingOptionRepository{
		db: db,
	}
}

// Insert creates a fresh pricing option row along with its agent set
func (r *GormPricingOptionRepository) Insert(ctx context.Context, option *entity.PricingOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}
