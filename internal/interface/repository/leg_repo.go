package repository

import (
	"context"
	"errors"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLegRepository implements the LegRepository interface
type GormLegRepository struct {
	db *gorm.DB
}

// NewGormLegRepository creates a new GORM leg repository
func NewGormLegRepository(db *gorm.DB) repository.LegRepository {
	return &GormLegRepository{
		db: db,
	}
}

// GetByID finds a leg by its external id with all relationship sets loaded
func (r *GormLegRepository) GetByID(ctx context.Context, id string) (*entity.Leg, error) {
	var leg entity.Leg
	err := r.db.WithContext(ctx).
		Preload("DeparturePlace.Type").
		Preload("ArrivalPlace.Type").
		Preload("JourneyMode").
		Preload("Carriers").
		Preload("OperatingCarriers").
		Preload("Stops").
		Preload("Segments").
		First(&leg, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err, "leg", id)
	}
	return &leg, nil
}

// GetOrCreate is keyed by the external leg id. Running the pipeline twice on
// the same response, or across responses reusing the id, returns the existing
// row with its original field values.
func (r *GormLegRepository) GetOrCreate(ctx context.Context, leg *entity.Leg) (*entity.Leg, error) {
	var existing entity.Leg
	err := r.db.WithContext(ctx).First(&existing, "id = ?", leg.ID).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(leg).Error; err != nil {
		return nil, err
	}
	return leg, nil
}

// AddCarrier appends a carrier to the leg's carrier set
func (r *GormLegRepository) AddCarrier(ctx context.Context, leg *entity.Leg, carrier *entity.Carrier) error {
	return r.db.WithContext(ctx).Model(leg).Association("Carriers").Append(carrier)
}

// AddOperatingCarrier appends a carrier to the leg's operating carrier set
func (r *GormLegRepository) AddOperatingCarrier(ctx context.Context, leg *entity.Leg, carrier *entity.Carrier) error {
	return r.db.WithContext(ctx).Model(leg).Association("OperatingCarriers").Append(carrier)
}

// AddStop appends a stopover place to the leg's stop set
func (r *GormLegRepository) AddStop(ctx context.Context, leg *entity.Leg, stop *entity.Place) error {
	return r.db.WithContext(ctx).Model(leg).Association("Stops").Append(stop)
}

// AddSegment appends a segment to the leg's segment set
func (r *GormLegRepository) AddSegment(ctx context.Context, leg *entity.Leg, segment *entity.Segment) error {
	return r.db.WithContext(ctx).Model(leg).Association("Segments").Append(segment)
}

// Save persists the leg's scalar fields
func (r *GormLegRepository) Save(ctx context.Context, leg *entity.Leg) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(leg).Error
}

// List returns all known legs with their relationship sets loaded
func (r *GormLegRepository) List(ctx context.Context) ([]entity.Leg, error) {
	var legs []entity.Leg
	err := r.db.WithContext(ctx).
		Preload("DeparturePlace.Type").
		Preload("ArrivalPlace.Type").
		Preload("JourneyMode").
		Preload("Carriers").
		Preload("OperatingCarriers").
		Preload("Stops").
		Preload("Segments").
		Order("departure").
		Find(&legs).Error
	return legs, err
}
