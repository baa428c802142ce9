package repository

import (
	"context"
	"errors"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormCarrierRepository implements the CarrierRepository interface
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a new GORM carrier repository
func NewGormCarrierRepository(db *gorm.DB) repository.CarrierRepository {
	return &GormCarrierRepository{
		db: db,
	}
}

// GetByID finds a carrier by its external id
func (r *GormCarrierRepository) GetByID(ctx context.Context, id int) (*entity.Carrier, error) {
	var carrier entity.Carrier
	result := r.db.WithContext(ctx).First(&carrier, "id = ?", id)
	if result.Error != nil {
		return nil, translateNotFound(result.Error, "carrier", id)
	}
	return &carrier, nil
}

// GetOrCreate returns the stored carrier, inserting it on first sighting
func (r *GormCarrierRepository) GetOrCreate(ctx context.Context, carrier *entity.Carrier) (*entity.Carrier, error) {
	var existing entity.Carrier
	err := r.db.WithContext(ctx).First(&existing, "id = ?", carrier.ID).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(carrier).Error; err != nil {
		return nil, err
	}
	return carrier, nil
}

// List returns all known carriers
func (r *GormCarrierRepository) List(ctx context.Context) ([]entity.Carrier, error) {
	var carriers []entity.Carrier
	err := r.db.WithContext(ctx).Order("id").Find(&carriers).Error
	return carriers, err
}
