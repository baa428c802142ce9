package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormJourneyModeRepository implements the JourneyModeRepository interface
type GormJourneyModeRepository struct {
	db *gorm.DB
}

// NewGormJourneyModeRepository creates a new GORM journey mode repository
func NewGormJourneyModeRepository(db *gorm.DB) repository.JourneyModeRepository {
	return &GormJourneyModeRepository{
		db: db,
	}
}

// GetOrCreateByName finds a journey mode by name, inserting it when unseen
func (r *GormJourneyModeRepository) GetOrCreateByName(ctx context.Context, name string) (*entity.JourneyMode, error) {
	var mode entity.JourneyMode
	err := r.db.WithContext(ctx).Where(entity.JourneyMode{Name: name}).FirstOrCreate(&mode).Error
	if err != nil {
		return nil, err
	}
	return &mode, nil
}
