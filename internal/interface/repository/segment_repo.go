package repository

import (
	"context"
	"errors"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSegmentRepository implements the SegmentRepository interface
type GormSegmentRepository struct {
	db *gorm.DB
}

// NewGormSegmentRepository creates a new GORM segment repository
func NewGormSegmentRepository(db *gorm.DB) repository.SegmentRepository {
	return &GormSegmentRepository{
		db: db,
	}
}

// GetOrCreate looks the segment up by its natural-key fingerprint and inserts
// it when no identical segment is stored yet. Segments with identical fields
// collapse into one row regardless of which search produced them.
func (r *GormSegmentRepository) GetOrCreate(ctx context.Context, segment *entity.Segment) (*entity.Segment, error) {
	segment.Fingerprint = segment.ComputeFingerprint()

	var existing entity.Segment
	err := r.db.WithContext(ctx).First(&existing, "fingerprint = ?", segment.Fingerprint).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if segment.ID == uuid.Nil {
		segment.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(segment).Error; err != nil {
		return nil, err
	}
	return segment, nil
}
