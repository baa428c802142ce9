package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// SegmentRepository defines the interface for segment operations
type SegmentRepository interface {
	// GetOrCreate deduplicates by the segment's natural-key fingerprint: two
	// segments with identical fields collapse into one row across searches.
	GetOrCreate(ctx context.Context, segment *entity.Segment) (*entity.Segment, error)
}
