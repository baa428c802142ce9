package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// SnapshotRepository defines the interface for raw response archival
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *entity.SearchSnapshot) error
	FindBySearchID(ctx context.Context, searchID string) (*entity.SearchSnapshot, error)
}
