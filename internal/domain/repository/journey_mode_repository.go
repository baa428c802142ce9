package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// JourneyModeRepository defines the interface for journey mode operations,
// keyed by name
type JourneyModeRepository interface {
	GetOrCreateByName(ctx context.Context, name string) (*entity.JourneyMode, error)
}
